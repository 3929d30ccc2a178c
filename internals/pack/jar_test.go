package pack

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeJars(t *testing.T) {
	dir := t.TempDir()
	modA := writeZip(t, filepath.Join(dir, "modA.jar"),
		zipEntry{"data/config.txt", "from modA"},
		zipEntry{"a/A.class", "A"},
	)
	modB := writeZip(t, filepath.Join(dir, "modB.jar"),
		zipEntry{"data/config.txt", "from modB"},
		zipEntry{"b/B.class", "B"},
	)
	target := filepath.Join(dir, "bin", "minecraft.jar")

	if err := MergeJars(target, []string{modA, modB}); err != nil {
		t.Fatal(err)
	}

	files := readZip(t, target)
	want := map[string]string{
		"data/config.txt": "from modA",
		"a/A.class":       "A",
		"b/B.class":       "B",
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), files)
	}
	for name, body := range want {
		if files[name] != body {
			t.Errorf("%s = %q, want %q", name, files[name], body)
		}
	}
}

func TestMergeJarsMissingInput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "minecraft.jar")

	if err := MergeJars(target, []string{filepath.Join(dir, "missing.jar")}); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("no partial jar should be left behind")
	}
}

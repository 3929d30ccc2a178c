package pack

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractNatives(t *testing.T) {
	dir := t.TempDir()
	archive := writeZip(t, filepath.Join(dir, "natives.jar"),
		zipEntry{"META-INF/MANIFEST.MF", "manifest"},
		zipEntry{"org/", ""},
		zipEntry{"org/lwjgl/natives/liblwjgl.so", "native"},
		zipEntry{"liblwjgl_opengl.so", "opengl"},
	)
	dest := filepath.Join(dir, "natives")

	// existing files are overwritten
	os.MkdirAll(dest, os.ModePerm)
	os.WriteFile(filepath.Join(dest, "liblwjgl_opengl.so"), []byte("stale"), 0644)

	if err := ExtractNatives(archive, dest, []string{"META-INF/"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want string
	}{
		{"org/lwjgl/natives/liblwjgl.so", "native"},
		{"liblwjgl_opengl.so", "opengl"},
	}
	for _, tt := range tests {
		got, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(tt.path)))
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := os.Stat(filepath.Join(dest, "META-INF")); !os.IsNotExist(err) {
		t.Error("excluded prefix should not be extracted")
	}
}

func TestExtractNativesRejectsUnsafeNames(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"reserved", "com1.dll"},
		{"colon", "bad:name.so"},
		{"dollar", "lib$x.so"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			archive := writeZip(t, filepath.Join(dir, "natives.jar"), zipEntry{tt.entry, "x"})

			err := ExtractNatives(archive, filepath.Join(dir, "natives"), nil)
			var invalid *InvalidFilenameError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidFilenameError, got %v", err)
			}
		})
	}
}

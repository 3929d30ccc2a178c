package instances

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/helixlauncher/helix/internals/meta"
)

func TestNewLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	components := []meta.ComponentRef{
		{ID: "org.quiltmc.quilt-loader", Version: "0.19.0"},
		{ID: "net.minecraft", Version: "1.20"},
	}
	launch := LaunchConfig{
		Args:              []string{"--fullscreen"},
		JVMArgs:           []string{"-XX:+UseG1GC"},
		PrelaunchCommand:  "echo pre",
		PostlaunchCommand: "echo post",
		Allocation:        &RAMAllocation{Min: 1024, Max: 4096},
		JavaPath:          "/usr/lib/jvm/java-17/bin/java",
	}

	created, err := New(dir, "My Instance", components, launch)
	if err != nil {
		t.Fatal(err)
	}
	if created.Path != filepath.Join(dir, "my-instance") {
		t.Errorf("unexpected instance dir %s", created.Path)
	}
	if _, err := os.Stat(created.GameDir()); err != nil {
		t.Errorf("game dir was not created: %v", err)
	}

	loaded, err := Load(created.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded.Config, created.Config) {
		t.Errorf("config changed after round trip:\n got %+v\nwant %+v", loaded.Config, created.Config)
	}
	if loaded.ComponentVersion("net.minecraft") != "1.20" {
		t.Errorf("unexpected minecraft version %q", loaded.ComponentVersion("net.minecraft"))
	}
	if loaded.ComponentVersion("net.fabricmc.fabric-loader") != "" {
		t.Error("unused component should have no version")
	}
}

func TestNewExisting(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir, "test", nil, LaunchConfig{}); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir, "test", nil, LaunchConfig{}); !errors.Is(err, ErrInstanceExists) {
		t.Fatalf("expected ErrInstanceExists, got %v", err)
	}
}

func TestLoadNotAnInstance(t *testing.T) {
	if _, err := Load(t.TempDir()); !errors.Is(err, ErrNotAnInstance) {
		t.Fatalf("expected ErrNotAnInstance, got %v", err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one", "two"} {
		if _, err := New(dir, name, nil, LaunchConfig{}); err != nil {
			t.Fatal(err)
		}
	}
	os.Mkdir(filepath.Join(dir, "not-an-instance"), os.ModePerm)
	os.WriteFile(filepath.Join(dir, "stray-file"), nil, 0644)

	list, err := List(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(list))
	}

	missing, err := List(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("missing instances dir should be empty, got %v %v", missing, err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	base := t.TempDir()
	c := New(base)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"instances", c.InstancesDir(), filepath.Join(base, "instances")},
		{"libraries", c.LibrariesDir(), filepath.Join(base, "libraries")},
		{"assets", c.AssetsDir(), filepath.Join(base, "assets")},
		{"meta", c.MetaDir(), filepath.Join(base, "meta")},
		{"java", c.JavaPath(), "java"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadCreatesFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "data")

	if _, err := Load(base); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(base, FileName)); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	base := t.TempDir()
	absLibs := filepath.Join(t.TempDir(), "shared-libs")

	c, err := Load(base)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(KeyLibrariesDir, absLibs)
	c.Set(KeyMetaURL, "http://localhost:1234/")
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(base)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.LibrariesDir() != absLibs {
		t.Errorf("absolute directories should be kept, got %s", reloaded.LibrariesDir())
	}
	if reloaded.MetaURL() != "http://localhost:1234/" {
		t.Errorf("meta url not persisted, got %s", reloaded.MetaURL())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HELIX_META_URL", "http://env.example.com/")
	c := New(t.TempDir())
	if c.MetaURL() != "http://env.example.com/" {
		t.Errorf("environment should override, got %s", c.MetaURL())
	}
}

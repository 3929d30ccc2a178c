package pack

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

type zipEntry struct {
	name string
	body string
}

// writeZip creates a zip file with the given entries, in order
func writeZip(t *testing.T, path string, entries ...zipEntry) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		entry, err := w.Create(e.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := entry.Write([]byte(e.body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// readZip returns all file entries of a zip
func readZip(t *testing.T, path string) map[string]string {
	t.Helper()
	pkg, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer pkg.Close()

	files := make(map[string]string)
	for _, f := range pkg.Files() {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestOpenInvalidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jar")
	os.WriteFile(path, []byte("not a zip"), 0644)

	if _, err := Open(path); err == nil {
		t.Fatal("expected an error for a broken archive")
	}
}

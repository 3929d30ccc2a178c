package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dchest/uniuri"
)

// AtomicFile is a temporary file next to its final destination. Nothing is
// visible at the destination until Commit renames it into place, so readers
// never observe a partially written file.
type AtomicFile struct {
	*os.File
	target string
	done   bool
}

// CreateAtomic creates the parent directories of target and opens a
// temporary file in the same directory.
func CreateAtomic(target string) (*AtomicFile, error) {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	tmpName := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(target), uniuri.NewLen(8)))
	f, err := os.OpenFile(tmpName, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}
	return &AtomicFile{File: f, target: target}, nil
}

// Commit flushes the temporary file and renames it to the target path.
func (a *AtomicFile) Commit() error {
	if a.done {
		return nil
	}
	a.done = true
	if err := a.File.Sync(); err != nil {
		a.File.Close()
		os.Remove(a.File.Name())
		return err
	}
	if err := a.File.Close(); err != nil {
		os.Remove(a.File.Name())
		return err
	}
	if err := os.Rename(a.File.Name(), a.target); err != nil {
		os.Remove(a.File.Name())
		return fmt.Errorf("renaming into %s: %w", a.target, err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit, so it can
// always be deferred.
func (a *AtomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	a.File.Close()
	os.Remove(a.File.Name())
}

// WriteFile atomically replaces target with data.
func WriteFile(target string, data []byte) error {
	f, err := CreateAtomic(target)
	if err != nil {
		return err
	}
	defer f.Abort()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Commit()
}

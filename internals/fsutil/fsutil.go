// Package fsutil contains small filesystem helpers shared by the metadata
// store, the artifact cache and the package assembler.
package fsutil

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
)

var cleanNameRegex = regexp.MustCompile(`[^a-zA-Z0-9.\-_]|^\.`)

// CleanName replaces every character that could escape a directory (or is
// otherwise unsafe in a file name) with "__". The result is always a single,
// non-hidden path segment.
func CleanName(name string) string {
	return cleanNameRegex.ReplaceAllString(name, "__")
}

// CopyFile copies from to to, replacing to if it exists.
func CopyFile(from string, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(to), os.ModePerm); err != nil {
		return err
	}
	dest, err := os.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dest, src); err != nil {
		dest.Close()
		return err
	}
	return dest.Close()
}

package pack

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v3"
)

// ExtractNatives extracts every file of the archive at src into dest, except
// those starting with one of the excluded prefixes. Existing files are overwritten.
func ExtractNatives(src string, dest string, exclusions []string) error {
	// Walk only reports errors as strings, keep the real one
	var walkErr error

	z := archiver.NewZip()
	err := z.Walk(src, func(f archiver.File) error {
		if f.IsDir() {
			return nil
		}
		header, ok := f.Header.(zip.FileHeader)
		if !ok {
			return nil
		}
		name := header.Name

		for _, prefix := range exclusions {
			if strings.HasPrefix(name, prefix) {
				return nil
			}
		}

		if err := CheckPath(name); err != nil {
			walkErr = err
			return archiver.ErrStopWalk
		}
		if err := extractFile(f, filepath.Join(dest, filepath.FromSlash(name))); err != nil {
			walkErr = err
			return archiver.ErrStopWalk
		}
		return nil
	})
	if walkErr != nil {
		return walkErr
	}
	return err
}

func extractFile(src io.Reader, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

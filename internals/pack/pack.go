// Package pack assembles everything an instance needs on disk before it can
// be launched: the (possibly merged) game jar, extracted natives and assets.
package pack

import (
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// Reader for a zip (or jar) file
type Reader struct {
	zipReader *zip.Reader
}

// Files returns all contained files of the underlying zip/jar file
func (p *Reader) Files() []*zip.File {
	return p.zipReader.File
}

// NewReader returns a Reader from a `io.ReaderAt`
func NewReader(reader io.ReaderAt, size int64) (*Reader, error) {
	zipReader, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, err
	}
	return &Reader{zipReader}, nil
}

// PackageFile is a local zip (or jar) file
type PackageFile struct {
	*os.File
	*Reader
}

// Open will open the zip or jar file specified by name and return a PackageFile.
func Open(filePath string) (*PackageFile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	fStats, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	reader, err := NewReader(file, fStats.Size())
	if err != nil {
		file.Close()
		return nil, err
	}

	return &PackageFile{file, reader}, nil
}

package downloadmgr

import (
	"fmt"
	"io"
	"os"

	"github.com/helixlauncher/helix/internals/meta"
)

// CheckFile reports whether the file at path exists and has the given size
// and hash. A missing file is not an error.
func CheckFile(path string, size int64, hash meta.Hash) (bool, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stat.IsDir() || stat.Size() != size {
		return false, nil
	}

	actual, err := HashFile(path, hash.Algorithm)
	if err != nil {
		return false, err
	}
	return actual.Equal(hash), nil
}

// HashFile computes the digest of the file at path using algorithm
func HashFile(path string, algorithm meta.HashAlgorithm) (meta.Hash, error) {
	hasher, err := meta.Hash{Algorithm: algorithm}.New()
	if err != nil {
		return meta.Hash{}, err
	}

	src, err := os.Open(path)
	if err != nil {
		return meta.Hash{}, err
	}
	defer src.Close()

	// probably io error during hashing
	if _, err := io.Copy(hasher, src); err != nil {
		return meta.Hash{}, err
	}
	return meta.Hash{Algorithm: algorithm, Hex: fmt.Sprintf("%x", hasher.Sum(nil))}, nil
}

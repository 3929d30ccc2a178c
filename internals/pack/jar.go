package pack

import (
	"fmt"

	"github.com/helixlauncher/helix/internals/fsutil"
	"github.com/klauspost/compress/zip"
)

// MergeJars writes a jar to target that contains the entries of all jars.
// If multiple jars contain the same entry, the first one wins. Entries are
// copied without recompressing them.
func MergeJars(target string, jars []string) error {
	out, err := fsutil.CreateAtomic(target)
	if err != nil {
		return err
	}
	defer out.Abort()

	w := zip.NewWriter(out)
	seen := make(map[string]bool)

	for _, jar := range jars {
		if err := copyEntries(w, jar, seen); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	return out.Commit()
}

func copyEntries(w *zip.Writer, jar string, seen map[string]bool) error {
	pkg, err := Open(jar)
	if err != nil {
		return fmt.Errorf("opening jarmod %s: %w", jar, err)
	}
	defer pkg.Close()

	for _, f := range pkg.Files() {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		if err := w.Copy(f); err != nil {
			return fmt.Errorf("copying %s from %s: %w", f.Name, jar, err)
		}
	}
	return nil
}

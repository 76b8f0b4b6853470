package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mazen160/go-random"
)

// viewers may be reading the previous artifact while a run replaces
// it, so writes go to a temp path in the same directory followed by
// a rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	suffix, err := random.String(8)
	if err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), suffix))

	err = os.WriteFile(tmp, data, 0644)
	if err != nil {
		return err
	}
	err = os.Rename(tmp, path)
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

package render

import (
	"os"
	"path/filepath"

	"github.com/grilldesk/sampledata/errors"
)

// WriteFileAtomic writes data to a temp file next to path and renames it
// into place, so a failed run never leaves a half-written module behind.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return errors.Wrap(err, "cannot create temp file in %q", dir)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "cannot write %q", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "cannot close %q", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "cannot move %q into place", tmp)
	}
	return nil
}

package root

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// A Root is the directory that input and output paths are resolved against.
type Root string

// New creates a root defaulting to defroot, overridden by the values of any
// of the given envVars, where the first-non-empty var wins.
func New(defroot string, envVars ...string) Root {
	root := defroot
	for _, env := range envVars {
		if value := os.Getenv(env); value != "" {
			root = value
			break
		}
	}
	if root == "" {
		var err error
		if root, err = os.Getwd(); err != nil {
			panic(err)
		}
	}
	return Root(root)
}

// Root gets the root directory path
func (r Root) Root() string { return string(r) }

// Path converts path to a path under r. Absolute paths are returned as is.
func (r Root) Path(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(string(r), path)
}

// Open opens the file at path in r for reading.
func (r Root) Open(path string) (*os.File, error) {
	return os.Open(r.Path(path))
}

// WriteFile creates the file at path in r with the output of write. The
// content goes to a temporary file in the same directory that is renamed
// into place only if write succeeds, so a failed write leaves any existing
// file untouched.
func (r Root) WriteFile(path string, write func(io.Writer) error) error {
	target := r.Path(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}
	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return errors.Wrapf(err, "create %s", target)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "write %s", target)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return errors.Wrapf(os.Rename(tmp.Name(), target), "rename %s", target)
}

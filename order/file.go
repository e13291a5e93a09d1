package order

import (
	"os"
	"path/filepath"
)

// File is an output artifact committed atomically.
type File struct {
	path string
	tmp  *os.File
	done bool
}

// Create opens a temporary file in the directory of path. It fails when the
// destination directory is missing or not writable.
func Create(path string) (*File, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, err
	}
	return &File{path: path, tmp: tmp}, nil
}

// Write implements io.Writer on the temporary file.
func (f *File) Write(p []byte) (int, error) { return f.tmp.Write(p) }

// Path returns the final destination.
func (f *File) Path() string { return f.path }

// Commit syncs the temporary file and renames it over the destination.
func (f *File) Commit() error {
	if f.done {
		return nil
	}
	f.done = true
	if err := f.tmp.Sync(); err != nil {
		f.discard()
		return err
	}
	if err := f.tmp.Close(); err != nil {
		os.Remove(f.tmp.Name())
		return err
	}
	if err := os.Chmod(f.tmp.Name(), 0o644); err != nil {
		os.Remove(f.tmp.Name())
		return err
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		os.Remove(f.tmp.Name())
		return err
	}
	return nil
}

// Abort drops the temporary file. It is safe to call after Commit.
func (f *File) Abort() {
	if f.done {
		return
	}
	f.done = true
	f.discard()
}

func (f *File) discard() {
	f.tmp.Close()
	os.Remove(f.tmp.Name())
}

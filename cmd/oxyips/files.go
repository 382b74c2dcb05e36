package main

import (
	"io"
	"os"
	"path/filepath"
)

// readInput reads the whole file at path, or in if path is "-".
func readInput(in io.Reader, role fileRole, path string) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	if path == "-" {
		d, err = io.ReadAll(in)
	} else {
		d, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, &fileError{role: role, path: path, err: err}
	}
	theLog.Debug("read", "file", role.String(), "path", path, "size", len(d))
	return d, nil
}

// writeOutput replaces the file at path with d. The data is written to a
// temporary file in the same directory first, so path is either left
// untouched or holds all of d.
func writeOutput(role fileRole, path string, d []byte) error {
	if err := writeFileAtomic(path, d, 0644); err != nil {
		return &fileError{role: role, path: path, write: true, err: err}
	}
	theLog.Debug("wrote", "file", role.String(), "path", path, "size", len(d))
	return nil
}

func writeFileAtomic(path string, d []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.Write(d); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package vfs

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

type DirectoryDriver struct {
	path string
}

func NewDirectoryDriver(path string) *DirectoryDriver {
	return &DirectoryDriver{path: path}
}

func (dd *DirectoryDriver) Path() string {
	return dd.path
}

func (dd *DirectoryDriver) abs(rel string) string {
	return filepath.Join(dd.path, filepath.FromSlash(rel))
}

func (dd *DirectoryDriver) MkdirAll(rel string) error {
	p := dd.abs(rel)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return fmt.Errorf("Cannot create directory '%s': %v", p, err)
	}
	return nil
}

func (dd *DirectoryDriver) WriteFile(rel string, write func(w io.Writer) error) error {
	p := dd.abs(rel)
	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("Cannot create directory '%s': %v", dir, err)
	}

	f, err := ioutil.TempFile(dir, "."+filepath.Base(p)+".*.tmp")
	if err != nil {
		return fmt.Errorf("Cannot create temporary file for '%s': %v", p, err)
	}
	tmp := f.Name()
	// removes the temporary file on every failure path below
	done := false
	defer func() {
		if !done {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("Cannot write '%s': %v", p, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("Cannot close '%s': %v", p, err)
	}
	if err := os.Chmod(tmp, 0666); err != nil {
		return fmt.Errorf("Cannot chmod '%s': %v", tmp, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("Cannot move '%s' into place: %v", p, err)
	}
	done = true
	return nil
}

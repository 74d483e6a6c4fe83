package vfs

import (
	"io"
)

// Directory is an output tree addressed by slash separated relative paths.
type Directory interface {
	Path() string
	MkdirAll(rel string) error
	// WriteFile replaces rel with whatever write produces. Readers of rel
	// see either the old or the new content, never a partial file.
	WriteFile(rel string, write func(w io.Writer) error) error
}

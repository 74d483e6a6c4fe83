package animdata

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Block is a node of the animation cache text formats.
// WriteBlock must emit exactly the lines ReadBlock consumes, in the same order.
type Block interface {
	ReadBlock(r *LineReader) error
	WriteBlock(w *LineWriter) error
}

func ReadBlockString(b Block, s string) error {
	return b.ReadBlock(NewLineReaderString(s))
}

func BlockString(b Block) (string, error) {
	var buf bytes.Buffer
	if err := WriteBlockTo(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func WriteBlockTo(w io.Writer, b Block) error {
	lw := NewLineWriter(w)
	if err := b.WriteBlock(lw); err != nil {
		return err
	}
	return lw.Err()
}

// ReadFile parses the whole file at path into b.
func ReadFile(path string, b Block) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrFileNotFound, "%q", path)
		}
		return errors.Wrapf(err, "Failed to open %q", path)
	}
	defer f.Close()

	lr, err := NewLineReader(f)
	if err != nil {
		return errors.Wrapf(err, "%q", path)
	}
	if err := b.ReadBlock(lr); err != nil {
		return errors.Wrapf(err, "Failed to parse %q", path)
	}
	return nil
}

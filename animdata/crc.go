package animdata

import (
	"github.com/pkg/errors"
)

// Third member of every clip file triple.
const ClipFileCRCSuffix = "7891816"

// ClipFilesCRCBlock lists the animation files a project uses as
// (path crc, name crc, ClipFileCRCSuffix) triples.
type ClipFilesCRCBlock struct {
	Entries []string
}

func (cb *ClipFilesCRCBlock) Append(pathCrc, nameCrc string) {
	cb.Entries = append(cb.Entries, pathCrc, nameCrc, ClipFileCRCSuffix)
}

// Len returns the number of triples.
func (cb *ClipFilesCRCBlock) Len() int { return len(cb.Entries) / 3 }

func (cb *ClipFilesCRCBlock) ReadBlock(r *LineReader) (err error) {
	cb.Entries = nil
	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "crc count")
	}
	if count > r.Remaining()/3 {
		return errors.Wrapf(ErrStream, "line %d: %d crc triples, %d lines left", r.LineNo(), count, r.Remaining())
	}
	cb.Entries, err = r.Strings(count * 3)
	return err
}

func (cb *ClipFilesCRCBlock) WriteBlock(w *LineWriter) error {
	if len(cb.Entries)%3 != 0 {
		return errors.Wrapf(ErrMalformedData, "crc block has %d entries, not a multiple of 3", len(cb.Entries))
	}
	w.Int(len(cb.Entries) / 3)
	w.Strings(cb.Entries)
	return w.Err()
}

func (cb *ClipFilesCRCBlock) Clone() *ClipFilesCRCBlock {
	return &ClipFilesCRCBlock{Entries: cloneSlice(cb.Entries)}
}

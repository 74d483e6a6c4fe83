package animdata

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type TranslationKey struct {
	Time        float32
	Translation mgl32.Vec3
}

type RotationKey struct {
	Time     float32
	Rotation mgl32.Quat
}

// ClipMovementData is the root motion of one clip, matched to clips by CacheIndex.
type ClipMovementData struct {
	CacheIndex   int
	Duration     float32
	Translations []TranslationKey
	Rotations    []RotationKey
}

func (md *ClipMovementData) LineCount() int {
	return 4 + len(md.Translations) + len(md.Rotations) + 1
}

func readSample(r *LineReader, tokens int) ([]float32, error) {
	line, err := r.Line()
	if err != nil {
		return nil, err
	}
	parts := strings.Split(line, " ")
	if len(parts) != tokens {
		return nil, errors.Wrapf(ErrFormat, "line %d: expected %d values, got %d in %q",
			r.LineNo()-1, tokens, len(parts), line)
	}
	res := make([]float32, tokens)
	for i, p := range parts {
		if res[i], err = ParseFloat(p); err != nil {
			return nil, errors.Wrapf(err, "line %d", r.LineNo()-1)
		}
	}
	return res, nil
}

func (md *ClipMovementData) ReadBlock(r *LineReader) (err error) {
	md.Translations = nil
	md.Rotations = nil

	if md.CacheIndex, err = r.Int(); err != nil {
		return errors.Wrapf(err, "movement cache index")
	}
	if md.Duration, err = r.Float(); err != nil {
		return errors.Wrapf(err, "movement %d duration", md.CacheIndex)
	}

	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "movement %d translation count", md.CacheIndex)
	}
	md.Translations = make([]TranslationKey, count)
	for i := range md.Translations {
		v, err := readSample(r, 4)
		if err != nil {
			return errors.Wrapf(err, "movement %d translation", md.CacheIndex)
		}
		md.Translations[i] = TranslationKey{Time: v[0], Translation: mgl32.Vec3{v[1], v[2], v[3]}}
	}

	if count, err = r.Count(); err != nil {
		return errors.Wrapf(err, "movement %d rotation count", md.CacheIndex)
	}
	md.Rotations = make([]RotationKey, count)
	for i := range md.Rotations {
		v, err := readSample(r, 5)
		if err != nil {
			return errors.Wrapf(err, "movement %d rotation", md.CacheIndex)
		}
		md.Rotations[i] = RotationKey{Time: v[0], Rotation: mgl32.Quat{V: mgl32.Vec3{v[1], v[2], v[3]}, W: v[4]}}
	}

	if r.More() {
		r.Line()
	}
	return nil
}

func (md *ClipMovementData) WriteBlock(w *LineWriter) error {
	w.Int(md.CacheIndex)
	w.Float(md.Duration)
	w.Int(len(md.Translations))
	for _, t := range md.Translations {
		w.Floats(t.Time, t.Translation[0], t.Translation[1], t.Translation[2])
	}
	w.Int(len(md.Rotations))
	for _, q := range md.Rotations {
		w.Floats(q.Time, q.Rotation.V[0], q.Rotation.V[1], q.Rotation.V[2], q.Rotation.W)
	}
	w.Blank()
	return w.Err()
}

func (md *ClipMovementData) Clone() *ClipMovementData {
	return &ClipMovementData{
		CacheIndex:   md.CacheIndex,
		Duration:     md.Duration,
		Translations: cloneSlice(md.Translations),
		Rotations:    cloneSlice(md.Rotations),
	}
}

// ProjectDataBlock holds the movement data of every clip of a project.
// It always spans its whole section.
type ProjectDataBlock struct {
	Movements []*ClipMovementData
}

func (pd *ProjectDataBlock) LineCount() int {
	n := 0
	for _, md := range pd.Movements {
		n += md.LineCount()
	}
	return n
}

func (pd *ProjectDataBlock) ReadBlock(r *LineReader) error {
	pd.Movements = nil
	for r.More() {
		md := &ClipMovementData{}
		if err := md.ReadBlock(r); err != nil {
			return err
		}
		pd.Movements = append(pd.Movements, md)
	}
	return nil
}

func (pd *ProjectDataBlock) WriteBlock(w *LineWriter) error {
	for _, md := range pd.Movements {
		if err := md.WriteBlock(w); err != nil {
			return err
		}
	}
	return w.Err()
}

// Find returns the movement whose own cache index is idx.
func (pd *ProjectDataBlock) Find(idx int) *ClipMovementData {
	for _, md := range pd.Movements {
		if md.CacheIndex == idx {
			return md
		}
	}
	return nil
}

func (pd *ProjectDataBlock) Clone() *ProjectDataBlock {
	c := &ProjectDataBlock{}
	if pd.Movements != nil {
		c.Movements = make([]*ClipMovementData, len(pd.Movements))
		for i, md := range pd.Movements {
			c.Movements[i] = md.Clone()
		}
	}
	return c
}

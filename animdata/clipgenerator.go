package animdata

import (
	"strings"

	"github.com/pkg/errors"
)

type ClipEvent struct {
	Label string
	Time  float32
}

// ClipGeneratorBlock is one clip of a project:
//
//	name
//	cache index
//	playback speed
//	crop start
//	crop end
//	event count
//	label:time (per event)
//	<blank>
type ClipGeneratorBlock struct {
	Name          string
	CacheIndex    int
	PlaybackSpeed float32
	CropStartTime float32
	CropEndTime   float32
	Events        []ClipEvent
}

func (cg *ClipGeneratorBlock) LineCount() int {
	return 6 + len(cg.Events) + 1
}

func (cg *ClipGeneratorBlock) ReadBlock(r *LineReader) (err error) {
	cg.Events = nil
	if cg.Name, err = r.Line(); err != nil {
		return err
	}
	if cg.CacheIndex, err = r.Int(); err != nil {
		return errors.Wrapf(err, "clip %q cache index", cg.Name)
	}
	if cg.PlaybackSpeed, err = r.Float(); err != nil {
		return errors.Wrapf(err, "clip %q playback speed", cg.Name)
	}
	if cg.CropStartTime, err = r.Float(); err != nil {
		return errors.Wrapf(err, "clip %q crop start", cg.Name)
	}
	if cg.CropEndTime, err = r.Float(); err != nil {
		return errors.Wrapf(err, "clip %q crop end", cg.Name)
	}
	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "clip %q event count", cg.Name)
	}
	cg.Events = make([]ClipEvent, 0, count)
	for i := 0; i < count; i++ {
		line, err := r.Line()
		if err != nil {
			return err
		}
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			return errors.Wrapf(ErrFormat, "line %d: event %q is not in label:time form", r.LineNo()-1, line)
		}
		t, err := ParseFloat(parts[1])
		if err != nil {
			return errors.Wrapf(err, "line %d: event %q", r.LineNo()-1, parts[0])
		}
		cg.Events = append(cg.Events, ClipEvent{Label: parts[0], Time: t})
	}
	// trailing separator line, absent at the very end of some files
	if r.More() {
		r.Line()
	}
	return nil
}

func (cg *ClipGeneratorBlock) WriteBlock(w *LineWriter) error {
	w.Line(cg.Name)
	w.Int(cg.CacheIndex)
	w.Float(cg.PlaybackSpeed)
	w.Float(cg.CropStartTime)
	w.Float(cg.CropEndTime)
	w.Int(len(cg.Events))
	for _, ev := range cg.Events {
		w.Line(ev.Label + ":" + FormatFloat(ev.Time))
	}
	w.Blank()
	return w.Err()
}

func (cg *ClipGeneratorBlock) Clone() *ClipGeneratorBlock {
	c := *cg
	c.Events = cloneSlice(cg.Events)
	return &c
}

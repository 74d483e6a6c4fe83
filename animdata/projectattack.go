package animdata

import (
	"github.com/pkg/errors"
)

const AttackBlockVersion = "V3"

// ProjectAttackBlock is one attack set file of a creature.
type ProjectAttackBlock struct {
	Version          string
	SwapEvents       []string
	HandVariableData HandVariableData
	ClipAttack       ClipAttackBlock
	CRCData          ClipFilesCRCBlock
}

func NewProjectAttackBlock() *ProjectAttackBlock {
	return &ProjectAttackBlock{Version: AttackBlockVersion}
}

func (pa *ProjectAttackBlock) HasHandVariableData() bool {
	return len(pa.HandVariableData.Variables) > 0
}

func (pa *ProjectAttackBlock) ReadBlock(r *LineReader) (err error) {
	if pa.Version, err = r.Line(); err != nil {
		return err
	}
	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "swap event count")
	}
	if pa.SwapEvents, err = r.Strings(count); err != nil {
		return err
	}
	if err := pa.HandVariableData.ReadBlock(r); err != nil {
		return err
	}
	if err := pa.ClipAttack.ReadBlock(r); err != nil {
		return err
	}
	return pa.CRCData.ReadBlock(r)
}

func (pa *ProjectAttackBlock) WriteBlock(w *LineWriter) error {
	w.Line(pa.Version)
	w.Int(len(pa.SwapEvents))
	w.Strings(pa.SwapEvents)
	if err := pa.HandVariableData.WriteBlock(w); err != nil {
		return err
	}
	if err := pa.ClipAttack.WriteBlock(w); err != nil {
		return err
	}
	return pa.CRCData.WriteBlock(w)
}

func (pa *ProjectAttackBlock) Clone() *ProjectAttackBlock {
	return &ProjectAttackBlock{
		Version:          pa.Version,
		SwapEvents:       cloneSlice(pa.SwapEvents),
		HandVariableData: *pa.HandVariableData.Clone(),
		ClipAttack:       *pa.ClipAttack.Clone(),
		CRCData:          *pa.CRCData.Clone(),
	}
}

// ProjectAttackListBlock is the attack data of a creature project:
// attack set file names followed by one ProjectAttackBlock per name.
type ProjectAttackListBlock struct {
	ProjectFiles        []string
	ProjectAttackBlocks []*ProjectAttackBlock
}

func (pl *ProjectAttackListBlock) ReadBlock(r *LineReader) error {
	pl.ProjectFiles = nil
	pl.ProjectAttackBlocks = nil

	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "attack project file count")
	}
	if pl.ProjectFiles, err = r.Strings(count); err != nil {
		return err
	}
	pl.ProjectAttackBlocks = make([]*ProjectAttackBlock, len(pl.ProjectFiles))
	for i, name := range pl.ProjectFiles {
		pa := NewProjectAttackBlock()
		if err := pa.ReadBlock(r); err != nil {
			return errors.Wrapf(err, "attack block %q", name)
		}
		pl.ProjectAttackBlocks[i] = pa
	}
	return nil
}

func (pl *ProjectAttackListBlock) WriteBlock(w *LineWriter) error {
	if len(pl.ProjectFiles) != len(pl.ProjectAttackBlocks) {
		return errors.Wrapf(ErrMalformedData, "%d attack project files for %d attack blocks",
			len(pl.ProjectFiles), len(pl.ProjectAttackBlocks))
	}
	w.Int(len(pl.ProjectFiles))
	w.Strings(pl.ProjectFiles)
	for i, pa := range pl.ProjectAttackBlocks {
		if err := pa.WriteBlock(w); err != nil {
			return errors.Wrapf(err, "attack block %q", pl.ProjectFiles[i])
		}
	}
	return w.Err()
}

func (pl *ProjectAttackListBlock) Clone() *ProjectAttackListBlock {
	c := &ProjectAttackListBlock{ProjectFiles: cloneSlice(pl.ProjectFiles)}
	if pl.ProjectAttackBlocks != nil {
		c.ProjectAttackBlocks = make([]*ProjectAttackBlock, len(pl.ProjectAttackBlocks))
		for i, pa := range pl.ProjectAttackBlocks {
			c.ProjectAttackBlocks[i] = pa.Clone()
		}
	}
	return c
}

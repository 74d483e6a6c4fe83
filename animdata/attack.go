package animdata

import (
	"github.com/pkg/errors"
)

type AttackData struct {
	EventName string
	Mirrored  int
	Clips     []string
}

func (ad *AttackData) IsMirrored() bool { return ad.Mirrored > 0 }

// ClipAttackBlock maps attack events to the clips that can play them.
type ClipAttackBlock struct {
	AttackData []AttackData
}

func (ca *ClipAttackBlock) ReadBlock(r *LineReader) error {
	ca.AttackData = nil
	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "attack count")
	}
	ca.AttackData = make([]AttackData, count)
	for i := range ca.AttackData {
		ad := &ca.AttackData[i]
		if ad.EventName, err = r.Line(); err != nil {
			return err
		}
		if ad.Mirrored, err = r.Int(); err != nil {
			return errors.Wrapf(err, "attack %q mirrored", ad.EventName)
		}
		clips, err := r.Count()
		if err != nil {
			return errors.Wrapf(err, "attack %q clip count", ad.EventName)
		}
		if ad.Clips, err = r.Strings(clips); err != nil {
			return err
		}
	}
	return nil
}

func (ca *ClipAttackBlock) WriteBlock(w *LineWriter) error {
	w.Int(len(ca.AttackData))
	for _, ad := range ca.AttackData {
		w.Line(ad.EventName)
		w.Int(ad.Mirrored)
		w.Int(len(ad.Clips))
		w.Strings(ad.Clips)
	}
	return w.Err()
}

func (ca *ClipAttackBlock) Clone() *ClipAttackBlock {
	c := &ClipAttackBlock{}
	if ca.AttackData != nil {
		c.AttackData = make([]AttackData, len(ca.AttackData))
		for i, ad := range ca.AttackData {
			c.AttackData[i] = AttackData{
				EventName: ad.EventName,
				Mirrored:  ad.Mirrored,
				Clips:     cloneSlice(ad.Clips),
			}
		}
	}
	return c
}

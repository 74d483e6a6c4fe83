package animdata

import (
	"github.com/pkg/errors"
)

// Values held by the hand variables (iLeftHandType, iRightHandType...).
type EquipType int

const (
	EquipHandToHandMelee EquipType = iota
	EquipOneHandSword
	EquipOneHandDagger
	EquipOneHandAxe
	EquipOneHandMace
	EquipTwoHandSword
	EquipTwoHandAxe
	EquipBow
	EquipStaff
	EquipSpell
	EquipShield
	EquipCrossbow
)

var equipTypeNames = [...]string{
	"HandToHandMelee", "OneHandSword", "OneHandDagger", "OneHandAxe", "OneHandMace",
	"TwoHandSword", "TwoHandAxe", "Bow", "Staff", "Spell", "Shield", "Crossbow",
}

func (et EquipType) String() string {
	if et >= 0 && int(et) < len(equipTypeNames) {
		return equipTypeNames[et]
	}
	return "Unknown"
}

type HandVariable struct {
	VariableName string
	ValueMin     int
	ValueMax     int
}

type HandVariableData struct {
	Variables []HandVariable
}

func (hv *HandVariableData) ReadBlock(r *LineReader) error {
	hv.Variables = nil
	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "hand variable count")
	}
	hv.Variables = make([]HandVariable, count)
	for i := range hv.Variables {
		v := &hv.Variables[i]
		if v.VariableName, err = r.Line(); err != nil {
			return err
		}
		if v.ValueMin, err = r.Int(); err != nil {
			return errors.Wrapf(err, "hand variable %q min", v.VariableName)
		}
		if v.ValueMax, err = r.Int(); err != nil {
			return errors.Wrapf(err, "hand variable %q max", v.VariableName)
		}
	}
	return nil
}

func (hv *HandVariableData) WriteBlock(w *LineWriter) error {
	w.Int(len(hv.Variables))
	for _, v := range hv.Variables {
		w.Line(v.VariableName)
		w.Int(v.ValueMin)
		w.Int(v.ValueMax)
	}
	return w.Err()
}

func (hv *HandVariableData) Clone() *HandVariableData {
	return &HandVariableData{Variables: cloneSlice(hv.Variables)}
}

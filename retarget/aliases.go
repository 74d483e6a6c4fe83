package retarget

import (
	"strings"
)

// AliasTable lists the spellings a creature goes by in game assets,
// keyed by lowercase creature name.
type AliasTable map[string][]string

func DefaultAliases() AliasTable {
	return AliasTable{
		"werewolfbeast": {"Werewolfbeast", "Werewolf"},
		"dragonpriest":  {"Dragonpriest", "Dragon_Priest", "DPriest"},
		"benthiclurker": {"BenthicLurker", "Fishman"},
		"mudcrab":       {"Mudcrab", "Mcrab", "Crab", "Mcarbt"},
		"hagraven":      {"Hagraven", "Havgraven"},
		"sabrecat":      {"SabreCat", "SCat", "Sabrecast"},
		"dog":           {"Dog", "Canine"},
	}
}

// Merge returns a copy of at with the entries of other added or replaced.
func (at AliasTable) Merge(other map[string][]string) AliasTable {
	res := make(AliasTable, len(at)+len(other))
	for k, v := range at {
		res[k] = v
	}
	for k, v := range other {
		res[strings.ToLower(k)] = v
	}
	return res
}

// Patterns returns the spellings of creature, or just creature when it has no entry.
func (at AliasTable) Patterns(creature string) []string {
	if names, ok := at[strings.ToLower(creature)]; ok && len(names) > 0 {
		return append([]string(nil), names...)
	}
	return []string{creature}
}

package retarget

import (
	"strconv"
	"strings"

	"github.com/mogaika/creature_retargeter/utils"
)

// CRCValue is the decimal form clip file crcs take in attack set files.
func CRCValue(s string) string {
	return strconv.FormatUint(uint64(utils.HavokCRC32(s)), 10)
}

// AnimationCRCMap builds the substitutions that move animation file references
// from the source creature to target. files are paths relative to the meshes
// folder, like `actors\bear\animations\bear_idle.hkx`.
//
// File names are renamed case sensitively, folders ignoring case, the same way
// the animation tools derive them.
func AnimationCRCMap(files []string, patterns []string, target string) Substitutions {
	var subs Substitutions
	for _, name := range files {
		newName := name
		for _, p := range patterns {
			if p != "" {
				newName = strings.ReplaceAll(newName, p, target)
			}
		}
		if newName != name {
			subs.Add(name, newName)
			subs.Add(CRCValue(utils.FileBaseName(name)), CRCValue(utils.FileBaseName(newName)))
		}

		dir := strings.ToLower(dirName(name))
		if dir == "" {
			continue
		}
		newDir := strings.ToLower(ReplaceNames(dir, patterns, target))
		subs.Add(CRCValue(dir), CRCValue(newDir))
	}
	return subs
}

func dirName(p string) string {
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[:i]
	}
	return ""
}

package animcache

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/creature_retargeter/animdata"
	"github.com/mogaika/creature_retargeter/vfs"
)

const (
	animationDataFolder    = "animationdata"
	animationSetDataFolder = "animationsetdata"
	boundAnimsFolder       = "boundanims"
	dirListFile            = "dirlist.txt"
)

func writeBlock(dir vfs.Directory, rel string, b animdata.Block) error {
	var blockErr error
	err := dir.WriteFile(rel, func(w io.Writer) error {
		blockErr = animdata.WriteBlockTo(w, b)
		return blockErr
	})
	if blockErr != nil && !errors.Is(blockErr, animdata.ErrIO) {
		return errors.Wrapf(blockErr, "%q", rel)
	}
	if err != nil {
		return errors.Wrapf(animdata.ErrIO, "%v", err)
	}
	return nil
}

func writeLines(dir vfs.Directory, rel string, lines []string) error {
	err := dir.WriteFile(rel, func(w io.Writer) error {
		lw := animdata.NewLineWriter(w)
		lw.Strings(lines)
		return lw.Err()
	})
	if err != nil {
		return errors.Wrapf(animdata.ErrIO, "%v", err)
	}
	return nil
}

// checkFileName rejects names that would leave the folder they are joined to.
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return errors.Wrapf(animdata.ErrMalformedData, "invalid file name %q", name)
	}
	return nil
}

// SaveCreature writes the per project files of entry next to animDataPath:
//
//	animationdata/<name>.txt
//	animationdata/boundanims/anims_<name>.txt
//	animationsetdata/<name>data/<attack set file>
//	animationsetdata/<name>data/<lowercase name>.txt
//	animationsetdata/dirlist.txt
//
// Each file is replaced atomically, but a failure leaves the files written
// before it in place. With saveMerged both merged files are rewritten as well.
func (ac *AnimationCache) SaveCreature(name string, entry *CacheEntry, animDataPath, animSetDataPath string, saveMerged bool) error {
	if err := checkFileName(name); err != nil {
		return err
	}
	if entry.IsCreature() {
		attacks := entry.AttackList
		if len(attacks.ProjectFiles) != len(attacks.ProjectAttackBlocks) {
			return errors.Wrapf(animdata.ErrMalformedData, "creature %q: %d attack files for %d attack blocks",
				name, len(attacks.ProjectFiles), len(attacks.ProjectAttackBlocks))
		}
		for _, file := range attacks.ProjectFiles {
			if err := checkFileName(file); err != nil {
				return errors.Wrapf(err, "creature %q attack set", name)
			}
		}
	}

	dir := vfs.NewDirectoryDriver(filepath.Dir(animDataPath))

	if err := writeBlock(dir, animationDataFolder+"/"+name+".txt", entry.Block); err != nil {
		return err
	}
	if entry.HasAnimationCache() && entry.Movement != nil {
		rel := animationDataFolder + "/" + boundAnimsFolder + "/anims_" + name + ".txt"
		if err := writeBlock(dir, rel, entry.Movement); err != nil {
			return err
		}
	}

	if entry.IsCreature() {
		setDataDir := animationSetDataFolder + "/" + name + "data"
		if err := dir.MkdirAll(setDataDir); err != nil {
			return errors.Wrapf(animdata.ErrIO, "%v", err)
		}
		if err := writeLines(dir, animationSetDataFolder+"/"+dirListFile, ac.animSetData.Projects); err != nil {
			return err
		}

		attacks := entry.AttackList
		for i, file := range attacks.ProjectFiles {
			if err := writeBlock(dir, setDataDir+"/"+file, attacks.ProjectAttackBlocks[i]); err != nil {
				return err
			}
		}

		master := setDataDir + "/" + strings.ToLower(name) + ".txt"
		if err := writeLines(dir, master, attacks.ProjectFiles); err != nil {
			return err
		}
	}
	ac.Log.Infof("Saved project %q to %q", name, dir.Path())

	if saveMerged {
		return ac.Save(animDataPath, animSetDataPath)
	}
	return nil
}

// Save rewrites both merged files.
func (ac *AnimationCache) Save(animDataPath, animSetDataPath string) error {
	for _, f := range []struct {
		path  string
		block animdata.Block
	}{
		{animDataPath, ac.animData},
		{animSetDataPath, ac.animSetData},
	} {
		dir := vfs.NewDirectoryDriver(filepath.Dir(f.path))
		if err := writeBlock(dir, filepath.Base(f.path), f.block); err != nil {
			return err
		}
		ac.Log.Debugf("Wrote %q", f.path)
	}
	return nil
}

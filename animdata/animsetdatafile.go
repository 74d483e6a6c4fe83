package animdata

import (
	"strings"

	"github.com/pkg/errors"
)

// AnimSetDataFile is the merged animation set data file: project file paths
// ("FooData\Foo.txt") followed by one ProjectAttackListBlock per path.
type AnimSetDataFile struct {
	Projects       []string
	ProjectAttacks []*ProjectAttackListBlock
}

// sameProjectPath compares set data paths ignoring case and separator style.
func sameProjectPath(a, b string) bool {
	return strings.EqualFold(strings.ReplaceAll(a, "/", `\`), strings.ReplaceAll(b, "/", `\`))
}

// FindProjectAttackBlockIndex returns the index of the project recorded as name, or -1.
func (sf *AnimSetDataFile) FindProjectAttackBlockIndex(name string) int {
	for i, p := range sf.Projects {
		if sameProjectPath(p, name) {
			return i
		}
	}
	return -1
}

func (sf *AnimSetDataFile) TryGetProjectAttackBlock(name string) (*ProjectAttackListBlock, bool) {
	i := sf.FindProjectAttackBlockIndex(name)
	if i < 0 || i >= len(sf.ProjectAttacks) {
		return nil, false
	}
	return sf.ProjectAttacks[i], true
}

func (sf *AnimSetDataFile) AddProjectAttackBlock(name string, block *ProjectAttackListBlock) int {
	sf.Projects = append(sf.Projects, name)
	sf.ProjectAttacks = append(sf.ProjectAttacks, block)
	return len(sf.ProjectAttacks) - 1
}

func (sf *AnimSetDataFile) ReadBlock(r *LineReader) error {
	sf.Projects = nil
	sf.ProjectAttacks = nil

	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "project count")
	}
	if sf.Projects, err = r.Strings(count); err != nil {
		return err
	}
	for r.More() {
		pl := &ProjectAttackListBlock{}
		if err := pl.ReadBlock(r); err != nil {
			if i := len(sf.ProjectAttacks); i < len(sf.Projects) {
				return errors.Wrapf(err, "project %q", sf.Projects[i])
			}
			return err
		}
		sf.ProjectAttacks = append(sf.ProjectAttacks, pl)
	}
	if len(sf.ProjectAttacks) != len(sf.Projects) {
		return errors.Wrapf(ErrMalformedData, "%d projects listed, %d attack lists found",
			len(sf.Projects), len(sf.ProjectAttacks))
	}
	return nil
}

func (sf *AnimSetDataFile) WriteBlock(w *LineWriter) error {
	if len(sf.Projects) != len(sf.ProjectAttacks) {
		return errors.Wrapf(ErrMalformedData, "%d projects for %d attack lists",
			len(sf.Projects), len(sf.ProjectAttacks))
	}
	w.Int(len(sf.Projects))
	w.Strings(sf.Projects)
	for i, pl := range sf.ProjectAttacks {
		if err := pl.WriteBlock(w); err != nil {
			return errors.Wrapf(err, "project %q", sf.Projects[i])
		}
	}
	return w.Err()
}

package animdata

import (
	"strings"

	"github.com/pkg/errors"
)

// Merged file names inside the meshes folder.
const (
	AnimationDataMergedFile    = "animationdatasinglefile.txt"
	AnimationSetDataMergedFile = "animationsetdatasinglefile.txt"
)

// AnimDataFile is the merged animation data file:
//
//	project count
//	project name (per project)
//	per project: line count, ProjectBlock lines,
//	  and when the block has an animation cache: line count, ProjectDataBlock lines
//
// The line counts live only in the merged file, so the blocks themselves can be
// written as standalone per-project files.
type AnimDataFile struct {
	Projects      []string
	ProjectBlocks []*ProjectBlock
	// Sparse, keyed by project index. Present only for blocks with HasAnimationCache.
	MovementData map[int]*ProjectDataBlock
}

func NewAnimDataFile() *AnimDataFile {
	return &AnimDataFile{MovementData: make(map[int]*ProjectDataBlock)}
}

func (af *AnimDataFile) AddProject(name string, block *ProjectBlock) int {
	af.Projects = append(af.Projects, name)
	af.ProjectBlocks = append(af.ProjectBlocks, block)
	return len(af.ProjectBlocks) - 1
}

func (af *AnimDataFile) AddProjectWithMovement(name string, block *ProjectBlock, movement *ProjectDataBlock) int {
	idx := af.AddProject(name, block)
	if af.MovementData == nil {
		af.MovementData = make(map[int]*ProjectDataBlock)
	}
	af.MovementData[idx] = movement
	return idx
}

// ProjectIndex returns the index of the project named name (case-insensitive), or -1.
func (af *AnimDataFile) ProjectIndex(name string) int {
	for i, p := range af.Projects {
		if strings.EqualFold(p, name) {
			return i
		}
	}
	return -1
}

func (af *AnimDataFile) ReadBlock(r *LineReader) error {
	af.Projects = nil
	af.ProjectBlocks = nil
	af.MovementData = make(map[int]*ProjectDataBlock)

	count, err := r.Count()
	if err != nil {
		return errors.Wrapf(err, "project count")
	}
	if af.Projects, err = r.Strings(count); err != nil {
		return err
	}

	af.ProjectBlocks = make([]*ProjectBlock, len(af.Projects))
	for i, name := range af.Projects {
		sub, err := readSection(r)
		if err != nil {
			return errors.Wrapf(err, "project %q", name)
		}
		pb := &ProjectBlock{}
		if err := pb.ReadBlock(sub); err != nil {
			return errors.Wrapf(err, "project %q", name)
		}
		af.ProjectBlocks[i] = pb

		if pb.HasAnimationCache {
			if sub, err = readSection(r); err != nil {
				return errors.Wrapf(err, "project %q movement", name)
			}
			md := &ProjectDataBlock{}
			if err := md.ReadBlock(sub); err != nil {
				return errors.Wrapf(err, "project %q movement", name)
			}
			af.MovementData[i] = md
		}
	}
	return nil
}

func readSection(r *LineReader) (*LineReader, error) {
	n, err := r.Count()
	if err != nil {
		return nil, errors.Wrapf(err, "line count")
	}
	return r.Sub(n)
}

func (af *AnimDataFile) WriteBlock(w *LineWriter) error {
	if len(af.Projects) != len(af.ProjectBlocks) {
		return errors.Wrapf(ErrMalformedData, "%d project names for %d project blocks",
			len(af.Projects), len(af.ProjectBlocks))
	}
	w.Int(len(af.Projects))
	w.Strings(af.Projects)

	for i, pb := range af.ProjectBlocks {
		w.Int(pb.LineCount())
		if err := pb.WriteBlock(w); err != nil {
			return errors.Wrapf(err, "project %q", af.Projects[i])
		}
		if pb.HasAnimationCache {
			md, ok := af.MovementData[i]
			if !ok || md == nil {
				return errors.Wrapf(ErrMalformedData, "project %q: missing animation cache", af.Projects[i])
			}
			w.Int(md.LineCount())
			if err := md.WriteBlock(w); err != nil {
				return errors.Wrapf(err, "project %q movement", af.Projects[i])
			}
		}
	}
	return w.Err()
}

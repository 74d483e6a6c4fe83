package animdata

import (
	"github.com/pkg/errors"
)

// ProjectBlock lists a project's behavior files and its clips.
// Clips take the rest of the block, so the reader must be bounded to it.
type ProjectBlock struct {
	HasProjectFiles   bool
	ProjectFiles      []string
	HasAnimationCache bool
	Clips             []*ClipGeneratorBlock
}

func (pb *ProjectBlock) LineCount() int {
	n := 2
	if pb.HasProjectFiles {
		n += 1 + len(pb.ProjectFiles)
	}
	if pb.HasAnimationCache {
		for _, c := range pb.Clips {
			n += c.LineCount()
		}
	}
	return n
}

func (pb *ProjectBlock) ReadBlock(r *LineReader) (err error) {
	pb.ProjectFiles = nil
	pb.Clips = nil

	if pb.HasProjectFiles, err = r.Flag(); err != nil {
		return err
	}
	if pb.HasProjectFiles {
		count, err := r.Count()
		if err != nil {
			return errors.Wrapf(err, "project file count")
		}
		if pb.ProjectFiles, err = r.Strings(count); err != nil {
			return err
		}
	}
	if pb.HasAnimationCache, err = r.Flag(); err != nil {
		return err
	}
	if pb.HasAnimationCache {
		for r.More() {
			clip := &ClipGeneratorBlock{}
			if err := clip.ReadBlock(r); err != nil {
				return err
			}
			pb.Clips = append(pb.Clips, clip)
		}
	}
	return nil
}

func (pb *ProjectBlock) WriteBlock(w *LineWriter) error {
	w.Flag(pb.HasProjectFiles)
	if pb.HasProjectFiles {
		w.Int(len(pb.ProjectFiles))
		w.Strings(pb.ProjectFiles)
	}
	w.Flag(pb.HasAnimationCache)
	if pb.HasAnimationCache {
		for _, clip := range pb.Clips {
			if err := clip.WriteBlock(w); err != nil {
				return err
			}
		}
	}
	return w.Err()
}

// Clip returns the first clip with the given name.
func (pb *ProjectBlock) Clip(name string) *ClipGeneratorBlock {
	for _, c := range pb.Clips {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (pb *ProjectBlock) Clone() *ProjectBlock {
	c := &ProjectBlock{
		HasProjectFiles:   pb.HasProjectFiles,
		ProjectFiles:      cloneSlice(pb.ProjectFiles),
		HasAnimationCache: pb.HasAnimationCache,
	}
	if pb.Clips != nil {
		c.Clips = make([]*ClipGeneratorBlock, len(pb.Clips))
		for i, clip := range pb.Clips {
			c.Clips[i] = clip.Clone()
		}
	}
	return c
}

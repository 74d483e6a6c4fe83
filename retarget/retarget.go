package retarget

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/mogaika/creature_retargeter/animcache"
	"github.com/mogaika/creature_retargeter/animdata"
	"github.com/mogaika/creature_retargeter/utils"
)

const projectSuffix = "project"

type Job struct {
	// Source is the cache project of the creature to copy, like "BearProject".
	Source string
	// SourceName is the creature name searched for in strings.
	// Defaults to Source without its "project" suffix.
	SourceName string
	// Target is the new creature name. A placeholder is picked when empty.
	Target    string
	OutputDir string
	// AnimationFiles are the source animation paths relative to the meshes folder.
	// Their crcs are remapped in the attack set data.
	AnimationFiles []string
	SaveMerged     bool
}

type Result struct {
	Target        string
	Project       string
	Entry         *animcache.CacheEntry
	Substitutions Substitutions
}

type Retargeter struct {
	Cache   *animcache.AnimationCache
	Aliases AliasTable
	Log     *log.Logger

	names utils.RandomNameGenerator
}

func NewRetargeter(cache *animcache.AnimationCache, aliases AliasTable) *Retargeter {
	return &Retargeter{
		Cache:   cache,
		Aliases: aliases,
		Log:     utils.Log(),
	}
}

func trimProjectSuffix(name string) string {
	if len(name) > len(projectSuffix) && strings.EqualFold(name[len(name)-len(projectSuffix):], projectSuffix) {
		return name[:len(name)-len(projectSuffix)]
	}
	return name
}

func (rt *Retargeter) placeholderName() string {
	rt.names.Reserve(rt.Cache.Projects()...)
	for {
		name := rt.names.RandomName()
		if _, exists := rt.Cache.Entry(strings.ToLower(name) + projectSuffix); !exists {
			return name
		}
	}
}

// Run clones the source creature under the target name, renames everything
// inside the copy and saves it to the output folder.
func (rt *Retargeter) Run(job Job) (*Result, error) {
	src, ok := rt.Cache.Entry(job.Source)
	if !ok {
		if suggestions := rt.Cache.Suggest(job.Source, 3); len(suggestions) > 0 {
			return nil, errors.Wrapf(animcache.ErrProjectNotFound, "%q, closest creatures: %s",
				job.Source, strings.Join(suggestions, ", "))
		}
		return nil, errors.Wrapf(animcache.ErrProjectNotFound, "%q", job.Source)
	}

	target := job.Target
	if target == "" {
		target = rt.placeholderName()
		rt.Log.Infof("No target name given, using %q", target)
	}
	sourceName := job.SourceName
	if sourceName == "" {
		sourceName = trimProjectSuffix(src.Name)
	}
	patterns := rt.Aliases.Patterns(sourceName)
	rt.Log.Debugf("Retargeting %q to %q, name patterns %v", src.Name, target, patterns)

	subs := AnimationCRCMap(job.AnimationFiles, patterns, target)
	for _, s := range subs {
		rt.Log.Debugf("Will substitute %s references with %s", s.Old, s.New)
	}

	dst, err := rt.Cache.CloneCreature(src.Name, strings.ToLower(target)+projectSuffix)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to build cache for target creature")
	}
	if err := RenameAllOccurrences(dst.Block, patterns, target, nil); err != nil {
		return nil, errors.Wrapf(err, "Failed to rename project block")
	}
	if err := RenameAllOccurrences(dst.AttackList, patterns, target, subs); err != nil {
		return nil, errors.Wrapf(err, "Failed to rename attack list")
	}
	rt.Cache.RebuildIndex()

	project := target + projectSuffix
	err = rt.Cache.SaveCreature(project, dst,
		filepath.Join(job.OutputDir, animdata.AnimationDataMergedFile),
		filepath.Join(job.OutputDir, animdata.AnimationSetDataMergedFile),
		job.SaveMerged)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to save target creature")
	}

	rt.Log.Infof("Retargeted %q to %q", src.Name, project)
	return &Result{
		Target:        target,
		Project:       project,
		Entry:         dst,
		Substitutions: subs,
	}, nil
}

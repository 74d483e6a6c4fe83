package animcache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/mogaika/creature_retargeter/animdata"
	"github.com/mogaika/creature_retargeter/utils"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotCreature     = errors.New("project is not a creature")
	ErrProjectExists   = errors.New("project already exists")
)

type clipKey struct {
	project string
	clip    string
}

type eventKey struct {
	project string
	event   string
}

// AnimationCache owns both merged files and cross references their projects.
// It is not safe for concurrent use.
type AnimationCache struct {
	animData    *animdata.AnimDataFile
	animSetData *animdata.AnimSetDataFile

	miscEntries     []*CacheEntry
	creatureEntries []*CacheEntry

	projectIndices map[string]*CacheEntry
	movementMap    map[clipKey]*animdata.ClipMovementData
	eventMap       map[eventKey][]EventInfo

	Log *log.Logger
}

// New parses the two merged files. Both must exist.
func New(animDataPath, animSetDataPath string) (*AnimationCache, error) {
	for _, p := range []string{animDataPath, animSetDataPath} {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(animdata.ErrFileNotFound, "%q", p)
			}
			return nil, errors.Wrapf(err, "Failed to stat %q", p)
		}
	}

	animData := animdata.NewAnimDataFile()
	if err := animdata.ReadFile(animDataPath, animData); err != nil {
		return nil, err
	}
	animSetData := &animdata.AnimSetDataFile{}
	if err := animdata.ReadFile(animSetDataPath, animSetData); err != nil {
		return nil, err
	}
	return Load(animData, animSetData), nil
}

func NewFromMeshDir(meshDir string) (*AnimationCache, error) {
	return New(
		filepath.Join(meshDir, animdata.AnimationDataMergedFile),
		filepath.Join(meshDir, animdata.AnimationSetDataMergedFile))
}

// Load builds a cache over already parsed files. The cache takes ownership of them.
func Load(animData *animdata.AnimDataFile, animSetData *animdata.AnimSetDataFile) *AnimationCache {
	ac := &AnimationCache{
		animData:    animData,
		animSetData: animSetData,
		Log:         utils.Log(),
	}
	ac.build()
	return ac
}

func (ac *AnimationCache) build() {
	for i, project := range ac.animData.Projects {
		base := utils.FileBaseName(project)
		entryName := base + "Data/" + base + ".txt"
		entry := &CacheEntry{
			Block:    ac.animData.ProjectBlocks[i],
			Movement: ac.animData.MovementData[i],
		}

		if attacks, ok := ac.animSetData.TryGetProjectAttackBlock(entryName); ok {
			entry.Name = base
			entry.AttackList = attacks
			if entry.Block.HasAnimationCache && entry.Movement == nil {
				ac.Log.Warnf("Creature %q has no movement data", base)
			}
			ac.creatureEntries = append(ac.creatureEntries, entry)
		} else {
			entry.Name = entryName
			ac.miscEntries = append(ac.miscEntries, entry)
		}
	}
	ac.Log.Debugf("Animation cache: %d creatures, %d other projects",
		len(ac.creatureEntries), len(ac.miscEntries))

	ac.RebuildIndex()
}

// RebuildIndex recomputes every lookup table from the entry lists.
// Call it after changing names inside cached blocks.
func (ac *AnimationCache) RebuildIndex() {
	ac.projectIndices = make(map[string]*CacheEntry, len(ac.creatureEntries)+len(ac.miscEntries))
	for _, entry := range ac.creatureEntries {
		ac.projectIndices[strings.ToLower(entry.Name)] = entry
	}
	for _, entry := range ac.miscEntries {
		ac.projectIndices[strings.ToLower(entry.Name)] = entry
	}

	ac.movementMap = make(map[clipKey]*animdata.ClipMovementData)
	ac.eventMap = make(map[eventKey][]EventInfo)
	for _, creature := range ac.creatureEntries {
		project := strings.ToLower(creature.Name)

		// linking clips to root motion data
		if creature.Movement != nil {
			movements := creature.Movement.Movements
			for _, clip := range creature.Block.Clips {
				if clip.CacheIndex < len(movements) {
					if md := creature.Movement.Find(clip.CacheIndex); md != nil {
						ac.movementMap[clipKey{project, clip.Name}] = md
					}
				}
			}
		}

		for _, attackBlock := range creature.AttackList.ProjectAttackBlocks {
			if !attackBlock.HasHandVariableData() {
				for _, idleEvent := range attackBlock.SwapEvents {
					ac.addEvent(eventKey{project, idleEvent}, EventInfo{Type: EventIdle})
				}
			}
			for _, attackData := range attackBlock.ClipAttack.AttackData {
				ac.addEvent(eventKey{project, attackData.EventName}, EventInfo{
					Type:     EventAttack,
					Mirrored: attackData.IsMirrored(),
					HandData: attackBlock.HandVariableData.Variables,
				})
			}
		}
	}
}

func (ac *AnimationCache) addEvent(key eventKey, info EventInfo) {
	ac.eventMap[key] = append(ac.eventMap[key], info)
}

// Entry looks a project up by name, ignoring case.
func (ac *AnimationCache) Entry(name string) (*CacheEntry, bool) {
	e, ok := ac.projectIndices[strings.ToLower(name)]
	return e, ok
}

func (ac *AnimationCache) Creatures() []*CacheEntry {
	return append([]*CacheEntry(nil), ac.creatureEntries...)
}

func (ac *AnimationCache) MiscEntries() []*CacheEntry {
	return append([]*CacheEntry(nil), ac.miscEntries...)
}

// Movement returns the root motion linked to a creature clip.
func (ac *AnimationCache) Movement(project, clip string) (*animdata.ClipMovementData, bool) {
	md, ok := ac.movementMap[clipKey{strings.ToLower(project), clip}]
	return md, ok
}

// Events returns the event infos of a creature event in the order they were found.
func (ac *AnimationCache) Events(project, event string) []EventInfo {
	return ac.eventMap[eventKey{strings.ToLower(project), event}]
}

// Projects lists entry names, creatures first.
func (ac *AnimationCache) Projects() []string {
	names := make([]string, 0, len(ac.creatureEntries)+len(ac.miscEntries))
	for _, e := range ac.creatureEntries {
		names = append(names, e.Name)
	}
	for _, e := range ac.miscEntries {
		names = append(names, e.Name)
	}
	return names
}

func (ac *AnimationCache) AnimData() *animdata.AnimDataFile       { return ac.animData }
func (ac *AnimationCache) AnimSetData() *animdata.AnimSetDataFile { return ac.animSetData }

// Suggest returns up to n creature names closest to name, best match first.
func (ac *AnimationCache) Suggest(name string, n int) []string {
	type candidate struct {
		name string
		dist int
	}
	lname := strings.ToLower(name)
	candidates := make([]candidate, 0, len(ac.creatureEntries))
	for _, e := range ac.creatureEntries {
		candidates = append(candidates, candidate{
			name: e.Name,
			dist: levenshtein.ComputeDistance(lname, strings.ToLower(e.Name)),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	res := make([]string, len(candidates))
	for i, c := range candidates {
		res[i] = c.name
	}
	return res
}

// CloneCreature deep copies the creature srcProject into a new creature dstProject
// registered in both merged files.
func (ac *AnimationCache) CloneCreature(srcProject, dstProject string) (*CacheEntry, error) {
	src, ok := ac.Entry(srcProject)
	if !ok {
		return nil, errors.Wrapf(ErrProjectNotFound, "%q", srcProject)
	}
	if !src.IsCreature() {
		return nil, errors.Wrapf(ErrNotCreature, "%q", srcProject)
	}
	if _, exists := ac.Entry(dstProject); exists {
		return nil, errors.Wrapf(ErrProjectExists, "%q", dstProject)
	}

	block := src.Block.Clone()
	var movement *animdata.ProjectDataBlock
	if src.Movement != nil {
		movement = src.Movement.Clone()
	} else if block.HasAnimationCache {
		return nil, errors.Wrapf(animdata.ErrMalformedData, "creature %q: missing animation cache", src.Name)
	}
	attacks := src.AttackList.Clone()

	var index int
	if movement != nil {
		index = ac.animData.AddProjectWithMovement(dstProject+".txt", block, movement)
	} else {
		index = ac.animData.AddProject(dstProject+".txt", block)
	}
	creatureIdx := ac.animSetData.AddProjectAttackBlock(dstProject+"Data\\"+dstProject+".txt", attacks)

	ac.creatureEntries = append(ac.creatureEntries, &CacheEntry{
		Name:       dstProject,
		Block:      ac.animData.ProjectBlocks[index],
		Movement:   ac.animData.MovementData[index],
		AttackList: ac.animSetData.ProjectAttacks[creatureIdx],
	})
	ac.RebuildIndex()

	ac.Log.Infof("Cloned creature %q to %q", src.Name, dstProject)
	entry, _ := ac.Entry(dstProject)
	utils.LogDump(ac.Log, entry)
	return entry, nil
}

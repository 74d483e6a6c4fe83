package animcache

import (
	"io/ioutil"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogaika/creature_retargeter/animdata"
)

func copyFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{animdata.AnimationDataMergedFile, animdata.AnimationSetDataMergedFile} {
		data, err := ioutil.ReadFile(filepath.Join("..", "animdata", "testdata", name))
		require.NoError(t, err)
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), data, 0666))
	}
	return dir
}

func newTestCache(t *testing.T) (*AnimationCache, string) {
	t.Helper()
	dir := copyFixtures(t)
	ac, err := NewFromMeshDir(dir)
	require.NoError(t, err)
	ac.Log = log.New(ioutil.Discard)
	return ac, dir
}

func loadQuiet(af *animdata.AnimDataFile, sf *animdata.AnimSetDataFile) *AnimationCache {
	ac := Load(af, sf)
	ac.Log = log.New(ioutil.Discard)
	return ac
}

func TestNewMissingFile(t *testing.T) {
	dir := copyFixtures(t)
	_, err := New(filepath.Join(dir, animdata.AnimationDataMergedFile), filepath.Join(dir, "nope.txt"))
	assert.True(t, errors.Is(err, animdata.ErrFileNotFound), "got %v", err)

	_, err = NewFromMeshDir(t.TempDir())
	assert.True(t, errors.Is(err, animdata.ErrFileNotFound), "got %v", err)
}

func TestBuildClassifiesProjects(t *testing.T) {
	ac, _ := newTestCache(t)

	require.Len(t, ac.Creatures(), 1)
	require.Len(t, ac.MiscEntries(), 1)
	assert.Equal(t, []string{"BearProject", "ChairData/Chair.txt"}, ac.Projects())

	bear, ok := ac.Entry("bearproject")
	require.True(t, ok)
	assert.True(t, bear.IsCreature())
	assert.True(t, bear.HasAnimationCache())
	assert.NotNil(t, bear.Movement)
	assert.Len(t, bear.AttackList.ProjectFiles, 2)

	chair, ok := ac.Entry("CHAIRDATA/CHAIR.TXT")
	require.True(t, ok)
	assert.False(t, chair.IsCreature())
	assert.Nil(t, chair.Movement)
}

func TestIndexCompleteness(t *testing.T) {
	ac, _ := newTestCache(t)
	_, err := ac.CloneCreature("BearProject", "wolfproject")
	require.NoError(t, err)

	for _, e := range append(ac.Creatures(), ac.MiscEntries()...) {
		found, ok := ac.Entry(e.Name)
		require.True(t, ok, e.Name)
		assert.Same(t, e, found)
	}
}

func TestMovementLinkage(t *testing.T) {
	ac, _ := newTestCache(t)

	idle, ok := ac.Movement("BearProject", "Bear_Idle")
	require.True(t, ok)
	assert.Equal(t, 0, idle.CacheIndex)

	attack, ok := ac.Movement("bearproject", "Bear_Attack1")
	require.True(t, ok)
	assert.Equal(t, 1, attack.CacheIndex)
	assert.Equal(t, float32(3.06667), attack.Duration)

	_, ok = ac.Movement("bearproject", "bear_attack1")
	assert.False(t, ok, "clip names are case sensitive")
}

func TestMovementLinkageSkipsUnmatchedClips(t *testing.T) {
	af := animdata.NewAnimDataFile()
	af.AddProjectWithMovement("Foo.txt", &animdata.ProjectBlock{
		HasAnimationCache: true,
		Clips: []*animdata.ClipGeneratorBlock{
			{Name: "matched", CacheIndex: 0},
			{Name: "out_of_range", CacheIndex: 5},
			{Name: "no_sample", CacheIndex: 1},
		},
	}, &animdata.ProjectDataBlock{Movements: []*animdata.ClipMovementData{
		{CacheIndex: 0},
		{CacheIndex: 7},
	}})
	sf := &animdata.AnimSetDataFile{}
	sf.AddProjectAttackBlock(`FooData\Foo.txt`, &animdata.ProjectAttackListBlock{})

	ac := loadQuiet(af, sf)
	_, ok := ac.Movement("foo", "matched")
	assert.True(t, ok)
	_, ok = ac.Movement("foo", "out_of_range")
	assert.False(t, ok)
	_, ok = ac.Movement("foo", "no_sample")
	assert.False(t, ok)
}

func TestEventAccumulation(t *testing.T) {
	ac, _ := newTestCache(t)

	check := func() {
		events := ac.Events("BearProject", "attackStart")
		require.Len(t, events, 3)
		assert.Equal(t, EventAttack, events[0].Type)
		assert.False(t, events[0].Mirrored)
		assert.Empty(t, events[0].HandData)

		assert.Equal(t, EventAttack, events[1].Type)
		assert.False(t, events[1].Mirrored)
		assert.Len(t, events[1].HandData, 2)

		assert.True(t, events[2].Mirrored)
		assert.Equal(t, "iRightHandType", events[2].HandData[1].VariableName)

		assert.Equal(t, []EventInfo{{Type: EventIdle}}, ac.Events("bearproject", "tailCombatIdle"))
	}
	check()
	ac.RebuildIndex()
	check()

	assert.Empty(t, ac.Events("bearproject", "nothing"))
	assert.Equal(t, "Attack", EventAttack.String())
}

func TestMinimalProject(t *testing.T) {
	af := animdata.NewAnimDataFile()
	require.NoError(t, animdata.ReadBlockString(af, "1\nfoo.txt\n2\n0\n0\n"))

	ac := loadQuiet(af, &animdata.AnimSetDataFile{})
	require.Len(t, ac.MiscEntries(), 1)
	assert.Empty(t, ac.Creatures())

	entry := ac.MiscEntries()[0]
	assert.Equal(t, "fooData/foo.txt", entry.Name)
	assert.Nil(t, entry.Movement)
	assert.False(t, entry.HasAttackList())

	found, ok := ac.Entry("FOODATA/FOO.TXT")
	require.True(t, ok)
	assert.Same(t, entry, found)
}

func TestCreatureDetection(t *testing.T) {
	af := animdata.NewAnimDataFile()
	af.AddProject("Foo.txt", &animdata.ProjectBlock{HasProjectFiles: true, ProjectFiles: []string{}})
	sf := &animdata.AnimSetDataFile{}
	sf.AddProjectAttackBlock(`FooData\Foo.txt`, &animdata.ProjectAttackListBlock{})

	ac := loadQuiet(af, sf)
	require.Len(t, ac.Creatures(), 1)
	assert.Equal(t, "Foo", ac.Creatures()[0].Name)
	assert.True(t, ac.Creatures()[0].IsCreature())
}

func TestCloneCreature(t *testing.T) {
	ac, _ := newTestCache(t)
	bear, _ := ac.Entry("bearproject")

	wolf, err := ac.CloneCreature("BEARPROJECT", "wolfproject")
	require.NoError(t, err)
	assert.Equal(t, "wolfproject", wolf.Name)
	assert.True(t, wolf.IsCreature())

	assert.Equal(t, "wolfproject.txt", ac.AnimData().Projects[2])
	assert.Same(t, wolf.Block, ac.AnimData().ProjectBlocks[2])
	assert.Same(t, wolf.Movement, ac.AnimData().MovementData[2])
	assert.Equal(t, `wolfprojectData\wolfproject.txt`, ac.AnimSetData().Projects[1])
	assert.Same(t, wolf.AttackList, ac.AnimSetData().ProjectAttacks[1])

	assert.Equal(t, bear.Block, wolf.Block)
	assert.NotSame(t, bear.Block, wolf.Block)

	_, ok := ac.Movement("wolfproject", "Bear_Idle")
	assert.True(t, ok)
	assert.Len(t, ac.Events("wolfproject", "attackStart"), 3)
	assert.Len(t, ac.Events("bearproject", "attackStart"), 3)

	wolf.Block.Clips[0].Name = "Wolf_Idle"
	wolf.Movement.Movements[0].Duration = 9
	wolf.AttackList.ProjectAttackBlocks[0].SwapEvents[0] = "changed"
	assert.Equal(t, "Bear_Idle", bear.Block.Clips[0].Name)
	assert.Equal(t, float32(1.16667), bear.Movement.Movements[0].Duration)
	assert.Equal(t, "tailCombatIdle", bear.AttackList.ProjectAttackBlocks[0].SwapEvents[0])
}

func TestCloneCreatureErrors(t *testing.T) {
	ac, _ := newTestCache(t)

	_, err := ac.CloneCreature("deer", "x")
	assert.True(t, errors.Is(err, ErrProjectNotFound), "got %v", err)

	_, err = ac.CloneCreature("chairdata/chair.txt", "x")
	assert.True(t, errors.Is(err, ErrNotCreature), "got %v", err)

	_, err = ac.CloneCreature("bearproject", "BearProject")
	assert.True(t, errors.Is(err, ErrProjectExists), "got %v", err)

	assert.Len(t, ac.AnimData().Projects, 2)
	assert.Len(t, ac.AnimSetData().Projects, 1)
}

func TestCloneCreatureWithoutMovement(t *testing.T) {
	af := animdata.NewAnimDataFile()
	af.AddProject("Foo.txt", &animdata.ProjectBlock{HasAnimationCache: true})
	sf := &animdata.AnimSetDataFile{}
	sf.AddProjectAttackBlock(`FooData\Foo.txt`, &animdata.ProjectAttackListBlock{})

	ac := loadQuiet(af, sf)
	_, err := ac.CloneCreature("foo", "bar")
	assert.True(t, errors.Is(err, animdata.ErrMalformedData), "got %v", err)
}

func TestCloneAndRenameRoundTrip(t *testing.T) {
	ac, _ := newTestCache(t)
	bear, _ := ac.Entry("bearproject")

	wolf, err := ac.CloneCreature("bearproject", "wolfproject")
	require.NoError(t, err)

	text, err := animdata.BlockString(wolf.Block)
	require.NoError(t, err)
	text = regexp.MustCompile("(?i)bear").ReplaceAllLiteralString(text, "Wolf")
	require.NoError(t, animdata.ReadBlockString(wolf.Block, text))
	ac.RebuildIndex()

	require.Len(t, wolf.Block.Clips, len(bear.Block.Clips))
	for i, clip := range wolf.Block.Clips {
		orig := bear.Block.Clips[i]
		assert.Equal(t, regexp.MustCompile("(?i)bear").ReplaceAllLiteralString(orig.Name, "Wolf"), clip.Name)
		assert.Equal(t, orig.CacheIndex, clip.CacheIndex)
		assert.Equal(t, orig.PlaybackSpeed, clip.PlaybackSpeed)
		assert.Equal(t, orig.CropStartTime, clip.CropStartTime)
		assert.Equal(t, orig.CropEndTime, clip.CropEndTime)
		assert.Equal(t, len(orig.Events), len(clip.Events))
	}
	assert.Equal(t, "Wolf_Idle", wolf.Block.Clips[0].Name)
	assert.Equal(t, "SoundPlay.NPCWolfIdle", wolf.Block.Clips[0].Events[0].Label)
	assert.Equal(t, `Behaviors\WolfBehavior.hkx`, wolf.Block.ProjectFiles[0])
	assert.Equal(t, "Bear_Idle", bear.Block.Clips[0].Name)

	_, ok := ac.Movement("wolfproject", "Wolf_Idle")
	assert.True(t, ok)
	assert.Same(t, wolf.Block, ac.AnimData().ProjectBlocks[2])
}

func TestSuggest(t *testing.T) {
	ac, _ := newTestCache(t)
	_, err := ac.CloneCreature("bearproject", "wolfproject")
	require.NoError(t, err)

	assert.Equal(t, []string{"BearProject"}, ac.Suggest("bearprojct", 1))
	assert.Equal(t, []string{"wolfproject", "BearProject"}, ac.Suggest("Wolfproject", 5))
}

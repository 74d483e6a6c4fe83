package animcache

import (
	"github.com/mogaika/creature_retargeter/animdata"
)

type EventType int

const (
	EventIdle EventType = iota
	EventAttack
)

func (et EventType) String() string {
	switch et {
	case EventIdle:
		return "Idle"
	case EventAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// EventInfo describes one way a creature can fire an animation event.
// HandData is shared with the attack block it came from.
type EventInfo struct {
	Type     EventType
	Mirrored bool
	HandData []animdata.HandVariable
}

// CacheEntry is one project of the cache. Creatures carry an attack list,
// every other project leaves it nil.
type CacheEntry struct {
	Name       string
	Block      *animdata.ProjectBlock
	Movement   *animdata.ProjectDataBlock
	AttackList *animdata.ProjectAttackListBlock
}

func (e *CacheEntry) HasAttackList() bool { return e.AttackList != nil }

func (e *CacheEntry) IsCreature() bool { return e.HasAttackList() }

func (e *CacheEntry) HasAnimationCache() bool { return e.Block.HasAnimationCache }

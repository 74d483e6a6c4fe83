package utils

import (
	"math/rand"
	"strings"

	"github.com/Pallinder/go-randomdata"
)

// RandomNameGenerator hands out placeholder names, each one at most once.
// Names are compared case-insensitively.
type RandomNameGenerator struct {
	Seed int64
	used map[string]struct{}
}

// Reserve marks names that must never be returned.
func (rng *RandomNameGenerator) Reserve(names ...string) {
	rng.init()
	for _, name := range names {
		rng.used[strings.ToLower(name)] = struct{}{}
	}
}

func (rng *RandomNameGenerator) init() {
	if rng.used == nil {
		rng.used = make(map[string]struct{})
		randomdata.CustomRand(rand.New(rand.NewSource(rng.Seed)))
	}
}

func (rng *RandomNameGenerator) RandomName() string {
	rng.init()
	for {
		name := randomdata.SillyName()
		// avoid duplicate names
		key := strings.ToLower(name)
		if _, exists := rng.used[key]; !exists {
			rng.used[key] = struct{}{}
			return name
		}
	}
}

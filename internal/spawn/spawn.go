// Package spawn holds the difficulty-tier spawn tables and the distance rules
// that pick a creature key for a map position. It also builds the preview
// gallery used by cmd/preview to lay every creature out on a grid.
package spawn

import (
	"fmt"

	"monsterforge/internal/creatures"
	"monsterforge/internal/scenegraph"
	"monsterforge/internal/variation"
)

// Tier is a difficulty band. Higher tiers spawn farther from the player start.
type Tier int

const (
	Tier1 Tier = 1 + iota
	Tier2
	Tier3
	Tier4
	Tier5
)

// Distance thresholds between tiers, in tile units from the spawn point.
const (
	tier2Dist = 30
	tier3Dist = 60
	tier4Dist = 100
	tier5Dist = 150

	// Bosses can replace a regular pick past this distance.
	bossDist   = 120
	bossChance = 0.02
)

// tables lists the creature keys per tier, index 0 holding Tier1.
var tables = [5][]string{
	{"dungeon_rat", "slime", "goblin"},
	{"goblin_shaman", "goblin_thrower", "spider", "mushroom", "bat"},
	{"skeleton", "wolf", "lizard", "eye", "badlama"},
	{"crawler_killer", "shadow_stalker", "mimic", "flesh_golem"},
	{"living_armor", "plague_bearer", "lava_elemental", "void_spawn"},
}

// bosses are never in the regular tables; they replace a pick on a rare roll
// far from spawn.
var bosses = []string{
	"skeleton_lord", "dragon_king", "spider_queen", "the_butcher", "mordecai", "mongo",
}

// TierFor returns the difficulty tier for a position dist tiles from spawn.
func TierFor(dist float32) Tier {
	switch {
	case dist < tier2Dist:
		return Tier1
	case dist < tier3Dist:
		return Tier2
	case dist < tier4Dist:
		return Tier3
	case dist < tier5Dist:
		return Tier4
	}
	return Tier5
}

// Keys returns the spawn table for t. The slice is shared; callers must not
// mutate it.
func Keys(t Tier) []string {
	if t < Tier1 || t > Tier5 {
		return nil
	}
	return tables[t-1]
}

// Bosses returns the boss key list. Shared slice, do not mutate.
func Bosses() []string {
	return bosses
}

func choose(src variation.Source, keys []string) string {
	i := int(src.Float() * float32(len(keys)))
	if i >= len(keys) {
		i = len(keys) - 1
	}
	return keys[i]
}

// Pick draws a creature key from tier t's table.
func Pick(src variation.Source, t Tier) string {
	return choose(src, Keys(TierClamp(t)))
}

// TierClamp clamps t into the valid tier range.
func TierClamp(t Tier) Tier {
	if t < Tier1 {
		return Tier1
	}
	if t > Tier5 {
		return Tier5
	}
	return t
}

// Roll picks a creature key for a position dist tiles from spawn. Far from
// spawn there is a small chance the pick is upgraded to a boss; the second
// return reports that.
func Roll(src variation.Source, dist float32) (key string, boss bool) {
	key = Pick(src, TierFor(dist))
	if dist > bossDist && variation.Chance(src, bossChance) {
		return choose(src, bosses), true
	}
	return key, false
}

// GalleryOptions configures Gallery. Zero values get sane defaults.
type GalleryOptions struct {
	Columns int     // creatures per row, default 7
	Spacing float32 // grid cell size in world units, default 2
	Keys    []string
	Build   []creatures.Option
}

// GalleryEntry is one built creature in a gallery grid.
type GalleryEntry struct {
	Key   string
	Limbs *creatures.Limbs
}

// Gallery builds one of every listed creature under parent, laid out on an
// X/Z grid centered on the origin. When opts.Keys is empty it builds every
// canonical kind in enum order, all tiers then bosses.
func Gallery(parent *scenegraph.Node, opts GalleryOptions) ([]GalleryEntry, error) {
	if parent == nil {
		return nil, fmt.Errorf("spawn: nil parent node")
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 7
	}
	spacing := opts.Spacing
	if spacing <= 0 {
		spacing = 2
	}
	keys := opts.Keys
	if len(keys) == 0 {
		for _, k := range creatures.Kinds() {
			keys = append(keys, k.String())
		}
	}

	rows := (len(keys) + cols - 1) / cols
	out := make([]GalleryEntry, 0, len(keys))
	for i, key := range keys {
		col := i % cols
		row := i / cols
		cell := parent.Child("cell_" + key).At(
			(float32(col)-float32(cols-1)/2)*spacing,
			0,
			(float32(row)-float32(rows-1)/2)*spacing,
		)
		limbs, err := creatures.Build(cell, key, opts.Build...)
		if err != nil {
			return nil, fmt.Errorf("spawn: build %s: %w", key, err)
		}
		out = append(out, GalleryEntry{Key: key, Limbs: limbs})
	}
	return out, nil
}

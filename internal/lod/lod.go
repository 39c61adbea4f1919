package lod

import "strings"

// Level is the three-tier detail setting. It drives both mesh tessellation density
// (segment/ring counts) and structural completeness: builders skip fine substructures
// (fingers, nostrils, secondary horns) below the level they are gated to.
type Level int

const (
	Low Level = iota
	Medium
	High
)

// String returns the level name ("low", "medium", "high"). Unknown values return "high".
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	}
	return "high"
}

// Valid reports whether l is one of the three defined levels.
func (l Level) Valid() bool {
	return l >= Low && l <= High
}

// AtLeast reports whether l is at or above min. Builders gate optional substructures
// with e.g. l.AtLeast(lod.Medium); core limbs are never gated.
func (l Level) AtLeast(min Level) bool {
	return l >= min
}

// ParseLevel maps a config string ("low"/"medium"/"high", case-insensitive) to a Level.
// Unrecognized values fall back to High so a bad config never strips geometry silently.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low
	case "medium", "med":
		return Medium
	case "high", "":
		return High
	}
	return High
}

// Segments returns the horizontal subdivision count for round primitives at l.
func Segments(l Level) int32 {
	switch l {
	case High:
		return 32
	case Medium:
		return 16
	}
	return 8
}

// Rings returns the vertical subdivision count for round primitives at l.
func Rings(l Level) int32 {
	switch l {
	case High:
		return 16
	case Medium:
		return 8
	}
	return 4
}

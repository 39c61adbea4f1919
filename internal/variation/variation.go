// Package variation supplies the per-build randomness that keeps two creatures of
// the same type from looking identical. The random source is an explicit dependency
// passed into each build so a fixed-seed source can reproduce exact geometry in tests.
package variation

import (
	"math/rand"
	"time"
)

// Source yields uniform floats in [0, 1). One Source belongs to one build; sharing
// a Source across concurrent builds is the caller's responsibility to synchronize.
type Source interface {
	Float() float32
}

type randSource struct {
	r *rand.Rand
}

func (s *randSource) Float() float32 {
	return s.r.Float32()
}

// NewSeeded returns a Source with a fixed seed. Same seed, same sequence.
func NewSeeded(seed int64) Source {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

// New returns a time-seeded Source for ordinary (non-reproducible) builds.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

// Range returns a uniform value in [min, max].
func Range(src Source, min, max float32) float32 {
	return min + src.Float()*(max-min)
}

// Jitter returns base multiplied by a uniform factor in [1-amount, 1+amount].
// amount 0.1 gives the ±10% size wobble most builders use.
func Jitter(src Source, base, amount float32) float32 {
	return base * Range(src, 1-amount, 1+amount)
}

// Asymmetry returns a factor in [0.9, 1.1], applied independently per side so ears
// and horns never mirror exactly.
func Asymmetry(src Source) float32 {
	return Range(src, 0.9, 1.1)
}

// SizeMul returns an overall size multiplier in [0.85, 1.5]. Build applies one
// draw per creature so no two spawns of the same kind are exactly the same size.
func SizeMul(src Source) float32 {
	return Range(src, 0.85, 1.5)
}

// Chance reports true with probability p.
func Chance(src Source, p float32) bool {
	return src.Float() < p
}

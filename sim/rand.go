package sim

import "math/rand"

// RandSource yields uniform draws in [0,1). It is injected per call so
// the same parameters and the same draw sequence always reproduce the
// same trajectory.
type RandSource func() float64

// NewRand returns a seeded RandSource backed by math/rand. Two sources
// built from the same seed produce identical trajectories.
func NewRand(seed int64) RandSource {
	r := rand.New(rand.NewSource(seed))
	return r.Float64
}

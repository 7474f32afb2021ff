package mbes

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSVP is returned when a sound-velocity profile cannot be used
// for ray tracing: it is empty, its depths and speeds differ in length,
// its depth decreases between two samples, or it contains two
// consecutive samples at the same depth (which makes the per-layer
// gradient undefined).
var ErrInvalidSVP = errors.New("invalid sound-velocity profile")

// SoundVelocityProfile is a depth-ordered sequence of (depth, speed)
// samples describing how sound speed varies with depth in the water
// column. Depths must be strictly increasing from sample to sample;
// speeds may vary arbitrarily.
type SoundVelocityProfile struct {
	depths    []float64
	speeds    []float64
	gradients []float64
}

// NewSoundVelocityProfile validates depths/speeds and precomputes the
// per-interval gradient. depths must be non-empty, monotonically
// non-decreasing, and free of repeated depths; speeds must be the same
// length as depths.
func NewSoundVelocityProfile(depths, speeds []float64) (*SoundVelocityProfile, error) {
	if len(depths) == 0 || len(speeds) == 0 {
		return nil, fmt.Errorf("%w: empty profile", ErrInvalidSVP)
	}
	if len(depths) != len(speeds) {
		return nil, fmt.Errorf("%w: %d depths but %d speeds", ErrInvalidSVP, len(depths), len(speeds))
	}

	gradients := make([]float64, 0, len(depths)-1)
	for i := 0; i < len(depths)-1; i++ {
		dz := depths[i+1] - depths[i]
		if dz == 0 {
			return nil, fmt.Errorf("%w: samples at same depth z=%g (index %d and %d)", ErrInvalidSVP, depths[i], i, i+1)
		}
		if dz < 0 {
			return nil, fmt.Errorf("%w: depth decreases from %g (index %d) to %g (index %d)", ErrInvalidSVP, depths[i], i, depths[i+1], i+1)
		}
		gradients = append(gradients, (speeds[i+1]-speeds[i])/dz)
	}

	return &SoundVelocityProfile{
		depths:    append([]float64(nil), depths...),
		speeds:    append([]float64(nil), speeds...),
		gradients: gradients,
	}, nil
}

// Depths returns the profile's sample depths in order, surface first.
func (s *SoundVelocityProfile) Depths() []float64 { return s.depths }

// Speeds returns the profile's sample speeds, aligned with Depths.
func (s *SoundVelocityProfile) Speeds() []float64 { return s.speeds }

// Gradients returns the per-interval sound-speed gradient, of length
// Size()-1: Gradients()[i] is the gradient between Depths()[i] and
// Depths()[i+1].
func (s *SoundVelocityProfile) Gradients() []float64 { return s.gradients }

// Size returns the number of samples N.
func (s *SoundVelocityProfile) Size() int { return len(s.depths) }

// LayerIndexForDepth returns the smallest index j such that
// Depths()[j] >= d, or Size() if d is deeper than every sample.
func (s *SoundVelocityProfile) LayerIndexForDepth(d float64) int {
	return sort.Search(len(s.depths), func(i int) bool {
		return s.depths[i] >= d
	})
}

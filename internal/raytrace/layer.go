package raytrace

import (
	"errors"
	"fmt"
	"math"
)

// gradientEpsilon is the tolerance below which a layer's sound-speed
// gradient is treated as zero (constant-celerity propagation) rather
// than as a constant gradient (circular-arc propagation).
const gradientEpsilon = 1e-6

// ErrInvalidGeometry is returned when Snell's law produces a non-real
// sin(beta) in some layer: |k*c| >= 1, meaning the beam has turned
// horizontal. The input ping/SVP combination is unphysical.
var ErrInvalidGeometry = errors.New("invalid ray geometry: total internal reflection")

// ErrInvalidSVP is returned when the ray tracer is handed an empty
// sound-velocity profile. mbes.NewSoundVelocityProfile also rejects
// degenerate profiles (repeated depths) before they ever reach here.
var ErrInvalidSVP = errors.New("invalid sound-velocity profile")

// layerResult is the (delta-range, delta-depth, delta-time) produced by
// propagating a ray across one layer.
type layerResult struct {
	deltaR float64
	deltaZ float64
	deltaT float64
}

// sinBeta returns sin(beta) for a layer with local speed c and Snell's
// constant k, or an error if the geometry is unphysical (cos(beta) >= 1
// in magnitude, i.e. sin^2(beta) <= 0). layer identifies which stage of
// the integrator produced the call ("step1-seed", "layer[i]",
// "terminal-tail"), so a Snell violation names its origin.
func sinBeta(k, c float64, layer string) (float64, error) {
	cosBeta := k * c
	s2 := 1 - cosBeta*cosBeta
	if s2 <= 0 {
		return 0, fmt.Errorf("%w: %s: k*c=%g", ErrInvalidGeometry, layer, cosBeta)
	}
	return math.Sqrt(s2), nil
}

// constantCelerity propagates a ray across a layer of constant speed c
// spanning depths [z0, z1].
func constantCelerity(z0, z1, c, k float64, layer string) (layerResult, error) {
	sinB, err := sinBeta(k, c, layer)
	if err != nil {
		return layerResult{}, err
	}
	deltaZ := z1 - z0
	deltaT := deltaZ / (c * sinB)
	deltaR := k * c * c * deltaT
	return layerResult{deltaR: deltaR, deltaZ: deltaZ, deltaT: deltaT}, nil
}

// constantGradient propagates a ray across a layer whose speed varies
// linearly from c0 (top) to c1 (bottom) with gradient g (|g| assumed
// >= gradientEpsilon; callers pick the regime via isConstantGradient).
func constantGradient(c0, c1, g, k float64, layer string) (layerResult, error) {
	sinB0, err := sinBeta(k, c0, layer)
	if err != nil {
		return layerResult{}, err
	}
	sinB1, err := sinBeta(k, c1, layer)
	if err != nil {
		return layerResult{}, err
	}
	cosB0 := k * c0
	cosB1 := k * c1

	radius := 1.0 / (k * math.Abs(g))
	deltaT := math.Abs((1.0 / math.Abs(g)) * math.Log((c1/c0)*(1.0+sinB0)/(1.0+sinB1)))
	deltaZ := radius * (cosB1 - cosB0)
	deltaR := radius * (sinB0 - sinB1)
	return layerResult{deltaR: deltaR, deltaZ: deltaZ, deltaT: deltaT}, nil
}

// isConstantGradient reports whether a layer's gradient is large enough
// to require the constant-gradient (circular-arc) regime rather than
// constant-celerity.
func isConstantGradient(g float64) bool {
	return math.Abs(g) >= gradientEpsilon
}

// propagateLayer dispatches to the constant-celerity or constant-gradient
// primitive based on the layer's gradient, per the classifier in the
// core's layer-primitives component. layer identifies the caller's
// stage for error reporting; see sinBeta.
func propagateLayer(z0, z1, c0, c1, g, k float64, layer string) (layerResult, error) {
	if isConstantGradient(g) {
		return constantGradient(c0, c1, g, k, layer)
	}
	return constantCelerity(z0, z1, c0, k, layer)
}

// terminalTail propagates the remaining one-way budget tau at constant
// speed cLast without further refraction, closing the ray exactly at
// the travel-time budget.
func terminalTail(tau, cLast, k float64) (layerResult, error) {
	sinB, err := sinBeta(k, cLast, "terminal-tail")
	if err != nil {
		return layerResult{}, err
	}
	cosB := k * cLast
	deltaR := cLast * tau * cosB
	deltaZ := cLast * tau * sinB
	return layerResult{deltaR: deltaR, deltaZ: deltaZ, deltaT: tau}, nil
}

package raytrace

import (
	"fmt"
	"math"
)

// accumulator carries the running state of a ray trace: horizontal
// range X, depth Z, and cumulative one-way travel time, plus (in planar
// mode) the ordered per-layer segments and travel times.
type accumulator struct {
	x, z, t float64
	planar  bool
	rays    []LayerSegment
	times   []float64
}

func (a *accumulator) commit(lr layerResult) {
	a.x += lr.deltaR
	a.z += lr.deltaZ
	a.t += lr.deltaT
	if a.planar {
		a.rays = append(a.rays, LayerSegment{DeltaRange: lr.deltaR, DeltaDepth: lr.deltaZ})
		a.times = append(a.times, lr.deltaT)
	}
}

// integrate walks the SVP from the transducer depth, committing layers
// until the one-way travel budget T is exhausted, then closes the ray
// with a straight-line terminal tail. It implements steps 1-3 of the
// ray integrator: transducer-to-first-boundary seed, interior layers,
// terminal tail.
func integrate(p PingSource, svp ProfileSource, k, oneWayBudget float64, planar bool) (accumulator, error) {
	acc := accumulator{planar: planar}

	if svp.Size() == 0 {
		return accumulator{}, ErrInvalidSVP
	}

	if oneWayBudget <= 0 {
		// Budget exhaustion with zero traversal is a valid outcome, not
		// an error: the ray never leaves the transducer.
		return acc, nil
	}

	depths := svp.Depths()
	speeds := svp.Speeds()
	gradients := svp.Gradients()
	n := svp.Size()

	j0 := svp.LayerIndexForDepth(p.TransducerDepth())

	// Step 1 - transducer-to-first-boundary seed. A rejected seed's
	// duration is simply never added to acc.t, so it cannot leak into
	// the Step-2 budget test below. This is the "reset to zero" fix for
	// the source's latent bug flagged as an Open Question: there, the
	// uncommitted seed's travel time stayed in a loop-scoped variable
	// and silently participated in the first Step-2 predicate.
	if j0 < n && depths[j0] != p.TransducerDepth() {
		// A transducer sitting exactly on an SVP sample has a zero-height
		// virtual seed layer; skip it rather than dividing by zero when
		// computing its gradient.
		seedGradient := (speeds[j0] - p.SurfaceSoundSpeed()) / (depths[j0] - p.TransducerDepth())
		lr, err := propagateLayer(p.TransducerDepth(), depths[j0], p.SurfaceSoundSpeed(), speeds[j0], seedGradient, k, "step1-seed")
		if err != nil {
			return accumulator{}, err
		}
		if acc.t+lr.deltaT <= oneWayBudget {
			acc.commit(lr)
		} else {
			Logf("raytrace: step-1 seed (%.6fs) exceeds one-way budget (%.6fs), skipping", lr.deltaT, oneWayBudget)
		}
	}

	// Step 2 - interior layers.
	i := j0
	for i < n-1 {
		lr, err := propagateLayer(depths[i], depths[i+1], speeds[i], speeds[i+1], gradients[i], k, fmt.Sprintf("layer[%d]", i))
		if err != nil {
			return accumulator{}, err
		}
		if acc.t+lr.deltaT > oneWayBudget {
			break
		}
		acc.commit(lr)
		i++
	}

	// Step 3 - terminal tail.
	var cLast float64
	if j0 < n {
		cLast = speeds[i]
	} else {
		cLast = p.SurfaceSoundSpeed()
	}
	tau := oneWayBudget - acc.t
	lr, err := terminalTail(tau, cLast, k)
	if err != nil {
		return accumulator{}, err
	}
	acc.commit(lr)

	return acc, nil
}

// snellConstant returns k = cos(beta0)/c_surface, the Snell invariant
// for a ray launched at depression angle beta0 with surface speed
// cSurface.
func snellConstant(beta0, cSurface float64) float64 {
	return math.Cos(beta0) / cSurface
}

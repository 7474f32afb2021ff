// Package navframe implements the coordinate-frame plumbing the ray
// tracer needs but treats as an opaque boundary: turning sonar-frame
// beam angles into a navigation-frame unit vector, and composing the
// boresight/IMU rotation matrices that get it there.
package navframe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotation is a 3x3 orthonormal rotation matrix, e.g. a boresight
// matrix (sonar mechanical frame -> IMU frame) or an imu2nav matrix
// (IMU frame -> local North-East-Down navigation frame).
type Rotation struct {
	m *mat.Dense
}

// Identity returns the identity rotation.
func Identity() Rotation {
	return Rotation{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// NewRotation builds a Rotation from a row-major 3x3 slice of 9 values.
func NewRotation(rowMajor []float64) (Rotation, error) {
	if len(rowMajor) != 9 {
		return Rotation{}, fmt.Errorf("navframe: rotation needs 9 values, got %d", len(rowMajor))
	}
	return Rotation{m: mat.NewDense(3, 3, append([]float64(nil), rowMajor...))}, nil
}

// Yaw returns the rotation that turns a NED frame about its Down axis
// by the given heading angle (radians, positive clockwise from North).
// Composing this onto imu2nav is how a vessel heading correction is
// applied without touching the ray-tracing math itself.
func Yaw(radians float64) Rotation {
	c, s := math.Cos(radians), math.Sin(radians)
	return Rotation{m: mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})}
}

// Compose returns the rotation equivalent to applying r first, then o:
// o.Compose(r) == o * r.
func (o Rotation) Compose(r Rotation) Rotation {
	var out mat.Dense
	out.Mul(o.m, r.m)
	return Rotation{m: &out}
}

// Apply rotates the unit vector v through this rotation.
func (o Rotation) Apply(v [3]float64) [3]float64 {
	in := mat.NewVecDense(3, v[:])
	var out mat.VecDense
	out.MulVec(o.m, in)
	return [3]float64{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

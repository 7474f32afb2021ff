// Package raytrace implements the acoustic ray-tracing core: Snell's-law
// refraction of a sonar beam through a piecewise-layered water column,
// terminating at a prescribed one-way travel-time budget.
package raytrace

// PingSource is the read-only contract the ray tracer needs from a
// sonar ping. mbes.Ping satisfies it.
type PingSource interface {
	TwoWayTravelTime() float64
	SurfaceSoundSpeed() float64
	TransducerDepth() float64
	AlongTrackAngle() float64
	AcrossTrackAngle() float64
}

// ProfileSource is the read-only contract the ray tracer needs from a
// sound-velocity profile. mbes.SoundVelocityProfile satisfies it.
type ProfileSource interface {
	Depths() []float64
	Speeds() []float64
	Gradients() []float64
	Size() int
	LayerIndexForDepth(d float64) int
}

// Rotation is the contract for the boresight and imu2nav rotation
// matrices. navframe.Rotation satisfies it.
type Rotation interface {
	Apply(v [3]float64) [3]float64
}

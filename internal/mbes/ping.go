// Package mbes provides the value types the ray-tracing core operates on:
// a single sonar ping and the sound-velocity profile it is traced through.
package mbes

// Ping is a single acoustic shot: a measured two-way travel time, the
// sound speed at the transducer, the transducer's depth below the
// surface, and the beam's launch angles in the sonar frame. A Ping is
// immutable once built and is meant to be discarded after one ray trace.
type Ping struct {
	twoWayTravelTime  float64
	surfaceSoundSpeed float64
	transducerDepth   float64
	alongTrackAngle   float64
	acrossTrackAngle  float64
}

// NewPing builds a Ping from its raw measurements. Angles are radians,
// travel time is seconds, speeds and depths are metres/metres-per-second.
func NewPing(twoWayTravelTime, surfaceSoundSpeed, transducerDepth, alongTrackAngle, acrossTrackAngle float64) Ping {
	return Ping{
		twoWayTravelTime:  twoWayTravelTime,
		surfaceSoundSpeed: surfaceSoundSpeed,
		transducerDepth:   transducerDepth,
		alongTrackAngle:   alongTrackAngle,
		acrossTrackAngle:  acrossTrackAngle,
	}
}

func (p Ping) TwoWayTravelTime() float64  { return p.twoWayTravelTime }
func (p Ping) SurfaceSoundSpeed() float64 { return p.surfaceSoundSpeed }
func (p Ping) TransducerDepth() float64   { return p.transducerDepth }
func (p Ping) AlongTrackAngle() float64   { return p.alongTrackAngle }
func (p Ping) AcrossTrackAngle() float64  { return p.acrossTrackAngle }

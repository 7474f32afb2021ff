package raytrace

import "github.com/monocilindro/MBES-lib/internal/navframe"

// SonarToCartesian maps sonar-frame beam angles to a unit vector in the
// sonar's mechanical frame. The ray tracer treats this as an opaque
// boundary (see the module's external interfaces); it defaults to
// navframe.BeamVector and may be swapped by callers that use a
// different sonar convention, the same way Logf is swappable without
// changing its callers.
var SonarToCartesian = navframe.BeamVector

// launchGeometry resolves a ping's launch vector into the navigation
// frame and decomposes it into azimuth sin/cos and a depression angle
// beta0, measured from the horizontal, positive downward.
func launchGeometry(p PingSource, boresight, imu2nav Rotation) (sinAz, cosAz, beta0 float64) {
	beamSonar := SonarToCartesian(p.AlongTrackAngle(), p.AcrossTrackAngle())
	beamNav := imu2nav.Apply(boresight.Apply(beamSonar))
	return navframe.LaunchGeometry(beamNav)
}

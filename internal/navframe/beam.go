package navframe

import "math"

// BeamVector implements the sonar-to-cartesian convention named in the
// core's external interfaces: given along-track angle alpha and
// across-track angle gamma (both radians, sonar frame), it returns the
// corresponding unit vector in the sonar's mechanical frame.
func BeamVector(alongTrackAngle, acrossTrackAngle float64) [3]float64 {
	sa, ca := math.Sin(alongTrackAngle), math.Cos(alongTrackAngle)
	sg, cg := math.Sin(acrossTrackAngle), math.Cos(acrossTrackAngle)
	v := [3]float64{sa * cg, sg, ca * cg}
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// LaunchGeometry decomposes a navigation-frame unit vector (as produced
// by rotating a BeamVector through boresight then imu2nav) into a
// horizontal azimuth (sin/cos) and a depression angle measured from the
// horizontal, positive downward, per the NED convention.
func LaunchGeometry(navVector [3]float64) (sinAz, cosAz, depression float64) {
	h := math.Hypot(navVector[0], navVector[1])
	if h > 0 {
		sinAz = navVector[0] / h
		cosAz = navVector[1] / h
	}
	z := navVector[2]
	switch {
	case z > 1:
		z = 1
	case z < -1:
		z = -1
	}
	depression = math.Asin(z)
	return sinAz, cosAz, depression
}

package raytrace

// Result is the 3-D ray-trace output: a point in the local navigation
// frame (North, East, Down), in metres.
type Result struct {
	North float64
	East  float64
	Down  float64
}

// LayerSegment is one committed layer's contribution to the ray, as a
// (delta-range, delta-depth) pair in metres.
type LayerSegment struct {
	DeltaRange float64
	DeltaDepth float64
}

// PlanarResult is the planar (range, depth) ray-trace output, together
// with the ordered per-layer segments and travel times that produced it.
type PlanarResult struct {
	Range            float64
	Depth            float64
	LayerSegments    []LayerSegment
	LayerTravelTimes []float64
}

// Trace runs the ray-tracing core in 3-D mode: it resolves the launch
// geometry, integrates the ray through svp, and projects the resulting
// horizontal range onto the navigation frame by azimuth.
func Trace(p PingSource, svp ProfileSource, boresight, imu2nav Rotation) (Result, error) {
	sinAz, cosAz, beta0 := launchGeometry(p, boresight, imu2nav)
	k := snellConstant(beta0, p.SurfaceSoundSpeed())

	acc, err := integrate(p, svp, k, p.TwoWayTravelTime()/2, false)
	if err != nil {
		return Result{}, err
	}

	return Result{
		North: acc.x * sinAz,
		East:  acc.x * cosAz,
		Down:  acc.z,
	}, nil
}

// PlanarTrace runs the ray-tracing core in planar mode: same (range,
// depth) as Trace's underlying integration, but exposes the per-layer
// segments and travel times instead of projecting into 3-D.
func PlanarTrace(p PingSource, svp ProfileSource, boresight, imu2nav Rotation) (PlanarResult, error) {
	_, _, beta0 := launchGeometry(p, boresight, imu2nav)
	k := snellConstant(beta0, p.SurfaceSoundSpeed())

	acc, err := integrate(p, svp, k, p.TwoWayTravelTime()/2, true)
	if err != nil {
		return PlanarResult{}, err
	}

	return PlanarResult{
		Range:            acc.x,
		Depth:            acc.z,
		LayerSegments:    acc.rays,
		LayerTravelTimes: acc.times,
	}, nil
}

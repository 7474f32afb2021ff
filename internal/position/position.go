// Package position provides a geodetic point that caches the sine and
// cosine of its latitude and longitude, and a local-tangent-plane
// approximation for projecting a ray trace's navigation-frame output
// onto a geodetic delta. It is a downstream consumer of the
// ray-tracing core, not part of it (see the core's scope boundary).
package position

import "math"

// earthRadiusMeters is a spherical Earth approximation, adequate for
// the local-tangent-plane offsets this package produces; it is not a
// substitute for a real ellipsoidal geodesy library.
const earthRadiusMeters = 6371000.0

// Point is a geodetic position with its latitude/longitude trigonometry
// precomputed once, matching the original raytracing core's downstream
// Position type: latitude and longitude in degrees, height in metres.
type Point struct {
	Latitude, Longitude, Height float64
	slat, clat, slon, clon      float64
}

// NewPoint builds a Point, caching sin/cos of latitude and longitude so
// that repeated geodetic math downstream (e.g. many Offset calls from
// the same origin) doesn't recompute them.
func NewPoint(latitudeDeg, longitudeDeg, heightMeters float64) Point {
	latRad := latitudeDeg * math.Pi / 180.0
	lonRad := longitudeDeg * math.Pi / 180.0
	return Point{
		Latitude:  latitudeDeg,
		Longitude: longitudeDeg,
		Height:    heightMeters,
		slat:      math.Sin(latRad),
		clat:      math.Cos(latRad),
		slon:      math.Sin(lonRad),
		clon:      math.Cos(lonRad),
	}
}

func (p Point) SinLat() float64 { return p.slat }
func (p Point) CosLat() float64 { return p.clat }
func (p Point) SinLon() float64 { return p.slon }
func (p Point) CosLon() float64 { return p.clon }

// Offset returns the geodetic point reached by walking (north, east,
// down) metres from p over a local tangent plane. This is a flat-earth
// approximation: fine for georeferencing a single ray-trace's seabed
// return near p, not a general-purpose geodetic transform.
func (p Point) Offset(north, east, down float64) Point {
	latRad := p.Latitude * math.Pi / 180.0
	dLat := north / earthRadiusMeters
	dLon := east / (earthRadiusMeters * math.Cos(latRad))
	return NewPoint(
		p.Latitude+dLat*180.0/math.Pi,
		p.Longitude+dLon*180.0/math.Pi,
		p.Height-down,
	)
}

// Command raytrace runs the acoustic ray-tracing core against a JSON
// scenario file describing a ping, a sound-velocity profile, and the
// boresight/imu2nav rotation matrices, printing both the 3-D and
// planar ray-trace results.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/monocilindro/MBES-lib/internal/mbes"
	"github.com/monocilindro/MBES-lib/internal/navframe"
	"github.com/monocilindro/MBES-lib/internal/raytrace"
)

// scenario is the on-disk JSON shape read by the CLI. Rotation matrices
// are optional and default to identity.
type scenario struct {
	Ping struct {
		TwoWayTravelTime  float64 `json:"twoWayTravelTime"`
		SurfaceSoundSpeed float64 `json:"surfaceSoundSpeed"`
		TransducerDepth   float64 `json:"transducerDepth"`
		AlongTrackAngle   float64 `json:"alongTrackAngle"`
		AcrossTrackAngle  float64 `json:"acrossTrackAngle"`
	} `json:"ping"`
	SVP struct {
		Depths []float64 `json:"depths"`
		Speeds []float64 `json:"speeds"`
	} `json:"svp"`
	Boresight []float64 `json:"boresight"`
	Imu2Nav   []float64 `json:"imu2nav"`
}

func loadScenario(path string) (scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return scenario{}, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	var s scenario
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	return s, nil
}

func rotationFrom(rowMajor []float64) (navframe.Rotation, error) {
	if len(rowMajor) == 0 {
		return navframe.Identity(), nil
	}
	return navframe.NewRotation(rowMajor)
}

type output struct {
	Point3D struct {
		North, East, Down float64
	} `json:"point3D"`
	Planar struct {
		Range, Depth float64
		LayerCount   int `json:"layerCount"`
	} `json:"planar"`
}

func run(scenarioPath string) (output, error) {
	s, err := loadScenario(scenarioPath)
	if err != nil {
		return output{}, err
	}

	svp, err := mbes.NewSoundVelocityProfile(s.SVP.Depths, s.SVP.Speeds)
	if err != nil {
		return output{}, fmt.Errorf("build svp: %w", err)
	}
	ping := mbes.NewPing(
		s.Ping.TwoWayTravelTime,
		s.Ping.SurfaceSoundSpeed,
		s.Ping.TransducerDepth,
		s.Ping.AlongTrackAngle,
		s.Ping.AcrossTrackAngle,
	)

	boresight, err := rotationFrom(s.Boresight)
	if err != nil {
		return output{}, fmt.Errorf("boresight: %w", err)
	}
	imu2nav, err := rotationFrom(s.Imu2Nav)
	if err != nil {
		return output{}, fmt.Errorf("imu2nav: %w", err)
	}

	point, err := raytrace.Trace(ping, svp, boresight, imu2nav)
	if err != nil {
		return output{}, fmt.Errorf("trace: %w", err)
	}
	planar, err := raytrace.PlanarTrace(ping, svp, boresight, imu2nav)
	if err != nil {
		return output{}, fmt.Errorf("planar trace: %w", err)
	}

	var out output
	out.Point3D.North = point.North
	out.Point3D.East = point.East
	out.Point3D.Down = point.Down
	out.Planar.Range = planar.Range
	out.Planar.Depth = planar.Depth
	out.Planar.LayerCount = len(planar.LayerSegments)
	return out, nil
}

// fail logs a fatal error through raytrace.Logf, the same diagnostic
// sink the integrator uses, then exits with a non-zero status.
func fail(format string, v ...interface{}) {
	raytrace.Logf(format, v...)
	os.Exit(1)
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a ray-trace scenario JSON file")
	flag.Parse()

	if *scenarioPath == "" {
		fail("raytrace: -scenario is required")
	}

	out, err := run(*scenarioPath)
	if err != nil {
		fail("raytrace: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(out); err != nil {
		fail("raytrace: encode result: %v", err)
	}
}

package navframe

import (
	"math"
	"testing"
)

func TestBeamVector_NadirIsUnitZ(t *testing.T) {
	v := BeamVector(0, 0)
	want := [3]float64{0, 0, 1}
	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-12 {
			t.Errorf("BeamVector(0,0)[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestBeamVector_IsUnit(t *testing.T) {
	v := BeamVector(0.3, -0.7)
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if math.Abs(n-1) > 1e-12 {
		t.Errorf("|BeamVector| = %v, want 1", n)
	}
}

func TestLaunchGeometry_Nadir(t *testing.T) {
	sinAz, cosAz, beta0 := LaunchGeometry([3]float64{0, 0, 1})
	if sinAz != 0 || cosAz != 0 {
		t.Errorf("nadir azimuth = (%v, %v), want (0, 0)", sinAz, cosAz)
	}
	if math.Abs(beta0-math.Pi/2) > 1e-12 {
		t.Errorf("beta0 = %v, want pi/2", beta0)
	}
}

func TestLaunchGeometry_Horizontal(t *testing.T) {
	sinAz, cosAz, beta0 := LaunchGeometry([3]float64{1, 0, 0})
	if math.Abs(sinAz-1) > 1e-12 || math.Abs(cosAz) > 1e-12 {
		t.Errorf("azimuth = (%v, %v), want (1, 0)", sinAz, cosAz)
	}
	if math.Abs(beta0) > 1e-12 {
		t.Errorf("beta0 = %v, want 0", beta0)
	}
}

func TestRotation_IdentityApplyIsNoop(t *testing.T) {
	v := [3]float64{0.1, 0.2, 0.3}
	got := Identity().Apply(v)
	for i := range v {
		if math.Abs(got[i]-v[i]) > 1e-12 {
			t.Errorf("Identity().Apply(v)[%d] = %v, want %v", i, got[i], v[i])
		}
	}
}

func TestRotation_YawPreservesDownComponent(t *testing.T) {
	v := [3]float64{1, 0, 0.5}
	got := Yaw(math.Pi / 3).Apply(v)
	if math.Abs(got[2]-v[2]) > 1e-12 {
		t.Errorf("Down component changed under yaw: got %v, want %v", got[2], v[2])
	}
	n0 := math.Hypot(v[0], v[1])
	n1 := math.Hypot(got[0], got[1])
	if math.Abs(n0-n1) > 1e-9 {
		t.Errorf("horizontal magnitude changed under yaw: got %v, want %v", n1, n0)
	}
}

func TestRotation_ComposeMatchesSequentialApply(t *testing.T) {
	v := [3]float64{1, 0, 0}
	yaw1 := Yaw(math.Pi / 6)
	yaw2 := Yaw(math.Pi / 4)

	sequential := yaw2.Apply(yaw1.Apply(v))
	composed := yaw2.Compose(yaw1).Apply(v)

	for i := range v {
		if math.Abs(sequential[i]-composed[i]) > 1e-9 {
			t.Errorf("component %d: sequential=%v composed=%v", i, sequential[i], composed[i])
		}
	}
}

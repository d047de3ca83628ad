package surface

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/colinrgodsey/cartesius/f64"

	"github.com/colinrgodsey/vec3d/lib/vec"
)

// planeSamples samples z = a*x + b*y + c on the integer grid [lo, hi]².
func planeSamples(a, b, c float64, lo, hi int) (samples []Sample) {
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			fx, fy := float64(x), float64(y)
			samples = append(samples, Sample{fx, fy, a*fx + b*fy + c})
		}
	}
	return
}

func TestPlaneNormals(t *testing.T) {
	const a, b = 0.1, 0.2
	interp, err := Interpolator(planeSamples(a, b, 0.5, -3, 13))
	if err != nil {
		t.Fatalf("failed to build interpolator: %v", err)
	}

	normals := NormalField(interp, f64.Vec2{10, 10}, 1)
	if len(normals) != 9*9 {
		t.Fatalf("expected 81 interior normals, got %v", len(normals))
	}

	want := vec.NewVec3(-a, -b, 1.0).Normalized()
	for _, n := range normals {
		d := vec.Eval(vec.Sub(n, want))
		if d.Norm() > 1e-3 {
			t.Fatalf("bad plane normal %v, want %v", n, want)
		}
	}
}

func TestFlatNormals(t *testing.T) {
	interp, err := Interpolator(planeSamples(0, 0, 2, -3, 9))
	if err != nil {
		t.Fatalf("failed to build interpolator: %v", err)
	}

	up := vec.NewVec3(0.0, 0.0, 1.0)
	for _, n := range NormalField(interp, f64.Vec2{6, 6}, 1) {
		if d := vec.Eval(vec.Sub(n, up)); d.Norm() > 1e-6 {
			t.Fatalf("flat surface normal should be +z, got %v", n)
		}
	}
}

func TestSampleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	samples := planeSamples(0.25, -0.5, 1, 0, 2)

	if err := SaveSampleFile(path, samples); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := LoadSampleFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != len(samples) {
		t.Fatalf("expected %v samples, got %v", len(samples), len(loaded))
	}
	for i := range samples {
		if loaded[i] != samples[i] {
			t.Fatalf("sample %v round trip: got %v, want %v", i, loaded[i], samples[i])
		}
	}

	if _, err := LoadSampleFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("loading a missing file should fail")
	}
}

func TestNormalUnit(t *testing.T) {
	interp, err := Interpolator(planeSamples(0.3, -0.1, 0, -3, 9))
	if err != nil {
		t.Fatalf("failed to build interpolator: %v", err)
	}
	for _, n := range NormalField(interp, f64.Vec2{6, 6}, 1) {
		if math.Abs(n.Norm()-1) > 1e-9 {
			t.Fatalf("normal is not unit length: %v", n)
		}
	}
}

package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var roundTests = []struct {
	in     float64
	places int
	out    float64
}{
	{1.005, 0, 1},
	{1.12345, 2, 1.12},
	{1.345, 2, 1.35},
	{-1.345, 2, -1.35},
	{2.5, 2, 2.5},
	{0.002, 2, 0},
}

func TestRoundPlaces(t *testing.T) {
	for _, test := range roundTests {
		result := RoundPlaces(test.in, test.places)
		if result != test.out {
			t.Errorf("RoundPlaces(%v,%d)=%v; expected %v", test.in, test.places, result, test.out)
		}
	}
}

func TestMulV3(t *testing.T) {
	got := MulV3(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 0, -1})
	if got != (mgl64.Vec3{2, 0, -3}) {
		t.Errorf("MulV3 = %v", got)
	}
}

func TestUniformV3(t *testing.T) {
	if !UniformV3(mgl64.Vec3{2, 2, 2}) {
		t.Error("uniform vector not detected")
	}
	if UniformV3(mgl64.Vec3{2, 2, 1}) {
		t.Error("non-uniform vector detected as uniform")
	}
}

func TestRandomNamesUnique(t *testing.T) {
	var rng RandomNameGenerator
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := rng.RandomName()
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
	}
}

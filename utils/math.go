package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MulV3 multiplies two vectors component-wise.
func MulV3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// AbsV3 returns the component-wise absolute value.
func AbsV3(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Abs(v[0]), math.Abs(v[1]), math.Abs(v[2])}
}

// RoundPlaces rounds v to the given number of decimal places.
func RoundPlaces(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

// RoundPlacesV3 rounds every component to the given number of decimal places.
func RoundPlacesV3(v mgl64.Vec3, places int) mgl64.Vec3 {
	return mgl64.Vec3{
		RoundPlaces(v[0], places),
		RoundPlaces(v[1], places),
		RoundPlaces(v[2], places),
	}
}

// UniformV3 reports whether all three components are equal.
func UniformV3(v mgl64.Vec3) bool {
	return v[0] == v[1] && v[1] == v[2]
}

func Vec3To32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

type TransformSpace int

const (
	TransformSpaceLocal TransformSpace = iota
	TransformSpaceParent
	TransformSpaceWorld
)

func (s TransformSpace) String() string {
	switch s {
	case TransformSpaceLocal:
		return "Local"
	case TransformSpaceParent:
		return "Parent"
	case TransformSpaceWorld:
		return "World"
	}
	return "Unknown"
}

// Transformation is a decomposed local transform snapshot. It is a plain
// value, so a copy taken before an operation is immune to later node edits.
type Transformation struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

func IdentityTransformation() Transformation {
	return Transformation{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Matrix composes the transformation as T * R * S.
func (t Transformation) Matrix() mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(rotate).Mul4(scale)
}

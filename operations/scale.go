package operations

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MarongHappy/Uranium/scene"
	"github.com/MarongHappy/Uranium/utils"
)

// MinScale is the default per-axis scale magnitude floor. Much lower would
// introduce rounding errors.
const MinScale = 0.01

// SnapPrecision is the decimal-place grid used by snap scaling.
const SnapPrecision = 2

// ScaleMode selects how the scale vector is combined with the node's
// current scale. Exactly one mode is active per operation.
type ScaleMode int

const (
	// ScaleModeMultiply multiplies the node's world scale by the vector.
	ScaleModeMultiply ScaleMode = iota
	// ScaleModeSet replaces the node's world scale with the vector.
	ScaleModeSet
	// ScaleModeAdd adds the vector to the node's current scale.
	ScaleModeAdd
	// ScaleModeRelative scales relative to the current scale, preserving
	// per-axis mirror signs and enforcing the minimum scale floor.
	ScaleModeRelative
)

func (m ScaleMode) String() string {
	switch m {
	case ScaleModeMultiply:
		return "Multiply"
	case ScaleModeSet:
		return "Set"
	case ScaleModeAdd:
		return "Add"
	case ScaleModeRelative:
		return "Relative"
	}
	return "Unknown"
}

// ScaleOperation scales a scene node, uniformly or non-uniformly, and can
// undo itself. The scale vector is assumed diagonal (no shear).
type ScaleOperation struct {
	node              *scene.SceneNode
	oldTransformation scene.Transformation

	scale       mgl64.Vec3
	mode        ScaleMode
	aroundPoint mgl64.Vec3
	snap        bool
	snapPlaces  int
	minScale    float64
}

type ScaleOption func(*ScaleOperation)

// ScaleAroundPoint moves all coordinates away from or towards this
// world-space point instead of the world origin.
func ScaleAroundPoint(point mgl64.Vec3) ScaleOption {
	return func(op *ScaleOperation) { op.aroundPoint = point }
}

// ScaleSnap rounds resulting non-identity scale factors to two decimals.
func ScaleSnap() ScaleOption {
	return func(op *ScaleOperation) { op.snap = true }
}

// ScaleSnapPrecision overrides the snap rounding grid.
func ScaleSnapPrecision(places int) ScaleOption {
	return func(op *ScaleOperation) { op.snapPlaces = places }
}

// ScaleMinimum overrides the per-axis magnitude floor.
func ScaleMinimum(min float64) ScaleOption {
	return func(op *ScaleOperation) { op.minScale = min }
}

// NewScaleOperation snapshots the node's current local transformation and
// prepares a scale of it. The node must be non-nil; the transformation is
// captured exactly once, here.
func NewScaleOperation(node *scene.SceneNode, scale mgl64.Vec3, mode ScaleMode, opts ...ScaleOption) *ScaleOperation {
	if node == nil {
		panic("operations: scale operation on nil node")
	}
	op := &ScaleOperation{
		node:              node,
		oldTransformation: node.LocalTransformation(),
		scale:             scale,
		mode:              mode,
		snapPlaces:        SnapPrecision,
		minScale:          MinScale,
	}
	for _, opt := range opts {
		opt(op)
	}
	return op
}

func (op *ScaleOperation) Undo() {
	op.node.SetTransformation(op.oldTransformation)
}

func (op *ScaleOperation) Redo() {
	switch op.mode {
	case ScaleModeSet:
		op.node.SetScale(op.scale, scene.TransformSpaceWorld)
	case ScaleModeAdd:
		op.node.SetScale(op.node.GetScale().Add(op.scale), scene.TransformSpaceParent)
	case ScaleModeRelative:
		op.redoRelative()
	default:
		op.node.Scale(op.scale, scene.TransformSpaceWorld)
	}
}

func (op *ScaleOperation) redoRelative() {
	current := op.node.GetScale()

	// A uniform delta would flatten an already non-uniform scale, so
	// redistribute it proportionally to the current per-axis scale. The
	// stored scale vector stays untouched; work on a copy.
	delta := op.scale
	if utils.UniformV3(delta) {
		sum := current[0] + current[1] + current[2]
		if sum != 0 {
			ratio := 3 / sum
			delta = utils.MulV3(delta, current.Mul(ratio))
		}
	}

	// Combine magnitudes per axis, keeping the sign of the current scale
	// so mirrored axes stay mirrored whatever the delta sign is.
	var factor mgl64.Vec3
	for i := 0; i < 3; i++ {
		if current[i] > 0 {
			factor[i] = math.Abs(current[i] + delta[i])
		} else {
			factor[i] = -math.Abs(current[i] - delta[i])
		}
	}

	// Normalize to a multiplicative factor. A zero current axis cannot be
	// normalized; it keeps factor 0, which the node's Scale treats as
	// identity for that axis.
	for i := 0; i < 3; i++ {
		if current[i] == 0 {
			factor[i] = 0
		} else if factor[i] != 0 {
			factor[i] /= current[i]
		}
	}

	// Shift the pivot point to the parent origin, scale, shift back. This
	// keeps the pivot fixed in space while the node scales around it.
	op.node.Translate(op.aroundPoint.Mul(-1), scene.TransformSpaceParent)
	op.node.Scale(factor, scene.TransformSpaceParent)
	op.node.Translate(op.aroundPoint, scene.TransformSpaceParent)

	newScale := op.node.GetScale()
	if op.snap {
		for i := 0; i < 3; i++ {
			if factor[i] != 1.0 {
				newScale[i] = utils.RoundPlaces(newScale[i], op.snapPlaces)
			}
		}
	}

	// Enforce the minimum size, mirrored axes included. Overrides snap.
	for i := 0; i < 3; i++ {
		if newScale[i] < op.minScale && newScale[i] >= 0 {
			newScale[i] = op.minScale
		}
		if newScale[i] > -op.minScale && newScale[i] <= 0 {
			newScale[i] = -op.minScale
		}
	}

	op.node.SetScale(newScale, scene.TransformSpaceWorld)
}

// MergeWith merges the operation with an older scale of the same node, so
// the user does not have to undo a drag gesture step by step. Set and add
// modes only merge with themselves; relative and multiply may mix. The
// merged operation keeps this operation's scale and mode but restores the
// older snapshot on undo.
func (op *ScaleOperation) MergeWith(older Operation) (Operation, bool) {
	prev, ok := older.(*ScaleOperation)
	if !ok {
		return nil, false
	}
	if prev.node != op.node {
		return nil, false
	}
	if (prev.mode == ScaleModeSet) != (op.mode == ScaleModeSet) {
		return nil, false
	}
	if (prev.mode == ScaleModeAdd) != (op.mode == ScaleModeAdd) {
		return nil, false
	}

	merged := *op
	merged.oldTransformation = prev.oldTransformation
	return &merged, true
}

func (op *ScaleOperation) String() string {
	return fmt.Sprintf("ScaleOperation(node=%s, scale=%v, mode=%v)", op.node, op.scale, op.mode)
}

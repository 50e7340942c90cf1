package operations

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MarongHappy/Uranium/scene"
)

// TranslateOperation moves a scene node by a vector in a chosen space.
type TranslateOperation struct {
	node              *scene.SceneNode
	oldTransformation scene.Transformation

	translation mgl64.Vec3
	space       scene.TransformSpace
}

func NewTranslateOperation(node *scene.SceneNode, translation mgl64.Vec3, space scene.TransformSpace) *TranslateOperation {
	if node == nil {
		panic("operations: translate operation on nil node")
	}
	return &TranslateOperation{
		node:              node,
		oldTransformation: node.LocalTransformation(),
		translation:       translation,
		space:             space,
	}
}

func (op *TranslateOperation) Undo() {
	op.node.SetTransformation(op.oldTransformation)
}

func (op *TranslateOperation) Redo() {
	op.node.Translate(op.translation, op.space)
}

// MergeWith sums the two translations into one operation. Only translates
// of the same node in the same space merge.
func (op *TranslateOperation) MergeWith(older Operation) (Operation, bool) {
	prev, ok := older.(*TranslateOperation)
	if !ok {
		return nil, false
	}
	if prev.node != op.node || prev.space != op.space {
		return nil, false
	}

	merged := *op
	merged.translation = op.translation.Add(prev.translation)
	merged.oldTransformation = prev.oldTransformation
	return &merged, true
}

func (op *TranslateOperation) String() string {
	return fmt.Sprintf("TranslateOperation(node=%s, translation=%v, space=%v)", op.node, op.translation, op.space)
}

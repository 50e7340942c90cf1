package operations

import (
	"fmt"

	"github.com/MarongHappy/Uranium/scene"
)

// SetTransformOperation replaces a node's local transformation wholesale.
type SetTransformOperation struct {
	node              *scene.SceneNode
	oldTransformation scene.Transformation
	newTransformation scene.Transformation
}

func NewSetTransformOperation(node *scene.SceneNode, transformation scene.Transformation) *SetTransformOperation {
	if node == nil {
		panic("operations: set transform operation on nil node")
	}
	return &SetTransformOperation{
		node:              node,
		oldTransformation: node.LocalTransformation(),
		newTransformation: transformation,
	}
}

func (op *SetTransformOperation) Undo() {
	op.node.SetTransformation(op.oldTransformation)
}

func (op *SetTransformOperation) Redo() {
	op.node.SetTransformation(op.newTransformation)
}

// MergeWith keeps this operation's target transformation and the older
// operation's snapshot, collapsing intermediate states.
func (op *SetTransformOperation) MergeWith(older Operation) (Operation, bool) {
	prev, ok := older.(*SetTransformOperation)
	if !ok {
		return nil, false
	}
	if prev.node != op.node {
		return nil, false
	}

	merged := *op
	merged.oldTransformation = prev.oldTransformation
	return &merged, true
}

func (op *SetTransformOperation) String() string {
	return fmt.Sprintf("SetTransformOperation(node=%s)", op.node)
}

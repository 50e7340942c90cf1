package operations

import "fmt"

// GroupedOperation bundles several operations into a single undo step.
// Redo applies children in insertion order, undo reverts them in reverse.
type GroupedOperation struct {
	children []Operation
}

func NewGroupedOperation(children ...Operation) *GroupedOperation {
	return &GroupedOperation{children: children}
}

func (op *GroupedOperation) AddOperation(child Operation) {
	op.children = append(op.children, child)
}

func (op *GroupedOperation) Undo() {
	for i := len(op.children) - 1; i >= 0; i-- {
		op.children[i].Undo()
	}
}

func (op *GroupedOperation) Redo() {
	for _, child := range op.children {
		child.Redo()
	}
}

// MergeWith always fails: groups are already user-visible composite steps.
func (op *GroupedOperation) MergeWith(older Operation) (Operation, bool) {
	return nil, false
}

func (op *GroupedOperation) String() string {
	return fmt.Sprintf("GroupedOperation(%d children)", len(op.children))
}

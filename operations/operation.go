package operations

// Operation is a reversible scene mutation managed by an OperationStack.
//
// Operations are single-threaded state transitions: the stack serializes
// all calls, and an operation never blocks.
type Operation interface {
	// Undo restores the state from before the operation was applied.
	Undo()

	// Redo applies (or re-applies) the operation.
	Redo()

	// MergeWith combines the operation with a strictly older one into a
	// single operation, so one undo step reverts both. Returns false when
	// the two cannot be merged. Not symmetric: the receiver must be the
	// newer operation.
	MergeWith(older Operation) (Operation, bool)

	String() string
}

package operations

import (
	"sync"
	"time"
)

const (
	// DefaultHistoryLimit caps the undo history depth; the oldest entry is
	// evicted when it is exceeded.
	DefaultHistoryLimit = 100

	// DefaultMergeWindow is how close together two operations must be
	// pushed for the stack to try coalescing them into one undo step.
	DefaultMergeWindow = 2 * time.Second
)

// OperationStack is the undo/redo history. Pushing an operation applies it;
// operations pushed in quick succession are merged when compatible, so a
// continuous gesture stays a single undo step.
//
// The stack serializes all scene mutations going through it; operations
// themselves are not thread-safe.
type OperationStack struct {
	mu sync.Mutex

	undo []Operation
	redo []Operation

	limit       int
	mergeWindow time.Duration
	lastPush    time.Time

	onChange func()
}

func NewOperationStack(limit int) *OperationStack {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &OperationStack{
		limit:       limit,
		mergeWindow: DefaultMergeWindow,
	}
}

// SetMergeWindow changes the merge coalescing window. A zero window
// disables merging entirely.
func (s *OperationStack) SetMergeWindow(window time.Duration) {
	s.mu.Lock()
	s.mergeWindow = window
	s.mu.Unlock()
}

// OnChange registers a callback invoked after every push/undo/redo, outside
// the stack lock.
func (s *OperationStack) OnChange(f func()) {
	s.mu.Lock()
	s.onChange = f
	s.mu.Unlock()
}

// Push applies the operation and records it, discarding any redo branch.
// If the previous operation was pushed within the merge window and the two
// merge, they collapse into a single history entry.
func (s *OperationStack) Push(op Operation) {
	s.mu.Lock()

	op.Redo()
	s.redo = s.redo[:0]

	now := time.Now()
	merged := false
	if len(s.undo) > 0 && now.Sub(s.lastPush) <= s.mergeWindow {
		top := s.undo[len(s.undo)-1]
		if m, ok := op.MergeWith(top); ok {
			s.undo[len(s.undo)-1] = m
			merged = true
		}
	}
	if !merged {
		s.undo = append(s.undo, op)
		if len(s.undo) > s.limit {
			s.undo = s.undo[1:]
		}
	}
	s.lastPush = now

	s.notifyUnlock()
}

func (s *OperationStack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo) > 0
}

func (s *OperationStack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo) > 0
}

// Undo reverts the newest operation. Returns false on an empty history.
func (s *OperationStack) Undo() bool {
	s.mu.Lock()
	if len(s.undo) == 0 {
		s.mu.Unlock()
		return false
	}
	op := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	op.Undo()
	s.redo = append(s.redo, op)

	s.notifyUnlock()
	return true
}

// Redo re-applies the most recently undone operation.
func (s *OperationStack) Redo() bool {
	s.mu.Lock()
	if len(s.redo) == 0 {
		s.mu.Unlock()
		return false
	}
	op := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	op.Redo()
	s.undo = append(s.undo, op)

	s.notifyUnlock()
	return true
}

// Depths returns the undo and redo history depths.
func (s *OperationStack) Depths() (undo, redo int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo), len(s.redo)
}

// Top returns the newest operation in the undo history, or nil.
func (s *OperationStack) Top() Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undo) == 0 {
		return nil
	}
	return s.undo[len(s.undo)-1]
}

func (s *OperationStack) notifyUnlock() {
	f := s.onChange
	s.mu.Unlock()
	if f != nil {
		f()
	}
}

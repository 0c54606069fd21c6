package stack

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// ByteStack implements a non-thread safe stack of opaque fixed-width byte records.
//
// It exists for callers that handle records whose type is not known at compile
// time (wire payloads, fixed-width register values); everybody else should use
// the type safe BoundedStack instead. Records are copied on the way in and on
// the way out, so the stack never aliases caller memory.
type ByteStack struct {
	arena       []byte
	elementSize int
	top         int
	capacity    int
}

// NewByteStack returns a new ByteStack that can hold up to capacity records of elementSize bytes each.
func NewByteStack(capacity int, elementSize int) (*ByteStack, error) {
	if capacity <= 0 {
		return nil, ierrors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	if elementSize <= 0 {
		return nil, ierrors.Wrapf(ErrInvalidElementSize, "got %d", elementSize)
	}

	return &ByteStack{
		arena:       make([]byte, capacity*elementSize),
		elementSize: elementSize,
		capacity:    capacity,
	}, nil
}

// Push copies a record onto the top of this stack.
// It returns ErrElementSize if the record is not exactly elementSize bytes wide
// and ErrFull if the stack is at capacity; either way the stack stays unchanged.
func (s *ByteStack) Push(record []byte) error {
	if s == nil || s.arena == nil {
		return ErrUninitialized
	}
	if len(record) != s.elementSize {
		return ierrors.Wrapf(ErrElementSize, "record is %d bytes, element size is %d", len(record), s.elementSize)
	}
	if s.top == s.capacity {
		return ErrFull
	}

	copy(s.arena[s.top*s.elementSize:], record)
	s.top++

	return nil
}

// Pop copies the top record of this stack into out and removes it.
// The out buffer has to hold at least elementSize bytes.
func (s *ByteStack) Pop(out []byte) error {
	if s == nil || s.arena == nil {
		return ErrUninitialized
	}
	if len(out) < s.elementSize {
		return ierrors.Wrapf(ErrElementSize, "output buffer is %d bytes, element size is %d", len(out), s.elementSize)
	}
	if s.top == 0 {
		return ErrEmpty
	}

	s.top--
	vacated := s.record(s.top)
	copy(out, vacated)
	for i := range vacated {
		vacated[i] = 0
	}

	return nil
}

// Peek copies the top record of this stack into out without removing it.
// The out buffer has to hold at least elementSize bytes.
func (s *ByteStack) Peek(out []byte) error {
	if s == nil || s.arena == nil {
		return ErrUninitialized
	}
	if len(out) < s.elementSize {
		return ierrors.Wrapf(ErrElementSize, "output buffer is %d bytes, element size is %d", len(out), s.elementSize)
	}
	if s.top == 0 {
		return ErrEmpty
	}

	copy(out, s.record(s.top-1))

	return nil
}

// Clear removes all records from this stack. Clearing an empty stack is a no-op.
func (s *ByteStack) Clear() error {
	if s == nil || s.arena == nil {
		return ErrUninitialized
	}

	occupied := s.arena[:s.top*s.elementSize]
	for i := range occupied {
		occupied[i] = 0
	}
	s.top = 0

	return nil
}

// Destroy removes all records from this stack and releases its backing storage.
// The stack is uninitialized afterwards; destroying it again is a no-op.
func (s *ByteStack) Destroy() error {
	if s == nil {
		return ErrUninitialized
	}
	if s.arena == nil {
		return nil
	}

	s.arena = nil
	s.top = 0
	s.capacity = 0
	s.elementSize = 0

	return nil
}

// Size returns the amount of records in this stack. It reports 0 for a nil or destroyed stack.
func (s *ByteStack) Size() int {
	if s == nil {
		return 0
	}

	return s.top
}

// Capacity returns the maximum amount of records this stack can hold.
func (s *ByteStack) Capacity() int {
	if s == nil {
		return 0
	}

	return s.capacity
}

// ElementSize returns the fixed width of every record in this stack.
func (s *ByteStack) ElementSize() int {
	if s == nil {
		return 0
	}

	return s.elementSize
}

// IsEmpty checks if this stack is empty. It reports true for a nil or destroyed stack.
func (s *ByteStack) IsEmpty() bool {
	return s.Size() == 0
}

// IsFull checks if this stack is at capacity. It reports true for a nil or destroyed stack.
func (s *ByteStack) IsFull() bool {
	if s == nil {
		return true
	}

	return s.top >= s.capacity
}

// String returns a human-readable version of this stack.
func (s *ByteStack) String() string {
	return stringify.Struct("ByteStack",
		stringify.NewStructField("size", s.Size()),
		stringify.NewStructField("capacity", s.Capacity()),
		stringify.NewStructField("elementSize", s.ElementSize()),
	)
}

// record returns the arena slice holding the record at the given index.
func (s *ByteStack) record(index int) []byte {
	offset := index * s.elementSize

	return s.arena[offset : offset+s.elementSize]
}

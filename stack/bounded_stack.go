package stack

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// BoundedStack implements a non-thread safe Stack with a capacity that is fixed at construction.
type BoundedStack[T any] struct {
	elements []T
	top      int
	capacity int
}

// New returns a new BoundedStack that can hold up to capacity elements.
func New[T any](capacity int) (*BoundedStack[T], error) {
	if capacity <= 0 {
		return nil, ierrors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	return &BoundedStack[T]{
		elements: make([]T, capacity),
		capacity: capacity,
	}, nil
}

// Push pushes an element onto the top of this Stack.
// It returns ErrFull if the Stack is at capacity and leaves it unchanged.
func (s *BoundedStack[T]) Push(element T) error {
	if s == nil || s.elements == nil {
		return ErrUninitialized
	}
	if s.top == s.capacity {
		return ErrFull
	}

	s.elements[s.top] = element
	s.top++

	return nil
}

// Pop removes and returns the top element of this Stack.
// It returns ErrEmpty if the Stack holds no elements.
func (s *BoundedStack[T]) Pop() (element T, err error) {
	if s == nil || s.elements == nil {
		return element, ErrUninitialized
	}
	if s.top == 0 {
		return element, ErrEmpty
	}

	s.top--
	element = s.elements[s.top]

	// zero the vacated slot so the stack no longer keeps the element's referents alive
	var emptyElement T
	s.elements[s.top] = emptyElement

	return element, nil
}

// Peek returns the top element of this Stack without removing it.
// It returns ErrEmpty if the Stack holds no elements.
func (s *BoundedStack[T]) Peek() (element T, err error) {
	if s == nil || s.elements == nil {
		return element, ErrUninitialized
	}
	if s.top == 0 {
		return element, ErrEmpty
	}

	return s.elements[s.top-1], nil
}

// Clear removes all elements from this Stack. Clearing an empty Stack is a no-op.
func (s *BoundedStack[T]) Clear() error {
	if s == nil || s.elements == nil {
		return ErrUninitialized
	}

	var emptyElement T
	for i := 0; i < s.top; i++ {
		s.elements[i] = emptyElement
	}
	s.top = 0

	return nil
}

// Destroy removes all elements from this Stack and releases its backing storage.
// The Stack is uninitialized afterwards; destroying it again is a no-op.
func (s *BoundedStack[T]) Destroy() error {
	if s == nil {
		return ErrUninitialized
	}
	if s.elements == nil {
		return nil
	}

	s.elements = nil
	s.top = 0
	s.capacity = 0

	return nil
}

// Size returns the amount of elements in this Stack. It reports 0 for a nil or destroyed Stack.
func (s *BoundedStack[T]) Size() int {
	if s == nil {
		return 0
	}

	return s.top
}

// Capacity returns the maximum amount of elements this Stack can hold.
func (s *BoundedStack[T]) Capacity() int {
	if s == nil {
		return 0
	}

	return s.capacity
}

// IsEmpty checks if this Stack is empty. It reports true for a nil or destroyed Stack.
func (s *BoundedStack[T]) IsEmpty() bool {
	return s.Size() == 0
}

// IsFull checks if this Stack is at capacity. It reports true for a nil or destroyed Stack.
func (s *BoundedStack[T]) IsFull() bool {
	if s == nil {
		return true
	}

	return s.top >= s.capacity
}

// String returns a human-readable version of this Stack.
func (s *BoundedStack[T]) String() string {
	return stringify.Struct("BoundedStack",
		stringify.NewStructField("size", s.Size()),
		stringify.NewStructField("capacity", s.Capacity()),
	)
}

// code contract - make sure the type implements the interface.
var _ Stack[int] = &BoundedStack[int]{}

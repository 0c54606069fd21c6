package stack

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidCapacity is returned if a stack is constructed with a non-positive capacity.
	ErrInvalidCapacity = ierrors.New("capacity must be positive")

	// ErrInvalidElementSize is returned if a ByteStack is constructed with a non-positive element size.
	ErrInvalidElementSize = ierrors.New("element size must be positive")

	// ErrFull is returned if an element is pushed onto a stack that is at capacity.
	ErrFull = ierrors.New("stack is full")

	// ErrEmpty is returned if the top element of an empty stack is requested.
	ErrEmpty = ierrors.New("stack is empty")

	// ErrElementSize is returned if a pushed record or an output buffer does not match the element size of a ByteStack.
	ErrElementSize = ierrors.New("element size mismatch")

	// ErrUninitialized is returned if an operation is invoked on a nil or destroyed stack.
	ErrUninitialized = ierrors.New("stack is uninitialized")
)

package stack

// Stack is a fixed-capacity stack of elements.
//
// A Stack is not safe for concurrent use; callers sharing an instance across
// goroutines have to serialize access with their own mutex.
type Stack[T any] interface {
	// Push pushes an element onto the top of this Stack and returns ErrFull if it is at capacity.
	Push(element T) error

	// Pop removes and returns the top element of this Stack and returns ErrEmpty if there is none.
	Pop() (T, error)

	// Peek returns the top element of this Stack without removing it and returns ErrEmpty if there is none.
	Peek() (T, error)

	// Clear removes all elements from this Stack.
	Clear() error

	// Destroy releases the backing storage of this Stack and renders it uninitialized.
	Destroy() error

	// Size returns the amount of elements in this Stack.
	Size() int

	// Capacity returns the maximum amount of elements this Stack can hold.
	Capacity() int

	// IsEmpty checks if this Stack is empty.
	IsEmpty() bool

	// IsFull checks if this Stack is at capacity.
	IsFull() bool
}

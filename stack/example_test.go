package stack_test

import (
	"fmt"

	"github.com/fixedcap/ds/stack"
)

func ExampleBoundedStack() {
	values, err := stack.New[int](5)
	if err != nil {
		panic(err)
	}
	defer values.Destroy()

	for _, value := range []int{10, 20, 30, 40, 50} {
		if err := values.Push(value); err != nil {
			panic(err)
		}
	}
	fmt.Println(values.IsFull())

	top, _ := values.Peek()
	fmt.Println(top)

	for !values.IsEmpty() {
		value, _ := values.Pop()
		fmt.Println(value)
	}

	_, err = values.Pop()
	fmt.Println(err)

	// Output:
	// true
	// 50
	// 50
	// 40
	// 30
	// 20
	// 10
	// stack is empty
}

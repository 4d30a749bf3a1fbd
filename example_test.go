package heapq_test

import (
	"fmt"

	"github.com/achille-roussel/heapq-go"
)

func ExampleHeap() {
	h := heapq.New[int]()

	for _, key := range []int{5, 3, 8, 1, 9} {
		if err := h.Push(key); err != nil {
			panic(err)
		}
	}

	for !h.Empty() {
		key, err := h.Pop()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v,", key)
	}

	// Output:
	// 1,3,5,8,9,
}

func ExampleHeap_values() {
	h := heapq.New[string]()

	for _, key := range []string{"cherry", "apple", "banana"} {
		if err := h.Push(key); err != nil {
			panic(err)
		}
	}

	for key, err := range h.Values() {
		if err != nil {
			panic(err)
		}
		fmt.Println(key)
	}

	// The heap still holds its keys after iterating.
	fmt.Println(h.Len())

	// Output:
	// apple
	// banana
	// cherry
	// 3
}

func ExampleNewFunc() {
	// A reversed comparator turns the heap into a max-heap.
	h := heapq.NewFunc[int](func(a, b int) int { return b - a })

	for _, key := range []int{5, 3, 8, 1, 9} {
		if err := h.Push(key); err != nil {
			panic(err)
		}
	}

	for !h.Empty() {
		key, err := h.Pop()
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v,", key)
	}

	// Output:
	// 9,8,5,3,1,
}

func ExampleMerge() {
	evens := heapq.New[int]()
	odds := heapq.New[int]()
	tens := heapq.New[int]()

	for i := range 3 {
		if err := evens.Push(2 * i); err != nil {
			panic(err)
		}
		if err := odds.Push(2*i + 1); err != nil {
			panic(err)
		}
	}
	if err := tens.Push(10); err != nil {
		panic(err)
	}

	for key, err := range heapq.Merge(evens, odds, tens) {
		if err != nil {
			panic(err)
		}
		fmt.Printf("%v,", key)
	}

	// Output:
	// 0,1,2,3,4,5,10,
}

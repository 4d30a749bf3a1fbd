package heapq

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the heap as its complete binary tree, root first. Intended
// for debugging: the layout follows the backing array, not iteration order.
func (h *Heap[T]) String() string {
	if h.Empty() {
		return "<empty heap>"
	}
	root := treeprint.NewWithRoot(fmt.Sprint(h.store[1]))
	h.branch(root, 1)
	return root.String()
}

func (h *Heap[T]) branch(tree treeprint.Tree, k int) {
	for _, child := range []int{2 * k, 2*k + 1} {
		if child > h.length {
			return
		}
		if 2*child > h.length {
			tree.AddNode(fmt.Sprint(h.store[child]))
		} else {
			h.branch(tree.AddBranch(fmt.Sprint(h.store[child])), child)
		}
	}
}

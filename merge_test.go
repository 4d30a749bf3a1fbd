package heapq

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		scenario string
		sources  [][]int
	}{
		{
			scenario: "no heaps",
			sources:  [][]int{},
		},

		{
			scenario: "one empty heap",
			sources:  [][]int{{}},
		},

		{
			scenario: "one heap",
			sources:  [][]int{{3, 1, 2}},
		},

		{
			scenario: "two heaps",
			sources:  [][]int{{5, 1, 3}, {4, 2, 6}},
		},

		{
			scenario: "two heaps with one empty",
			sources:  [][]int{{}, {4, 2, 6}},
		},

		{
			scenario: "three heaps",
			sources: [][]int{
				{1, 4, 7},
				{2, 5, 8},
				{3, 6, 9},
			},
		},

		{
			scenario: "five heaps with duplicates",
			sources: [][]int{
				{1, 1, 9},
				{2, 9},
				{},
				{1, 5, 5, 7},
				{3},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			heaps := make([]*Heap[int], len(test.sources))
			var want []int
			for i, keys := range test.sources {
				heaps[i] = New[int]()
				for _, key := range keys {
					require.NoError(t, heaps[i].Push(key))
				}
				want = append(want, keys...)
			}
			slices.Sort(want)

			var got []int
			for key, err := range Merge(heaps...) {
				require.NoError(t, err)
				got = append(got, key)
			}
			assert.Equal(t, want, got)

			// Merging drains clones, never the sources.
			for i, keys := range test.sources {
				assert.Equal(t, len(keys), heaps[i].Len())
			}
		})
	}
}

func TestMergeFuncMaxOrientation(t *testing.T) {
	reverse := func(a, b int) int { return cmp.Compare(b, a) }

	h0 := NewFunc(reverse)
	h1 := NewFunc(reverse)
	h2 := NewFunc(reverse)
	for i, h := range []*Heap[int]{h0, h1, h2} {
		for _, key := range []int{i, i + 3, i + 6} {
			require.NoError(t, h.Push(key))
		}
	}

	var got []int
	for key, err := range MergeFunc(reverse, h0, h1, h2) {
		require.NoError(t, err)
		got = append(got, key)
	}
	assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1, 0}, got)
}

func TestMergeFuncSourceOrder(t *testing.T) {
	type entry struct {
		key int
		src int
	}
	compare := func(a, b entry) int { return cmp.Compare(a.key, b.key) }

	heaps := make([]*Heap[entry], 3)
	for i := range heaps {
		heaps[i] = NewFunc(compare)
		require.NoError(t, heaps[i].Push(entry{key: 1, src: i}))
		require.NoError(t, heaps[i].Push(entry{key: 2, src: i}))
	}

	var got []entry
	for e, err := range MergeFunc(compare, heaps...) {
		require.NoError(t, err)
		got = append(got, e)
	}

	// Equal keys drain in source order.
	want := []entry{
		{key: 1, src: 0}, {key: 1, src: 1}, {key: 1, src: 2},
		{key: 2, src: 0}, {key: 2, src: 1}, {key: 2, src: 2},
	}
	assert.Equal(t, want, got)
}

func TestMergeEarlyBreak(t *testing.T) {
	h0 := New[int]()
	h1 := New[int]()
	require.NoError(t, h0.Push(2))
	require.NoError(t, h1.Push(1))

	for key, err := range Merge(h0, h1) {
		require.NoError(t, err)
		assert.Equal(t, 1, key)
		break
	}
}

func TestMergeComparisonFailure(t *testing.T) {
	heaps := make([]*Heap[badge], 3)
	for i := range heaps {
		// Assembled directly: three keys per source force a comparison on the
		// first removal of each clone.
		heaps[i] = &Heap[badge]{store: make([]badge, minCapacity), length: 3}
		heaps[i].store[1] = badge{id: i}
		heaps[i].store[2] = badge{id: i + 3}
		heaps[i].store[3] = badge{id: i + 6}
	}

	var errs []error
	for _, err := range MergeFunc(func(a, b badge) int { return cmp.Compare(a.id, b.id) }, heaps...) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrNotOrdered)
}

package skew

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/skewrev/pkg/errors"
)

func TestInsert(t *testing.T) {
	f := NewForest()
	leaf := func(v int) *Node { return f.Node(v, nil, nil) }

	tests := []struct {
		name  string
		heap  *Node
		value int
		want  *Node
	}{
		{"into empty", nil, 1, leaf(1)},
		{"new root", leaf(3), 1, f.Node(1, leaf(3), nil)},
		{"below root swaps children", f.Node(1, leaf(3), nil), 2, f.Node(1, leaf(2), leaf(3))},
		{"descends old right", f.Node(1, leaf(2), leaf(3)), 4, f.Node(1, f.Node(3, leaf(4), nil), leaf(2))},
		{"stops inside path", f.Node(1, leaf(2), leaf(4)), 3, f.Node(1, f.Node(3, leaf(4), nil), leaf(2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.heap.Digest()
			got := f.Insert(tt.heap, tt.value)
			if !Equal(got, tt.want) {
				left, right := Describe(got)
				t.Errorf("Insert() = %v %v", left, right)
			}
			if tt.heap.Digest() != before {
				t.Error("Insert modified its input")
			}
		})
	}
}

func TestReplay(t *testing.T) {
	f := NewForest()
	tests := []struct {
		seq       []int
		wantLeft  []int
		wantRight []int
	}{
		{[]int{1}, []int{0, 0}, []int{0, 0}},
		{[]int{2, 3, 1}, []int{0, 2, 3, 0}, []int{0, 0, 0, 0}},
		{[]int{3, 2, 1}, []int{0, 2, 3, 0}, []int{0, 0, 0, 0}},
		{[]int{3, 1, 2}, []int{0, 2, 0, 0}, []int{0, 3, 0, 0}},
		{[]int{1, 2, 3}, []int{0, 3, 0, 0}, []int{0, 2, 0, 0}},
	}
	for _, tt := range tests {
		root, err := f.Replay(tt.seq)
		if err != nil {
			t.Fatalf("Replay(%v) error = %v", tt.seq, err)
		}
		left, right := Describe(root)
		if !slices.Equal(left, tt.wantLeft) || !slices.Equal(right, tt.wantRight) {
			t.Errorf("Replay(%v) = %v %v, want %v %v", tt.seq, left, right, tt.wantLeft, tt.wantRight)
		}
	}
}

func TestReplayRejectsNonPermutation(t *testing.T) {
	for _, seq := range [][]int{{0}, {2}, {1, 1}, {1, 3}, {-1, 1}} {
		if _, err := NewForest().Replay(seq); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Replay(%v) error = %v, want %s", seq, err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestReplayEmpty(t *testing.T) {
	root, err := NewForest().Replay(nil)
	if err != nil || root != nil {
		t.Errorf("Replay(nil) = %v, %v; want nil, nil", root, err)
	}
}

func TestOrders(t *testing.T) {
	want := []int{1, 1, 2, 6, 24, 120, 720}
	for n, count := range want {
		seen := make(map[string]bool)
		for seq := range Orders(n) {
			if err := checkPermutation(seq); err != nil {
				t.Fatalf("Orders(%d) yielded %v: %v", n, seq, err)
			}
			seen[fmt.Sprint(seq)] = true
		}
		if len(seen) != count {
			t.Errorf("Orders(%d) yielded %d distinct orders, want %d", n, len(seen), count)
		}
	}
}

func TestOrdersStops(t *testing.T) {
	count := 0
	for range Orders(5) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestProducers(t *testing.T) {
	f := NewForest()
	tests := []struct {
		seq  []int
		want [][]int
	}{
		{[]int{1}, [][]int{{1}}},
		{[]int{3, 1, 2}, [][]int{{1, 3, 2}, {3, 1, 2}}},
		{[]int{3, 2, 1}, [][]int{{2, 3, 1}, {3, 2, 1}}},
	}
	for _, tt := range tests {
		root, err := f.Replay(tt.seq)
		if err != nil {
			t.Fatal(err)
		}
		got := f.Producers(root)
		if !slices.EqualFunc(got, tt.want, slices.Equal[[]int]) {
			t.Errorf("Producers(tree of %v) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

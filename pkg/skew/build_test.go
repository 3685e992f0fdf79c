package skew

import (
	"slices"
	"testing"

	"github.com/matzehuels/skewrev/pkg/errors"
)

// split turns 1-indexed (left, right) pairs into child slices for Build.
func split(pairs [][2]int) (left, right []int) {
	left = make([]int, len(pairs)+1)
	right = make([]int, len(pairs)+1)
	for i, p := range pairs {
		left[i+1], right[i+1] = p[0], p[1]
	}
	return left, right
}

func mustBuild(t *testing.T, f *Forest, pairs [][2]int) *Node {
	t.Helper()
	left, right := split(pairs)
	root, err := Build(f, left, right)
	if err != nil {
		t.Fatalf("Build(%v) error = %v", pairs, err)
	}
	return root
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		pairs    [][2]int
		wantCode errors.Code
		wantRoot int
	}{
		{name: "single node", pairs: [][2]int{{0, 0}}, wantRoot: 1},
		{name: "left chain", pairs: [][2]int{{2, 0}, {3, 0}, {0, 0}}, wantRoot: 1},
		{name: "two children", pairs: [][2]int{{2, 3}, {0, 0}, {0, 0}}, wantRoot: 1},
		{name: "empty", pairs: nil, wantCode: errors.ErrCodeTopology},
		{name: "two roots", pairs: [][2]int{{0, 0}, {0, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "child out of range", pairs: [][2]int{{3, 0}, {0, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "negative child", pairs: [][2]int{{-1, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "two parents", pairs: [][2]int{{3, 0}, {3, 0}, {0, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "same child twice", pairs: [][2]int{{2, 2}, {0, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "no root", pairs: [][2]int{{2, 0}, {1, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "detached cycle", pairs: [][2]int{{0, 0}, {3, 0}, {2, 0}}, wantCode: errors.ErrCodeTopology},
		{name: "right without left", pairs: [][2]int{{0, 2}, {0, 0}}, wantCode: errors.ErrCodeHeap},
		{name: "heap order", pairs: [][2]int{{0, 0}, {1, 0}}, wantCode: errors.ErrCodeHeap},
		{name: "deep heap order", pairs: [][2]int{{3, 0}, {0, 0}, {2, 0}}, wantCode: errors.ErrCodeHeap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := split(tt.pairs)
			root, err := Build(NewForest(), left, right)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Build() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if root.Value() != tt.wantRoot {
				t.Errorf("root = %d, want %d", root.Value(), tt.wantRoot)
			}
			if root.Size() != len(tt.pairs) {
				t.Errorf("Size() = %d, want %d", root.Size(), len(tt.pairs))
			}
		})
	}
}

func TestBuildMismatchedSlices(t *testing.T) {
	_, err := Build(NewForest(), []int{0, 0}, []int{0})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Build() error = %v, want %s", err, errors.ErrCodeInternal)
	}
}

func TestBuildDeepChain(t *testing.T) {
	const n = 100000
	pairs := make([][2]int, n)
	for i := range n - 1 {
		pairs[i] = [2]int{i + 2, 0}
	}
	root := mustBuild(t, NewForest(), pairs)
	if root.Size() != n {
		t.Errorf("Size() = %d, want %d", root.Size(), n)
	}
}

func TestDescribeRoundTrip(t *testing.T) {
	pairs := [][2]int{{2, 3}, {4, 5}, {0, 0}, {0, 0}, {0, 0}}
	root := mustBuild(t, NewForest(), pairs)

	left, right := Describe(root)
	wantLeft, wantRight := split(pairs)
	if !slices.Equal(left, wantLeft) || !slices.Equal(right, wantRight) {
		t.Errorf("Describe() = %v %v, want %v %v", left, right, wantLeft, wantRight)
	}
}

func TestDescribeEmpty(t *testing.T) {
	left, right := Describe(nil)
	if len(left) != 1 || len(right) != 1 {
		t.Errorf("Describe(nil) = %v %v, want one unused slot each", left, right)
	}
}

package skew

import "testing"

func TestForestInterning(t *testing.T) {
	f := NewForest()

	a := f.Node(2, f.Node(3, nil, nil), nil)
	b := f.Node(2, f.Node(3, nil, nil), nil)
	if a != b {
		t.Error("equal shapes should share one node")
	}
	if a.Digest() != b.Digest() {
		t.Errorf("digests differ: %d vs %d", a.Digest(), b.Digest())
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}

	c := f.Node(2, nil, nil)
	if Equal(a, c) {
		t.Error("different shapes should not be equal")
	}

	// Same values, children swapped.
	l, r := f.Node(3, nil, nil), f.Node(4, nil, nil)
	if Equal(f.Node(1, l, r), f.Node(1, r, l)) {
		t.Error("mirrored trees should not be equal")
	}
}

func TestNilNode(t *testing.T) {
	var n *Node
	if n.Digest() != 0 {
		t.Errorf("nil Digest() = %d, want 0", n.Digest())
	}
	if n.Size() != 0 {
		t.Errorf("nil Size() = %d, want 0", n.Size())
	}
	if !Equal(nil, nil) {
		t.Error("empty trees should be equal")
	}
	if Equal(nil, NewForest().Node(1, nil, nil)) {
		t.Error("empty tree should differ from a leaf")
	}
}

func TestNodeAccessors(t *testing.T) {
	f := NewForest()
	l, r := f.Node(2, nil, nil), f.Node(3, nil, nil)
	n := f.Node(1, l, r)

	if n.Value() != 1 || n.Left() != l || n.Right() != r {
		t.Errorf("accessors = (%d, %p, %p), want (1, %p, %p)", n.Value(), n.Left(), n.Right(), l, r)
	}
	if n.Size() != 3 {
		t.Errorf("Size() = %d, want 3", n.Size())
	}
}

func TestLocalOK(t *testing.T) {
	f := NewForest()
	leaf := func(v int) *Node { return f.Node(v, nil, nil) }

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"leaf", leaf(1), true},
		{"left only", f.Node(1, leaf(2), nil), true},
		{"both", f.Node(1, leaf(2), leaf(3)), true},
		{"right only", f.Node(1, nil, leaf(2)), false},
		{"left smaller", f.Node(2, leaf(1), nil), false},
		{"right smaller", f.Node(2, leaf(3), leaf(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.localOK(); got != tt.want {
				t.Errorf("localOK() = %v, want %v", got, tt.want)
			}
		})
	}
}

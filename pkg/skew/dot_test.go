package skew

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	f := NewForest()
	leaf := func(v int) *Node { return f.Node(v, nil, nil) }

	tests := []struct {
		name    string
		root    *Node
		want    []string
		notWant []string
	}{
		{
			name:    "empty",
			root:    nil,
			want:    []string{"digraph SkewHeap {", "}"},
			notWant: []string{"penwidth", "->"},
		},
		{
			name:    "leaf",
			root:    leaf(1),
			want:    []string{`n1 [penwidth=2];`, `n1 [label="1"];`},
			notWant: []string{"->"},
		},
		{
			name: "two children",
			root: f.Node(1, leaf(2), leaf(3)),
			want: []string{
				"n1 -> n2;",
				"n1 -> n3 [style=dashed];",
				`n3 [label="3"];`,
			},
			notWant: []string{"style=invis"},
		},
		{
			name: "left only",
			root: f.Node(1, leaf(2), nil),
			want: []string{
				"n1 -> n2;",
				`r1 [label="", style=invis];`,
				"n1 -> r1 [style=invis];",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dot := ToDOT(tt.root)
			for _, s := range tt.want {
				if !strings.Contains(dot, s) {
					t.Errorf("DOT missing %q:\n%s", s, dot)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(dot, s) {
					t.Errorf("DOT should not contain %q:\n%s", s, dot)
				}
			}
		})
	}
}

func TestToDOTDeepChain(t *testing.T) {
	const n = 5000
	f := NewForest()
	var root *Node
	for v := n; v >= 1; v-- {
		root = f.Insert(root, v)
	}
	dot := ToDOT(root)
	if got := strings.Count(dot, " -> n"); got != n-1 {
		t.Errorf("edge count = %d, want %d", got, n-1)
	}
}

package skew

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the tree rooted at root.
//
// Each node is labeled with its value. Left edges are solid and right edges
// dashed; a node with only a left child gets an invisible right placeholder so
// that Graphviz keeps the left child on the left. The root is drawn bold.
// The empty tree yields an empty digraph.
//
// Example:
//
//	f := skew.NewForest()
//	root, _ := f.Replay([]int{3, 1, 2})
//	dot := skew.ToDOT(root)
func ToDOT(root *Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph SkewHeap {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if root != nil {
		fmt.Fprintf(&buf, "  n%d [penwidth=2];\n", root.value)
	}
	stack := []*Node{}
	if root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Fprintf(&buf, "  n%d [label=\"%d\"];\n", u.value, u.value)
		if u.left != nil {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", u.value, u.left.value)
			stack = append(stack, u.left)
		}
		switch {
		case u.right != nil:
			fmt.Fprintf(&buf, "  n%d -> n%d [style=dashed];\n", u.value, u.right.value)
			stack = append(stack, u.right)
		case u.left != nil:
			fmt.Fprintf(&buf, "  r%d [label=\"\", style=invis];\n", u.value)
			fmt.Fprintf(&buf, "  n%d -> r%d [style=invis];\n", u.value, u.value)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the tree rooted at root as an SVG document via ToDOT.
//
// RenderSVG requires the Graphviz library (github.com/goccy/go-graphviz).
// Errors are wrapped with context using fmt.Errorf with %w.
func RenderSVG(ctx context.Context, root *Node) ([]byte, error) {
	dot := ToDOT(root)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

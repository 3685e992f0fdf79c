package skew_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/skewrev/pkg/skew"
)

func ExampleReconstruct() {
	// Node 1 has left child 2 and right child 3. Index 0 is unused.
	left := []int{0, 2, 0, 0}
	right := []int{0, 3, 0, 0}

	res, err := skew.Reconstruct(context.Background(), left, right, log.New(io.Discard))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("min:", res.Min)
	fmt.Println("max:", res.Max)
	// Output:
	// min: [1 3 2]
	// max: [3 1 2]
}

func ExampleForest_Replay() {
	f := skew.NewForest()
	root, _ := f.Replay([]int{3, 1, 2})
	fmt.Println("root:", root.Value())
	fmt.Println("left:", root.Left().Value())
	fmt.Println("right:", root.Right().Value())
	// Output:
	// root: 1
	// left: 2
	// right: 3
}

func ExampleForest_Undo() {
	f := skew.NewForest()
	root, _ := f.Replay([]int{3, 1, 2})
	for v, prev := range f.Undo(root, skew.Descending) {
		fmt.Printf("undo %d leaves %d nodes\n", v, prev.Size())
	}
	// Output:
	// undo 2 leaves 2 nodes
}

func ExampleOrders() {
	for seq := range skew.Orders(3) {
		fmt.Println(seq)
	}
	// Output:
	// [1 2 3]
	// [2 1 3]
	// [3 1 2]
	// [1 3 2]
	// [2 3 1]
	// [3 2 1]
}

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skewrev/pkg/errors"
	skewio "github.com/matzehuels/skewrev/pkg/io"
	"github.com/matzehuels/skewrev/pkg/skew"
)

// replayCommand creates the replay command, which runs skew-heap insertion
// forward and prints the resulting tree.
func (c *CLI) replayCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "replay [values...]",
		Short: "Insert a sequence into an empty skew heap and print the tree",
		Long: `Insert the given values, in order, into an empty skew heap and print the
resulting tree in the batch input format (or JSON with --json). Values are
taken from the arguments, or from stdin if there are none, and must be a
permutation of 1..n.

The output can be piped straight into "skewrev solve".`,
		Example: `  # Build a tree and recover its insertion orders
  skewrev replay 3 1 2 | skewrev solve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := readSequence(cmd, args)
			if err != nil {
				return err
			}

			f := skew.NewForest()
			root, err := f.Replay(seq)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("replayed", "values", len(seq), "interned", f.Len())

			d := describe(root)
			if jsonOutput {
				return skewio.WriteJSON(d, cmd.OutOrStdout())
			}
			return skewio.WriteDescription(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the tree as JSON")

	return cmd
}

// readSequence parses values from args, or from stdin when args is empty.
func readSequence(cmd *cobra.Command, args []string) ([]int, error) {
	if len(args) == 0 {
		return skewio.ReadSequence(cmd.InOrStdin())
	}
	seq := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "value %q", a)
		}
		seq[i] = v
	}
	return seq, nil
}

// describe converts a tree into its 1-indexed child description.
func describe(root *skew.Node) *skewio.Description {
	left, right := skew.Describe(root)
	return &skewio.Description{N: root.Size(), Left: left, Right: right}
}

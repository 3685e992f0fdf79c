package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skewrev/pkg/errors"
	skewio "github.com/matzehuels/skewrev/pkg/io"
	"github.com/matzehuels/skewrev/pkg/skew"
)

// verifyCommand creates the verify command, which solves a tree and then
// checks the answer by replaying it.
func (c *CLI) verifyCommand() *cobra.Command {
	var (
		exhaustive bool
		jsonInput  bool
	)

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Solve a tree and check both answers by replaying them",
		Long: fmt.Sprintf(`Solve a tree, insert both reported orders into an empty skew heap and
confirm each rebuilds the input.

With --exhaustive, trees of up to %d nodes are also checked against every
one of the n! insertion orders.`, exhaustiveLimit),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			d, err := c.readDescription(cmd, argPath(args), jsonInput)
			if err != nil {
				return err
			}
			f := skew.NewForest()
			root, err := skew.Build(f, d.Left, d.Right)
			if err != nil {
				return err
			}

			if exhaustive && root.Size() > exhaustiveLimit {
				printWarning("skipping exhaustive check: %d nodes exceeds %d", root.Size(), exhaustiveLimit)
				exhaustive = false
			}

			res, err := skew.NewSolver(f, logger).Solve(cmd.Context(), root)
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInfeasible) {
					return err
				}
				return verifyInfeasible(cmd, f, root, exhaustive)
			}

			if err := verifyResult(cmd, f, root, res, exhaustive); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			prog.done(fmt.Sprintf("Verified %d nodes", root.Size()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, fmt.Sprintf("also compare against all insertion orders (n ≤ %d)", exhaustiveLimit))
	cmd.Flags().BoolVar(&jsonInput, "json", false, "read the tree as JSON instead of the batch format")

	return cmd
}

func verifyResult(cmd *cobra.Command, f *skew.Forest, root *skew.Node, res *skew.Result, exhaustive bool) error {
	for _, seq := range []struct {
		name string
		seq  []int
	}{{"smallest", res.Min}, {"largest", res.Max}} {
		h, err := f.Replay(seq.seq)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "%s order is not a permutation", seq.name)
		}
		if !skew.Equal(h, root) {
			return errors.New(errors.ErrCodeInternal, "%s order %s does not rebuild the tree", seq.name, skewio.FormatSequence(seq.seq))
		}
	}
	if slices.Compare(res.Min, res.Max) > 0 {
		return errors.New(errors.ErrCodeInternal, "smallest order sorts after largest order")
	}

	printSuccess("Both orders rebuild the tree")
	printKeyValue("Nodes", StyleNumber.Render(fmt.Sprintf("%d", res.Stats.Nodes)))
	printKeyValue("Smallest", skewio.FormatSequence(res.Min))
	printKeyValue("Largest", skewio.FormatSequence(res.Max))
	printDetail("%d subtrees interned, %d memo entries", res.Stats.Interned, res.Stats.Memo)

	if !exhaustive {
		return nil
	}
	all := producers(cmd, f, root)
	if len(all) == 0 {
		return errors.New(errors.ErrCodeInternal, "exhaustive search found no insertion order")
	}
	if !slices.Equal(all[0], res.Min) || !slices.Equal(all[len(all)-1], res.Max) {
		return errors.New(errors.ErrCodeInternal, "exhaustive search disagrees: smallest %s, largest %s",
			skewio.FormatSequence(all[0]), skewio.FormatSequence(all[len(all)-1]))
	}
	printSuccess("Exhaustive search agrees (%d insertion orders)", len(all))
	return nil
}

func verifyInfeasible(cmd *cobra.Command, f *skew.Forest, root *skew.Node, exhaustive bool) error {
	if !exhaustive {
		printWarning("No insertion order builds this tree")
		return nil
	}
	if all := producers(cmd, f, root); len(all) > 0 {
		err := errors.New(errors.ErrCodeInternal, "search found no order but %s builds the tree", skewio.FormatSequence(all[0]))
		printError("%s", errors.UserMessage(err))
		return err
	}
	printSuccess("No insertion order builds this tree (confirmed exhaustively)")
	return nil
}

// producers runs the brute-force replay behind a spinner on stderr.
func producers(cmd *cobra.Command, f *skew.Forest, root *skew.Node) [][]int {
	s := startSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Replaying all %d! insertion orders", root.Size()))
	defer s.stop()
	return f.Producers(root)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/skewrev/pkg/errors"
	skewio "github.com/matzehuels/skewrev/pkg/io"
	"github.com/matzehuels/skewrev/pkg/observability"
	"github.com/matzehuels/skewrev/pkg/skew"
)

// solveCommand creates the solve command, the batch transform with an
// optional input file.
func (c *CLI) solveCommand() *cobra.Command {
	var jsonInput bool

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the smallest and largest insertion orders for a tree",
		Long: `Read a tree description and print two lines: the lexicographically
smallest and largest insertion orders that build it. If the description is
malformed, is not a valid skew heap, or cannot be built by any insertion
order, print the single line "impossible".`,
		Example: `  # A three-node left chain
  printf '3\n2 0\n3 0\n0 0\n' | skewrev solve

  # From a file
  skewrev solve tree.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, argPath(args), jsonInput)
		},
	}

	cmd.Flags().BoolVar(&jsonInput, "json", false, "read the tree as JSON instead of the batch format")

	return cmd
}

// runSolve executes one query. Rejected inputs are reported on stdout as
// "impossible" and are not command errors.
func (c *CLI) runSolve(cmd *cobra.Command, path string, jsonInput bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	d, err := c.readDescription(cmd, path, jsonInput)
	var res *skew.Result
	if err == nil {
		observability.Input().OnParsed(ctx, d.N)
		logger.Debug("parsed tree", "nodes", d.N)
		res, err = skew.Reconstruct(ctx, d.Left, d.Right, logger)
	}

	out := cmd.OutOrStdout()
	if err != nil {
		code := errors.GetCode(err)
		if errors.IsRejection(err) {
			if code != errors.ErrCodeInfeasible {
				observability.Input().OnRejected(ctx, string(code))
			}
			logger.Debug("rejected", "code", code, "reason", errors.UserMessage(err))
		}
		return skewio.WriteResult(out, nil, nil, err)
	}
	return skewio.WriteResult(out, res.Min, res.Max, nil)
}

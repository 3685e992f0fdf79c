package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skewrev/internal/config"
	"github.com/matzehuels/skewrev/pkg/errors"
	"github.com/matzehuels/skewrev/pkg/skew"
)

// renderCommand creates the render command for drawing a tree with Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		format    string
		jsonInput bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree as Graphviz DOT or SVG",
		Long: `Validate a tree description and draw it. Left edges are solid, right edges
dashed, and the root is outlined in bold.

The format defaults to the extension of --output, then to render.format in
the config file.`,
		Example: `  # SVG of a replayed heap
  skewrev replay 3 1 2 | skewrev render -o heap.svg

  # DOT to stdout
  skewrev render tree.txt --format dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.readDescription(cmd, argPath(args), jsonInput)
			if err != nil {
				return err
			}
			f := skew.NewForest()
			root, err := skew.Build(f, d.Left, d.Right)
			if err != nil {
				return err
			}

			format = resolveFormat(format, output, c.Config.Render.Format)
			var data []byte
			switch format {
			case config.FormatDOT:
				data = []byte(skew.ToDOT(root))
			case config.FormatSVG:
				data, err = skew.RenderSVG(cmd.Context(), root)
				if err != nil {
					return fmt.Errorf("render: %w", err)
				}
			default:
				return errors.New(errors.ErrCodeUnsupported, "unsupported format %q (use dot or svg)", format)
			}

			if err := writeFile(cmd.OutOrStdout(), data, output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if output != "" {
				printSuccess("Tree rendered")
				printKeyValue("Nodes", fmt.Sprintf("%d", root.Size()))
				printKeyValue("Format", format)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "", "output format: dot or svg")
	cmd.Flags().BoolVar(&jsonInput, "json", false, "read the tree as JSON instead of the batch format")

	return cmd
}

// resolveFormat picks the explicit format, else the output extension, else
// the configured default.
func resolveFormat(explicit, output, fallback string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".dot", ".gv":
		return config.FormatDOT
	case ".svg":
		return config.FormatSVG
	}
	return fallback
}

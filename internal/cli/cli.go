package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/skewrev/internal/config"
	"github.com/matzehuels/skewrev/pkg/buildinfo"
	"github.com/matzehuels/skewrev/pkg/errors"
	skewio "github.com/matzehuels/skewrev/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "skewrev"

	// exhaustiveLimit is the largest tree verify will brute-force (n! replays).
	exhaustiveLimit = 8
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Run without a subcommand, the root command is the batch transform: it reads
// a tree description from stdin and prints the two extreme insertion orders
// or "impossible".
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "skewrev recovers skew-heap insertion orders from a final tree",
		Long: `skewrev reads the shape of a binary tree built by inserting 1..n into a
skew heap and prints the lexicographically smallest and largest insertion
orders that produce it, or "impossible" if none does.

Input is n followed by one "left right" pair per node (0 = no child).`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, "", false)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/skewrev/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads configuration, applies log level and stack limits, and
// attaches a per-query logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)

	if mb := cfg.Solver.MaxStackMB; mb > 0 {
		debug.SetMaxStack(mb << 20)
	}

	logger := c.Logger.With("query", uuid.NewString())
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}

// =============================================================================
// Input Helpers
// =============================================================================

// readDescription reads a tree description from path, or from stdin when
// path is empty or "-".
func (c *CLI) readDescription(cmd *cobra.Command, path string, jsonInput bool) (*skewio.Description, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if jsonInput {
		d, err := skewio.ReadJSON(r)
		if err == nil && c.Config.Solver.MaxNodes > 0 && d.N > c.Config.Solver.MaxNodes {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node count %d exceeds limit %d", d.N, c.Config.Solver.MaxNodes)
		}
		return d, err
	}
	return skewio.ReadDescription(r, c.Config.Solver.MaxNodes)
}

// argPath returns the optional file argument.
func argPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// writeFile writes data to path, or to stdout if path is empty.
func writeFile(w io.Writer, data []byte, path string) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

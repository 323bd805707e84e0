// Command patrol reads a guard map and prints how many cells the guard
// visits and how many single obstacles would trap it in a loop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/patrol"
)

var (
	// Flags
	configPath string
	workers    int
	exhaustive bool
	annotate   bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "patrol [file|-]",
	Short: "Simulate a guard patrol and count loop-inducing obstacles",
	Long: `patrol reads a map of '.' (open), '#' (obstacle) and one guard
('^', '>', 'v' or '<'), walks the guard until it leaves the map and prints:

  [Part 1] number of distinct cells visited
  [Part 2] number of single new obstacles that trap the guard in a loop

The map is read from the named file, or from standard input when the
argument is "-" or missing.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPatrol,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent loop trials (0 = one per CPU)")
	rootCmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "Try every empty cell, not only the guard's route")
	rootCmd.Flags().BoolVarP(&annotate, "annotate", "a", false, "Print the map with the patrol marked")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the configuration file.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	if cmd.Flags().Changed("workers") {
		c.Search.Workers = workers
	}
	if cmd.Flags().Changed("exhaustive") {
		c.Search.Exhaustive = exhaustive
	}
	if cmd.Flags().Changed("annotate") {
		c.Output.Annotate = annotate
	}
}

// newLogger builds a production zap logger writing to stderr.
func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	lvl, err := lc.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// runPatrol loads the map, runs the search and prints both answers.
func runPatrol(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	g, err := readGrid(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	logger.Debug("Map loaded",
		zap.String("source", source),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height))

	find := patrol.FindLoopObstacles
	if cfg.Search.Exhaustive {
		find = patrol.FindLoopObstaclesExhaustive
	}
	res, err := find(g,
		patrol.WithContext(ctx),
		patrol.WithWorkers(cfg.Search.Workers),
		patrol.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("Patrol simulated",
		zap.Int("visited", res.Route.Visited()),
		zap.Int("candidates", res.Candidates),
		zap.Int("loops", res.Count()))

	return report(cmd.OutOrStdout(), g, res, cfg.Output)
}

func readGrid(stdin io.Reader, source string) (*grid.Grid, error) {
	if source == "-" {
		return grid.ParseReader(stdin)
	}
	return grid.Load(source)
}

func report(w io.Writer, g *grid.Grid, res *patrol.Search, out config.OutputConfig) error {
	if out.Annotate {
		if _, err := io.WriteString(w, g.Annotate(res.Route.Path, out.GlyphRune())); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "[Part 1] %d\n[Part 2] %d\n", res.Route.Visited(), res.Count())
	return err
}

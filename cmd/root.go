package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lenslab/internal/catalog"
	"github.com/abhisek/lenslab/internal/config"
	"github.com/abhisek/lenslab/internal/logging"
	"github.com/abhisek/lenslab/internal/problemgen"
	"github.com/abhisek/lenslab/internal/rng"
)

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "lenslab",
	Short: "Seeded thin-lens physics problems",
	Long: `Lens Lab generates thin-lens optics word problems from a seed.

The same seed always produces the same problem, so a seed is all you need
to share or revisit one. Run without arguments to open the practice UI.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPlay,
}

// setup resolves configuration and builds the logger before any command
// runs. Flags override the environment.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("catalog") {
		cfg.Catalog, _ = flags.GetString("catalog")
	}
	if flags.Changed("resample") {
		cfg.ResampleDegenerate, _ = flags.GetBool("resample")
	}

	// The UI owns the terminal.
	if !cmd.HasParent() || cmd == playCmd {
		logger = zap.NewNop()
		return nil
	}
	logger, err = logging.New(cfg.LogLevel)
	return err
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error (overrides LENSLAB_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a substitute catalog YAML (overrides LENSLAB_CATALOG)")
	rootCmd.PersistentFlags().Bool("resample", false, "Redraw problems whose object sits at the focal point (overrides LENSLAB_RESAMPLE_DEGENERATE)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// newEngine builds the generator from the resolved configuration.
func newEngine() (*problemgen.Engine, error) {
	pc := problemgen.DefaultConfig()
	pc.Logger = logger
	pc.ResampleDegenerate = cfg.ResampleDegenerate
	if cfg.Catalog != "" {
		cat, err := catalog.LoadFile(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		pc.Catalog = cat
	}

	engine, err := problemgen.New(pc)
	if err != nil {
		return nil, fmt.Errorf("create generator: %w", err)
	}
	return engine, nil
}

// resolveSeed returns the --seed flag when given, else a fresh seed.
func resolveSeed(cmd *cobra.Command) (int64, error) {
	if cmd.Flags().Changed("seed") {
		raw, _ := cmd.Flags().GetString("seed")
		return rng.ParseSeed(raw)
	}
	return drawSeed()
}

func drawSeed() (int64, error) {
	return rng.NewSeed(cfg.SeedMax)
}

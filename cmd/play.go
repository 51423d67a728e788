package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lenslab/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the practice UI",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("seed", "", "Seed of the first problem (default: a fresh random seed)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var seed int64
	var err error
	if cmd.Flags().Lookup("seed") != nil {
		seed, err = resolveSeed(cmd)
	} else {
		seed, err = drawSeed()
	}
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Engine:  engine,
		NewSeed: drawSeed,
		Seed:    seed,
	})
}

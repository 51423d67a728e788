package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/lenslab/internal/problemgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the problem for a seed",
	Example: `  lenslab generate --seed 42
  lenslab generate --seed 42 --given --answers
  lenslab generate --json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("seed", "", "Problem seed (default: a fresh random seed)")
	generateCmd.Flags().Bool("given", false, "Also print the given values and equations")
	generateCmd.Flags().Bool("answers", false, "Also print the answers and image classification")
	generateCmd.Flags().Bool("json", false, "Print the full record as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed, err := resolveSeed(cmd)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	rec := engine.Generate(seed)
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	given, _ := cmd.Flags().GetBool("given")
	answers, _ := cmd.Flags().GetBool("answers")
	printRecord(out, rec, given, answers)
	return nil
}

// printRecord writes rec as plain text.
func printRecord(w io.Writer, rec *problemgen.Record, given, answers bool) {
	difficulty := "Challenging"
	if rec.IsEasyProblem() {
		difficulty = "Easy"
	}
	fmt.Fprintf(w, "Seed: %d\nDifficulty: %s\n\n%s\n", rec.Seed(), difficulty, rec.Problem())

	if given {
		fmt.Fprintln(w, "\nGiven:")
		for _, key := range rec.GivenInfo() {
			fmt.Fprintf(w, "  %s\n", rec.DetailedInfo(key))
		}
		fmt.Fprintln(w, "Equations:")
		for _, eq := range rec.Equations() {
			fmt.Fprintf(w, "  %s\n", eq)
		}
	}

	if answers {
		fmt.Fprintln(w, "\nAnswers:")
		for _, q := range rec.Partition().Unknowns() {
			answer, _ := rec.Answer(q)
			fmt.Fprintf(w, "  %s\n", answer)
		}
		salt := rec.SALT()
		fmt.Fprintf(w, "Image: %s, %s, %s, %s\n", salt.Size, salt.Attitude, salt.Location, salt.Type)
	}
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lenslab/internal/problemgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer generated problems in the terminal",
	Long: `Generate problems and answer each unknown interactively.

Numbers may be decimals or fractions such as 20/3. Answer "none" when no
image forms. With --seed the quiz uses consecutive seeds starting there.`,
	RunE: runQuizCmd,
}

func init() {
	quizCmd.Flags().String("seed", "", "First problem seed (default: fresh random seeds)")
	quizCmd.Flags().Int("count", 3, "Number of problems")
}

func runQuizCmd(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	seeds := make([]int64, count)
	if cmd.Flags().Changed("seed") {
		first, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		for i := range seeds {
			seeds[i] = first + int64(i)
		}
	} else {
		for i := range seeds {
			s, err := drawSeed()
			if err != nil {
				return err
			}
			seeds[i] = s
		}
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger.Info("quiz started", zap.String("run_id", runID), zap.Int("problems", count))
	score := runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), engine, seeds)
	logger.Info("quiz finished",
		zap.String("run_id", runID),
		zap.Int("correct", score.correct),
		zap.Int("asked", score.asked))
	return nil
}

type quizScore struct {
	correct int
	asked   int
}

// runQuiz asks every unknown of each problem and reports the score. It
// stops early when input closes.
func runQuiz(in io.Reader, out io.Writer, engine *problemgen.Engine, seeds []int64) quizScore {
	scanner := bufio.NewScanner(in)
	var score quizScore

quiz:
	for i, seed := range seeds {
		rec := engine.Generate(seed)

		fmt.Fprintf(out, "── Problem %d/%d (seed %d) ──\n", i+1, len(seeds), seed)
		fmt.Fprintln(out, rec.Problem())

		for _, q := range rec.Partition().Unknowns() {
			prompt := string(q)
			if unit := q.Unit(); unit != "" {
				prompt += " (" + unit + ")"
			}
			fmt.Fprintf(out, "\n%s: ", prompt)
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				break quiz
			}
			answer := strings.TrimSpace(scanner.Text())
			score.asked++
			if answer == "" {
				fmt.Fprintln(out, "(skipped)")
				continue
			}

			expected, _ := rec.Answer(q)
			if problemgen.CheckAnswer(answer, rec, q) {
				score.correct++
				fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
			} else {
				fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m %s\n", expected)
			}
		}

		salt := rec.SALT()
		fmt.Fprintf(out, "Image: %s, %s, %s, %s\n\n", salt.Size, salt.Attitude, salt.Location, salt.Type)
	}

	fmt.Fprintf(out, "── Summary: %d/%d correct ──\n", score.correct, score.asked)
	return score
}

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/lenslab/internal/problemgen"
	"github.com/abhisek/lenslab/internal/rng"
)

func testEngine(t *testing.T) *problemgen.Engine {
	t.Helper()
	engine, err := problemgen.New(problemgen.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestPrintRecord(t *testing.T) {
	rec := testEngine(t).Generate(42)

	var plain bytes.Buffer
	printRecord(&plain, rec, false, false)
	out := plain.String()
	assert.True(t, strings.HasPrefix(out, "Seed: 42\nDifficulty: Challenging\n\n"))
	assert.Contains(t, out, rec.Problem())
	assert.NotContains(t, out, "Answers:")
	assert.NotContains(t, out, "Equations:")

	var full bytes.Buffer
	printRecord(&full, rec, true, true)
	out = full.String()
	assert.Contains(t, out, "Given:")
	assert.Contains(t, out, "Equations:")
	assert.Contains(t, out, "Object distance (do): 57.39 cm")
	assert.Contains(t, out, "Magnification (m): -0.29")
	assert.Contains(t, out, "Image: Smaller, Inverted, Between f and 2f, Real")
}

func TestRunQuiz(t *testing.T) {
	engine := testEngine(t)

	var out bytes.Buffer
	score := runQuiz(strings.NewReader("57.39\n1\n-0.29\n"), &out, engine, []int64{42})

	assert.Equal(t, quizScore{correct: 2, asked: 3}, score)
	assert.Contains(t, out.String(), "Problem 1/1 (seed 42)")
	assert.Contains(t, out.String(), "Image height (hi): -0.87 cm")
	assert.Contains(t, out.String(), "Summary: 2/3 correct")
}

func TestRunQuiz_InputClosed(t *testing.T) {
	engine := testEngine(t)

	var out bytes.Buffer
	score := runQuiz(strings.NewReader("57.39\n"), &out, engine, []int64{42, 43})

	assert.Equal(t, quizScore{correct: 1, asked: 1}, score)
	assert.Contains(t, out.String(), "(input closed)")
	assert.NotContains(t, out.String(), "Problem 2/2")
}

func TestRunQuiz_SkippedAnswer(t *testing.T) {
	var out bytes.Buffer
	score := runQuiz(strings.NewReader("\n\n\n"), &out, testEngine(t), []int64{42})

	assert.Equal(t, quizScore{correct: 0, asked: 3}, score)
	assert.Equal(t, 3, strings.Count(out.String(), "(skipped)"))
}

func TestSampleSeeds(t *testing.T) {
	stats, err := sampleSeeds(context.Background(), testEngine(t), 0, 300, 4)
	require.NoError(t, err)

	assert.Equal(t, 300, stats.total)
	assert.Empty(t, stats.failures)
	assert.Equal(t, 300, stats.lens["converging"]+stats.lens["diverging"])
	assert.Equal(t, 300, stats.difficulty["easy"]+stats.difficulty["challenging"])

	partitions := 0
	for i, n := range stats.partition {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 6)
		partitions += n
	}
	assert.Equal(t, 300, partitions)

	var out bytes.Buffer
	printSample(&out, stats)
	assert.True(t, strings.HasPrefix(out.String(), "Sampled 300 problems, 0 failed verification\n"))
}

func TestSampleSeeds_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sampleSeeds(ctx, testEngine(t), 0, 50, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveSeed(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("seed", "", "")
		return c
	}

	c := newCmd()
	require.NoError(t, c.Flags().Set("seed", " 42 "))
	seed, err := resolveSeed(c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)

	c = newCmd()
	require.NoError(t, c.Flags().Set("seed", "abc"))
	_, err = resolveSeed(c)
	assert.Error(t, err)

	cfg.SeedMax = 10
	t.Cleanup(func() { cfg.SeedMax = 0 })
	seed, err = resolveSeed(newCmd())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seed, int64(0))
	assert.Less(t, seed, int64(10))
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LENSLAB_LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		logger = zap.NewNop()
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestExecute_Version(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lenslab (devel)\n", out)
}

func TestExecute_Generate(t *testing.T) {
	out, err := executeRoot(t, "generate", "--seed", "42", "--answers")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Seed: 42\n"))
	assert.Contains(t, out, "Object distance (do): 57.39 cm")
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestExecute_GenerateRejectsInvalidSeed(t *testing.T) {
	_, err := executeRoot(t, "generate", "--seed", "12abc")

	var invalid *rng.ErrInvalidSeed
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "12abc", invalid.Input)
}

func TestExecute_LogLevelFlagOverridesEnv(t *testing.T) {
	_, err := executeRoot(t, "version", "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lenslab/internal/catalog"
	"github.com/abhisek/lenslab/internal/optics"
	"github.com/abhisek/lenslab/internal/rng"
)

func mustDefaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestCompose_EasyDrawOrder(t *testing.T) {
	c := Composer{Catalog: mustDefaultCatalog(t)}
	// lens, object, template, difficulty, f, do, ho
	src := rng.NewSequence(0.7, 0, 0, 0.2, 0.5, 0.99, 0.5)

	sc := c.Compose(src)
	assert.Equal(t, Scenario{
		Lens:           optics.Converging,
		Object:         "pencil",
		Text:           "In a physics lab, students are experimenting with a converging lens.",
		Difficulty:     Easy,
		FocalLength:    6,
		ObjectDistance: 12,
		ObjectHeight:   6,
	}, sc)
}

func TestCompose_ChallengingDiverging(t *testing.T) {
	c := Composer{Catalog: mustDefaultCatalog(t)}
	// A draw of exactly 1 is clamped to the last entry.
	src := rng.NewSequence(0.2, 0.99, 1.0, 0.9, 0.5, 0.25, 0)

	sc := c.Compose(src)
	assert.Equal(t, optics.Diverging, sc.Lens)
	assert.Equal(t, "statue", sc.Object)
	assert.Equal(t, "In a virtual reality headset, diverging lenses are used to focus the display for the user's eyes.", sc.Text)
	assert.Equal(t, Challenging, sc.Difficulty)
	assert.Equal(t, -27.5, sc.FocalLength)
	assert.Equal(t, 32.5, sc.ObjectDistance)
	assert.Equal(t, 1.0, sc.ObjectHeight)
}

func TestCompose_ChallengingRoundsToCents(t *testing.T) {
	c := Composer{Catalog: mustDefaultCatalog(t)}
	src := rng.NewSequence(0.9, 0, 0, 0.9, 0.123456, 0.654321, 0.99)

	sc := c.Compose(src)
	assert.Equal(t, 10.56, sc.FocalLength)
	assert.Equal(t, 68.89, sc.ObjectDistance)
	assert.Equal(t, 10.0, sc.ObjectHeight)
}

func TestCompose_Degenerate(t *testing.T) {
	// Converging, easy, f=2 and do=2 on the first draw, then f=6, do=12.
	draws := []float64{0.7, 0, 0, 0.2, 0, 0, 0.5, 0.99, 0.5}

	t.Run("kept by default", func(t *testing.T) {
		c := Composer{Catalog: mustDefaultCatalog(t)}
		sc := c.Compose(rng.NewSequence(draws...))
		assert.Equal(t, 2.0, sc.FocalLength)
		assert.Equal(t, 2.0, sc.ObjectDistance)
		assert.Equal(t, 6.0, sc.ObjectHeight)
	})

	t.Run("redrawn when resampling", func(t *testing.T) {
		c := Composer{Catalog: mustDefaultCatalog(t), MaxResample: 4}
		sc := c.Compose(rng.NewSequence(draws...))
		assert.Equal(t, 6.0, sc.FocalLength)
		assert.Equal(t, 12.0, sc.ObjectDistance)
		assert.Equal(t, 6.0, sc.ObjectHeight)
	})
}

func TestCompose_DivergingNeverDegenerate(t *testing.T) {
	// f=-2, do=2 is a valid virtual image, not a resample case.
	c := Composer{Catalog: mustDefaultCatalog(t), MaxResample: 4}
	sc := c.Compose(rng.NewSequence(0.1, 0, 0, 0.2, 0, 0, 0.5))
	assert.Equal(t, -2.0, sc.FocalLength)
	assert.Equal(t, 2.0, sc.ObjectDistance)
}

func TestSelectPartition(t *testing.T) {
	e := testEngine(t)
	parts := e.Partitions()
	require.Len(t, parts, 6)

	assert.Equal(t, 0, SelectPartition(rng.NewSequence(0), parts).Index())
	assert.Equal(t, 3, SelectPartition(rng.NewSequence(0.5), parts).Index())
	assert.Equal(t, 5, SelectPartition(rng.NewSequence(0.9999), parts).Index())
	assert.Equal(t, 5, SelectPartition(rng.NewSequence(1), parts).Index())
}

func TestPartitions_ReturnsCopy(t *testing.T) {
	e := testEngine(t)
	parts := e.Partitions()
	parts[0] = Partition{}

	assert.Equal(t, 0, e.Partitions()[0].Index())
	assert.Len(t, e.Partitions()[0].Knowns(), 3)

	knowns := e.Partitions()[1].Knowns()
	knowns[0] = Magnification
	assert.Equal(t, FocalLength, e.Partitions()[1].Knowns()[0])
}

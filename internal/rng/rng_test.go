package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulberry32_KnownStream(t *testing.T) {
	tests := []struct {
		name string
		seed int64
		want []float64
	}{
		{"zero", 0, []float64{0.26642920868471265, 0.0003297457005828619, 0.2232720274478197}},
		{"one", 1, []float64{0.6270739405881613, 0.002735721180215478, 0.5274470399599522}},
		{"forty-two", 42, []float64{0.6011037519201636, 0.44829055899754167, 0.8524657934904099}},
		{"negative wraps", -1, []float64{0.8964226141106337, 0.189478256739676, 0.7156526781618595}},
		{"max uint32", 4294967295, []float64{0.8964226141106337, 0.189478256739676, 0.7156526781618595}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.seed)
			for i, want := range tt.want {
				assert.Equal(t, want, m.Float64(), "draw %d", i)
			}
			assert.Equal(t, int64(len(tt.want)), m.Position())
		})
	}
}

func TestMulberry32_SameSeedSameStream(t *testing.T) {
	a, b := New(123456), New(123456)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
}

func TestMulberry32_Range(t *testing.T) {
	m := New(987654)
	for i := 0; i < 10000; i++ {
		v := m.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestMulberry32_SeedWraps(t *testing.T) {
	assert.Equal(t, uint32(0), New(1<<32).Seed())
	assert.Equal(t, uint32(4294967295), New(-1).Seed())
}

func TestPick_ClampsUpperBoundary(t *testing.T) {
	src := NewSequence(0.9999999999999999, 0, 0.5)
	assert.Equal(t, 5, Pick(src, 6))
	assert.Equal(t, 0, Pick(src, 6))
	assert.Equal(t, 3, Pick(src, 6))

	// A misbehaving source that returns exactly 1 must still stay in range.
	assert.Equal(t, 5, Pick(NewSequence(1), 6))
}

func TestSequence_Cycles(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, got)
	assert.Equal(t, 0.0, NewSequence().Float64())
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"  999999 ", 999999, false},
		{"-2147483648", -2147483648, false},
		{"4294967295", 4294967295, false},
		{"4294967296", 0, true},
		{"-2147483649", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSeed(tt.input)
			if tt.wantErr {
				var seedErr *ErrInvalidSeed
				require.ErrorAs(t, err, &seedErr)
				assert.Equal(t, tt.input, seedErr.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		s, err := NewSeed(DefaultSeedMax)
		require.NoError(t, err)
		require.GreaterOrEqual(t, s, int64(0))
		require.Less(t, s, int64(DefaultSeedMax))
	}

	_, err := NewSeed(0)
	assert.Error(t, err)
}

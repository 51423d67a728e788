package rng

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// DefaultSeedMax bounds freshly drawn seeds: [0, DefaultSeedMax).
const DefaultSeedMax = 1_000_000

// ErrInvalidSeed indicates user input that cannot be used as a seed.
type ErrInvalidSeed struct {
	Input string
	Err   error
}

func (e *ErrInvalidSeed) Error() string {
	return fmt.Sprintf("invalid seed %q: %v", e.Input, e.Err)
}

func (e *ErrInvalidSeed) Unwrap() error { return e.Err }

// ParseSeed parses a user-supplied seed. Any value representable as a
// signed or unsigned 32-bit integer is accepted; surrounding whitespace
// is ignored.
func ParseSeed(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, &ErrInvalidSeed{Input: s, Err: fmt.Errorf("empty")}
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, &ErrInvalidSeed{Input: s, Err: fmt.Errorf("not an integer")}
	}
	if n < math.MinInt32 || n > math.MaxUint32 {
		return 0, &ErrInvalidSeed{Input: s, Err: fmt.Errorf("outside the 32-bit range")}
	}
	return n, nil
}

// NewSeed draws a fresh seed in [0, max) from crypto/rand.
func NewSeed(max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("seed range must be positive, got %d", max)
	}
	n, err := crand.Int(crand.Reader, big.NewInt(max))
	if err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return n.Int64(), nil
}

package problemgen

import (
	"go.uber.org/zap"

	"github.com/abhisek/lenslab/internal/catalog"
)

// Config controls the behavior of the Engine.
type Config struct {
	// Catalog supplies nouns, templates and partitions. Nil selects the
	// embedded catalog.
	Catalog *catalog.Catalog

	// Validators run, in order, when Engine.Verify checks a record.
	// The first failure stops the chain.
	Validators []Validator

	// Logger receives one debug entry per generated record. Nil disables
	// logging.
	Logger *zap.Logger

	// ResampleDegenerate redraws the distances when a converging lens
	// gets its object exactly at the focal point. When false, such
	// problems are kept and report that no image is formed.
	ResampleDegenerate bool

	// MaxResample caps the redraws made under ResampleDegenerate.
	MaxResample int
}

// DefaultConfig returns a Config with the embedded catalog, the standard
// validator chain, and degenerate problems kept as drawn.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
			&SchemaValidator{},
		},
		MaxResample: 32,
	}
}

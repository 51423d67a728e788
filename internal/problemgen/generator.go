package problemgen

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/lenslab/internal/catalog"
	"github.com/abhisek/lenslab/internal/optics"
	"github.com/abhisek/lenslab/internal/rng"
)

// Generator produces lens problems from seeds.
type Generator interface {
	// Generate returns the problem for seed. The same seed always yields
	// an identical record.
	Generate(seed int64) *Record
}

// Engine implements Generator. It holds only read-only tables, so a
// single Engine may serve concurrent Generate calls.
type Engine struct {
	config      Config
	composer    Composer
	partitions  []Partition
	fullWords   map[Quantity]string
	answerNames map[Quantity]string
	logger      *zap.Logger
}

var _ Generator = (*Engine)(nil)

// New creates an Engine from cfg.
func New(cfg Config) (*Engine, error) {
	cat := cfg.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, err
		}
	} else if err := cat.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		config:      cfg,
		composer:    Composer{Catalog: cat},
		fullWords:   make(map[Quantity]string, len(cat.FullWords)),
		answerNames: make(map[Quantity]string, len(cat.AnswerNames)),
		logger:      logger,
	}
	if cfg.ResampleDegenerate {
		e.composer.MaxResample = cfg.MaxResample
	}
	for i, p := range cat.Partitions {
		e.partitions = append(e.partitions, Partition{
			index:    i,
			knowns:   toQuantities(p.Knowns),
			unknowns: toQuantities(p.Unknowns),
		})
	}
	for k, v := range cat.FullWords {
		e.fullWords[Quantity(k)] = v
	}
	for k, v := range cat.AnswerNames {
		e.answerNames[Quantity(k)] = v
	}
	return e, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("problemgen: default engine: %v", err))
	}
	return e
})

// Generate returns the problem for seed using the embedded catalog.
func Generate(seed int64) *Record {
	return defaultEngine().Generate(seed)
}

// Generate returns the problem for seed. Only the low 32 bits of seed
// are significant.
func (e *Engine) Generate(seed int64) *Record {
	src := rng.New(seed)
	rec := e.GenerateFrom(seed, src)

	e.logger.Debug("generated problem",
		zap.Int64("seed", seed),
		zap.Uint32("stream_seed", src.Seed()),
		zap.String("lens", rec.scenario.Lens.String()),
		zap.String("difficulty", string(rec.scenario.Difficulty)),
		zap.Int("partition", rec.partition.index),
		zap.String("image_type", string(rec.salt.Type)),
		zap.Int64("draws", src.Position()))
	if !rec.solution.Valid {
		e.logger.Warn("object at focal point, no image formed",
			zap.Int64("seed", seed),
			zap.Float64("focal_length", rec.scenario.FocalLength))
	}
	return rec
}

// GenerateFrom builds a record from an arbitrary source. seed is only
// recorded on the result.
func (e *Engine) GenerateFrom(seed int64, src rng.Source) *Record {
	sc := e.composer.Compose(src)
	part := SelectPartition(src, e.partitions)
	return e.build(seed, sc, part)
}

// Build assembles a record from fixed inputs, bypassing the random draws.
func (e *Engine) Build(sc Scenario, part Partition) *Record {
	return e.build(0, sc, part)
}

// Partitions returns the catalog's partitions in order.
func (e *Engine) Partitions() []Partition {
	out := make([]Partition, len(e.partitions))
	copy(out, e.partitions)
	return out
}

// Verify runs the configured validators against rec.
func (e *Engine) Verify(rec *Record) error {
	for _, v := range e.config.Validators {
		if verr := v.Validate(rec); verr != nil {
			return verr
		}
	}
	return nil
}

func (e *Engine) build(seed int64, sc Scenario, part Partition) *Record {
	sol := optics.Solve(sc.FocalLength, sc.ObjectDistance, sc.ObjectHeight)
	salt := optics.Classify(sc.Lens, sc.FocalLength, sc.ObjectDistance, sol.ImageHeight, sc.ObjectHeight)
	fm := FormatQuantities(sc, sol, e.answerNames)

	problem := AssembleNarrative(Narrative{
		Scenario:  sc.Text,
		Object:    sc.Object,
		Knowns:    part.knowns,
		Unknowns:  part.unknowns,
		Sentences: fm.Narrative,
		FullWords: e.fullWords,
	})

	answers := make(map[Quantity]string, len(part.unknowns))
	for _, q := range part.unknowns {
		answers[q] = fm.Answers[q]
	}

	return &Record{
		seed:         seed,
		scenario:     sc,
		solution:     sol,
		partition:    part,
		salt:         salt,
		problem:      problem,
		givenInfo:    append([]Quantity{LensTypeKey}, part.knowns...),
		problemInfo:  fm.Narrative,
		detailedInfo: fm.Symbolic,
		answers:      answers,
	}
}

func toQuantities(symbols []string) []Quantity {
	out := make([]Quantity, len(symbols))
	for i, s := range symbols {
		out[i] = Quantity(s)
	}
	return out
}

// Package catalog holds the static tables that problem generation draws
// from: object nouns, narrative templates, easy-mode denominators, the
// known/unknown partitions, and the display names of each quantity.
//
// The built-in catalog is embedded in the binary and decoded once. A
// substitute catalog with the same shape can be loaded from a file.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only catalog schema version this build reads.
const SupportedVersion = 1

// LensTypePlaceholder is replaced by the lens type name in scenario templates.
const LensTypePlaceholder = "{lens_type}"

// Symbols lists every quantity symbol in canonical order.
var Symbols = []string{"f", "do", "ho", "di", "hi", "m"}

//go:embed catalog.yaml
var embeddedCatalog []byte

// Catalog is the decoded table set. Treat it as read-only once loaded.
type Catalog struct {
	Version      int               `yaml:"version"`
	Objects      []string          `yaml:"objects"`
	Scenarios    []string          `yaml:"scenarios"`
	Denominators []int             `yaml:"denominators"`
	Partitions   []Partition       `yaml:"partitions"`
	FullWords    map[string]string `yaml:"full_words"`
	AnswerNames  map[string]string `yaml:"answer_names"`
}

// Partition names three known and three unknown quantity symbols.
type Partition struct {
	Knowns   []string `yaml:"knowns"`
	Unknowns []string `yaml:"unknowns"`
}

// ValidationError describes why a catalog was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog %s: %s", e.Field, e.Message)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, decoding it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(embeddedCatalog)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded catalog: %w", defaultErr)
		}
	})
	return defaultCatalog, defaultErr
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML catalog data.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every table is usable by the generator.
func (c *Catalog) Validate() error {
	if c.Version != SupportedVersion {
		return &ValidationError{Field: "version", Message: fmt.Sprintf("unsupported version %d (want %d)", c.Version, SupportedVersion)}
	}
	if len(c.Objects) == 0 {
		return &ValidationError{Field: "objects", Message: "must not be empty"}
	}
	for i, o := range c.Objects {
		if strings.TrimSpace(o) == "" {
			return &ValidationError{Field: "objects", Message: fmt.Sprintf("entry %d is blank", i)}
		}
	}
	if len(c.Scenarios) == 0 {
		return &ValidationError{Field: "scenarios", Message: "must not be empty"}
	}
	for i, s := range c.Scenarios {
		if !strings.Contains(s, LensTypePlaceholder) {
			return &ValidationError{Field: "scenarios", Message: fmt.Sprintf("entry %d has no %s placeholder", i, LensTypePlaceholder)}
		}
	}
	if len(c.Denominators) == 0 {
		return &ValidationError{Field: "denominators", Message: "must not be empty"}
	}
	for _, d := range c.Denominators {
		if d <= 0 {
			return &ValidationError{Field: "denominators", Message: fmt.Sprintf("%d is not positive", d)}
		}
	}
	if len(c.Partitions) == 0 {
		return &ValidationError{Field: "partitions", Message: "must not be empty"}
	}
	for i, p := range c.Partitions {
		if err := p.validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("partitions[%d]", i), Message: err.Error()}
		}
	}
	for _, sym := range Symbols {
		if c.FullWords[sym] == "" {
			return &ValidationError{Field: "full_words", Message: fmt.Sprintf("missing %q", sym)}
		}
		if c.AnswerNames[sym] == "" {
			return &ValidationError{Field: "answer_names", Message: fmt.Sprintf("missing %q", sym)}
		}
	}
	return nil
}

// validate requires exactly three knowns and three unknowns that together
// cover every symbol once.
func (p Partition) validate() error {
	if len(p.Knowns) != 3 || len(p.Unknowns) != 3 {
		return fmt.Errorf("want 3 knowns and 3 unknowns, got %d and %d", len(p.Knowns), len(p.Unknowns))
	}
	seen := make(map[string]bool, len(Symbols))
	for _, sym := range append(slices.Clone(p.Knowns), p.Unknowns...) {
		if !slices.Contains(Symbols, sym) {
			return fmt.Errorf("unknown quantity %q", sym)
		}
		if seen[sym] {
			return fmt.Errorf("quantity %q appears twice", sym)
		}
		seen[sym] = true
	}
	return nil
}

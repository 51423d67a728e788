package problemgen

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lenslab/internal/optics"
)

// tamper returns a shallow copy of rec with independent maps.
func tamper(rec *Record) *Record {
	bad := *rec
	bad.problemInfo = maps.Clone(rec.problemInfo)
	bad.detailedInfo = maps.Clone(rec.detailedInfo)
	bad.answers = maps.Clone(rec.answers)
	return &bad
}

func TestValidators_AcceptGeneratedRecords(t *testing.T) {
	e := testEngine(t)
	validators := []Validator{&StructuralValidator{}, &MathCheckValidator{}, &SchemaValidator{}}
	for seed := int64(0); seed < 300; seed++ {
		rec := e.Generate(seed)
		for _, v := range validators {
			assert.Nil(t, v.Validate(rec), "%s rejected seed %d", v.Name(), seed)
		}
	}
}

func TestStructuralValidator_Rejects(t *testing.T) {
	e := testEngine(t)
	rec := e.Generate(42)

	tests := []struct {
		name   string
		mutate func(r *Record)
	}{
		{"missing answer", func(r *Record) { delete(r.answers, r.partition.unknowns[0]) }},
		{"answer for known", func(r *Record) { r.answers[r.partition.knowns[0]] = "x" }},
		{"given info without lens type", func(r *Record) { r.givenInfo = r.givenInfo[1:] }},
		{"given info out of order", func(r *Record) {
			g := []Quantity{LensTypeKey, r.givenInfo[2], r.givenInfo[1], r.givenInfo[3]}
			r.givenInfo = g
		}},
		{"blank narrative", func(r *Record) { r.problemInfo[r.partition.knowns[0]] = "" }},
		{"duplicate quantity", func(r *Record) {
			r.partition = Partition{
				knowns:   []Quantity{FocalLength, FocalLength, ObjectHeight},
				unknowns: []Quantity{ImageDistance, ImageHeight, Magnification},
			}
		}},
		{"quantity on both sides", func(r *Record) {
			r.partition = Partition{
				knowns:   []Quantity{FocalLength, ObjectDistance, ObjectHeight},
				unknowns: []Quantity{FocalLength, ImageHeight, Magnification},
			}
		}},
		{"problem without scenario", func(r *Record) { r.problem = "Determine it for this lens system." }},
		{"problem without question", func(r *Record) { r.problem = r.scenario.Text }},
		{"problem omits known", func(r *Record) { r.problemInfo[r.partition.knowns[0]] = "Something else." }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := tamper(rec)
			tt.mutate(bad)
			verr := v.Validate(bad)
			require.NotNil(t, verr)
			assert.Equal(t, "structural", verr.Validator)
		})
	}
}

func TestStructuralValidator_PartitionSides(t *testing.T) {
	rec := testEngine(t).Generate(42)
	v := &StructuralValidator{}

	dup := tamper(rec)
	dup.partition = Partition{
		knowns:   []Quantity{FocalLength, FocalLength, ObjectHeight},
		unknowns: []Quantity{ImageDistance, ImageHeight, Magnification},
	}
	verr := v.Validate(dup)
	require.NotNil(t, verr)
	assert.Equal(t, `quantity "do" is neither known nor unknown`, verr.Message)

	both := tamper(rec)
	both.partition = Partition{
		knowns:   []Quantity{FocalLength, ObjectDistance, ObjectHeight},
		unknowns: []Quantity{FocalLength, ImageHeight, Magnification},
	}
	verr = v.Validate(both)
	require.NotNil(t, verr)
	assert.Equal(t, `quantity "f" is both known and unknown`, verr.Message)
}

func TestMathCheckValidator_Rejects(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name   string
		seed   int64
		mutate func(r *Record)
	}{
		{"wrong image distance", 42, func(r *Record) { r.solution.ImageDistance += 1 }},
		{"wrong magnification", 42, func(r *Record) { r.solution.Magnification = -r.solution.Magnification }},
		{"wrong size", 4, func(r *Record) { r.salt.Size = optics.Larger }},
		{"wrong attitude", 42, func(r *Record) { r.salt.Attitude = optics.Upright }},
		{"diverging classified real", 0, func(r *Record) { r.salt.Type = optics.Real }},
		{"sign does not match lens", 0, func(r *Record) { r.scenario.FocalLength = 5 }},
		{"fractional object height", 42, func(r *Record) { r.scenario.ObjectHeight = 2.5 }},
		{"no image but valid", 42, func(r *Record) { r.salt.Type = optics.NoImage }},
		{"no image located", 13, func(r *Record) { r.salt.Location = optics.LocationAt2F }},
		{"NaN leaked", 13, func(r *Record) { r.answers[ImageDistance] = "Image distance (di): NaN cm" }},
		{"Infinity leaked", 13, func(r *Record) { r.detailedInfo[ImageDistance] = "di = Infinity cm" }},
	}

	v := &MathCheckValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := tamper(e.Generate(tt.seed))
			tt.mutate(bad)
			verr := v.Validate(bad)
			require.NotNil(t, verr)
			assert.Equal(t, "math-check", verr.Validator)
		})
	}
}

func TestSchemaValidator_Rejects(t *testing.T) {
	bad := tamper(testEngine(t).Generate(42))
	bad.answers[LensTypeKey] = "Lens type: converging"

	verr := (&SchemaValidator{}).Validate(bad)
	require.NotNil(t, verr)
	assert.Equal(t, "schema", verr.Validator)
}

func TestEngine_VerifyStopsAtFirstFailure(t *testing.T) {
	e := testEngine(t)
	bad := tamper(e.Generate(42))
	delete(bad.answers, bad.partition.unknowns[0])
	bad.salt.Attitude = optics.Upright

	err := e.Verify(bad)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "structural", verr.Validator)
	assert.Contains(t, err.Error(), `validator "structural"`)
}

func TestEngine_VerifyWithNoValidators(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Validators = nil
	e, err := New(cfg)
	require.NoError(t, err)

	bad := tamper(e.Generate(42))
	bad.problem = ""
	assert.NoError(t, e.Verify(bad))
}

package problemgen

import "encoding/json"

// Exported is the presentation-facing view of a Record, with the field
// names the UI contract uses.
type Exported struct {
	Seed            int64             `json:"seed"`
	Problem         string            `json:"problem"`
	GivenInfo       []string          `json:"givenInfo"`
	ProblemInfoMap  map[string]string `json:"problemInfoMap"`
	DetailedInfoMap map[string]string `json:"detailedInfoMap"`
	Equations       []string          `json:"equations"`
	ProblemType     ExportedPartition `json:"problemType"`
	Answers         map[string]string `json:"answers"`
	SALT            ExportedSALT      `json:"salt"`
	IsEasyProblem   bool              `json:"isEasyProblem"`
}

// ExportedPartition lists quantity symbols.
type ExportedPartition struct {
	Knowns   []string `json:"knowns"`
	Unknowns []string `json:"unknowns"`
}

// ExportedSALT is the image classification as plain strings.
type ExportedSALT struct {
	Size     string `json:"size"`
	Attitude string `json:"attitude"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// Export copies the record into its presentation-facing form.
func (r *Record) Export() Exported {
	return Exported{
		Seed:            r.seed,
		Problem:         r.problem,
		GivenInfo:       symbols(r.givenInfo),
		ProblemInfoMap:  stringMap(r.problemInfo),
		DetailedInfoMap: stringMap(r.detailedInfo),
		Equations:       append([]string{}, Equations[:]...),
		ProblemType: ExportedPartition{
			Knowns:   symbols(r.partition.knowns),
			Unknowns: symbols(r.partition.unknowns),
		},
		Answers: stringMap(r.answers),
		SALT: ExportedSALT{
			Size:     string(r.salt.Size),
			Attitude: string(r.salt.Attitude),
			Location: string(r.salt.Location),
			Type:     string(r.salt.Type),
		},
		IsEasyProblem: r.IsEasyProblem(),
	}
}

// MarshalJSON encodes the exported form.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Export())
}

func symbols(qs []Quantity) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = string(q)
	}
	return out
}

func stringMap(m map[Quantity]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

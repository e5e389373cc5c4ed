package pose

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReferenceSet holds the exemplars of a correctly executed pose. Strict
// exemplars are the "absolutely ideal" executions and are scanned together
// with the regular ones.
type ReferenceSet struct {
	Ideal  []LandmarkSet `json:"ideal"`
	Strict []LandmarkSet `json:"strict"`
}

// Exemplars returns ideal exemplars followed by strict ones.
func (rs ReferenceSet) Exemplars() []LandmarkSet {
	all := make([]LandmarkSet, 0, len(rs.Ideal)+len(rs.Strict))
	all = append(all, rs.Ideal...)
	all = append(all, rs.Strict...)
	return all
}

// References maps each pose to its reference exemplars. It is loaded once
// and never modified afterwards, so it is safe for concurrent reads.
type References map[Asana]ReferenceSet

// LoadReferences decodes reference exemplars from JSON of the form
//
//	{"pranamasana": {"ideal": [[{"x":0,"y":0}, ...]], "strict": [...]}}
//
// Every exemplar must be a full skeleton. Exemplars are normalized on the
// nose, the same way captured frames are.
func LoadReferences(r io.Reader) (References, error) {
	var raw map[string]ReferenceSet
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode references: %w", err)
	}

	refs := make(References, len(raw))
	for name, set := range raw {
		asana := Asana(name)
		if !asana.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPose, name)
		}
		if len(set.Ideal)+len(set.Strict) == 0 {
			return nil, fmt.Errorf("%s: %w", asana, ErrNoExemplars)
		}

		normalized := ReferenceSet{
			Ideal:  make([]LandmarkSet, 0, len(set.Ideal)),
			Strict: make([]LandmarkSet, 0, len(set.Strict)),
		}
		for i, ex := range set.Ideal {
			if err := ex.Validate(); err != nil {
				return nil, fmt.Errorf("%s ideal exemplar %d: %w", asana, i, err)
			}
			normalized.Ideal = append(normalized.Ideal, NormalizeLandmarks(ex, LandmarkNose))
		}
		for i, ex := range set.Strict {
			if err := ex.Validate(); err != nil {
				return nil, fmt.Errorf("%s strict exemplar %d: %w", asana, i, err)
			}
			normalized.Strict = append(normalized.Strict, NormalizeLandmarks(ex, LandmarkNose))
		}
		refs[asana] = normalized
	}

	return refs, nil
}

func LoadReferencesFile(path string) (References, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open references file: %w", err)
	}
	defer f.Close()

	return LoadReferences(f)
}

// Asanas returns the poses that have reference data, in sequence order.
func (r References) Asanas() []Asana {
	var out []Asana
	for _, a := range Asanas {
		if _, ok := r[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

package pose

import (
	"fmt"
	"math"
)

// Direction tells which way a joint angle has to move to reach the
// reference angle.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Deviation describes a joint whose angle is off by more than the tolerance.
// Difference is ReferenceAngle - ObservedAngle, so a positive difference
// means the observed angle has to grow.
type Deviation struct {
	Joint          JointID   `json:"joint"`
	Difference     float64   `json:"difference"`
	ReferenceAngle float64   `json:"referenceAngle"`
	ObservedAngle  float64   `json:"observedAngle"`
	Direction      Direction `json:"direction"`
}

// DeviationReport holds only the joints outside tolerance. A joint missing
// from the report is within tolerance.
type DeviationReport map[JointID]Deviation

// Similarity is the outcome of the coarse exemplar gate.
type Similarity struct {
	Matched bool `json:"matched"`
	// Distance is the mean landmark distance to Closest.
	Distance float64     `json:"distance"`
	Closest  LandmarkSet `json:"closest"`
}

// Evaluation is the outcome of the full two-tier check.
type Evaluation struct {
	Asana      Asana           `json:"asana"`
	Similarity Similarity      `json:"similarity"`
	Deviations DeviationReport `json:"deviations,omitempty"`
}

// Correct reports whether the pose matched and every checked joint is
// within tolerance.
func (e Evaluation) Correct() bool {
	return e.Similarity.Matched && len(e.Deviations) == 0
}

// Thresholds configures Scorer.Evaluate.
type Thresholds struct {
	// Similarity is the mean landmark distance below which a frame counts
	// as the target pose.
	Similarity float64
	// Angle is the tolerated joint angle difference, in degrees.
	Angle float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Similarity: 0.1,
		Angle:      15,
	}
}

// Scorer evaluates captured frames against reference exemplars. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	refs References
}

func NewScorer(refs References) *Scorer {
	return &Scorer{
		refs: refs,
	}
}

func (s *Scorer) References() References {
	return s.refs
}

// IsSimilar scans every exemplar of the pose and returns the closest one.
// The frame matches when the closest exemplar is nearer than threshold.
func (s *Scorer) IsSimilar(asana Asana, observed LandmarkSet, threshold float64) (Similarity, error) {
	set, ok := s.refs[asana]
	if !ok {
		return Similarity{}, fmt.Errorf("%w: %q", ErrUnknownPose, asana)
	}

	exemplars := set.Exemplars()
	if len(exemplars) == 0 {
		return Similarity{}, fmt.Errorf("%s: %w", asana, ErrNoExemplars)
	}

	best := Similarity{Distance: math.Inf(1)}
	for i, ex := range exemplars {
		dist, err := CompareLandmarkSets(ex, observed)
		if err != nil {
			return Similarity{}, fmt.Errorf("%s exemplar %d: %w", asana, i, err)
		}
		if dist < best.Distance {
			best.Distance = dist
			best.Closest = ex
		}
	}
	best.Matched = best.Distance < threshold

	return best, nil
}

// WrongJoints compares every joint registered for the pose between the
// reference and observed frames and reports the ones whose angle differs by
// more than threshold degrees.
func (s *Scorer) WrongJoints(asana Asana, reference, observed LandmarkSet, threshold float64) (DeviationReport, error) {
	jointIDs, ok := JointsFor(asana)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPose, asana)
	}
	if err := reference.Validate(); err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	if err := observed.Validate(); err != nil {
		return nil, fmt.Errorf("observed: %w", err)
	}

	report := make(DeviationReport)
	for _, id := range jointIDs {
		joint := joints[id]

		refAngle, err := joint.Angle(reference)
		if err != nil {
			return nil, &JointError{Joint: id, Err: err}
		}
		obsAngle, err := joint.Angle(observed)
		if err != nil {
			return nil, &JointError{Joint: id, Observed: true, Err: err}
		}

		diff := refAngle - obsAngle
		if math.Abs(diff) <= threshold {
			continue
		}

		direction := DirectionDecrease
		if diff > 0 {
			direction = DirectionIncrease
		}
		report[id] = Deviation{
			Joint:          id,
			Difference:     diff,
			ReferenceAngle: refAngle,
			ObservedAngle:  obsAngle,
			Direction:      direction,
		}
	}

	return report, nil
}

// Evaluate runs the two-tier check on a raw captured frame: the frame is
// normalized on the nose, gated against the pose exemplars, and only when
// it matches are its joint angles audited against the closest exemplar.
func (s *Scorer) Evaluate(asana Asana, captured LandmarkSet, th Thresholds) (*Evaluation, error) {
	if err := captured.Validate(); err != nil {
		return nil, err
	}

	observed := NormalizeLandmarks(captured, LandmarkNose)
	similarity, err := s.IsSimilar(asana, observed, th.Similarity)
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{
		Asana:      asana,
		Similarity: similarity,
	}
	if !similarity.Matched {
		return eval, nil
	}

	eval.Deviations, err = s.WrongJoints(asana, similarity.Closest, observed, th.Angle)
	if err != nil {
		return nil, err
	}

	return eval, nil
}

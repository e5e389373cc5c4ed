package pose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

// SkeletonSize is the number of landmarks produced per frame by the
// BlazePose body model.
const SkeletonSize = 33

// Landmark is a single tracked 2-D body point, usually in normalized
// image coordinates ([0, 1] on both axes).
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (l Landmark) vec() r2.Vec {
	return r2.Vec{X: l.X, Y: l.Y}
}

// IsFinite reports whether both coordinates are real numbers.
func (l Landmark) IsFinite() bool {
	return !math.IsNaN(l.X) && !math.IsNaN(l.Y) &&
		!math.IsInf(l.X, 0) && !math.IsInf(l.Y, 0)
}

// LandmarkSet is an ordered landmark sequence for one frame. Index i always
// refers to the same anatomical point, see LandmarkIndex.
type LandmarkSet []Landmark

// Validate checks that the set has the full skeleton and only finite points.
func (s LandmarkSet) Validate() error {
	if len(s) != SkeletonSize {
		return fmt.Errorf("%w: got %d landmarks, want %d", ErrLengthMismatch, len(s), SkeletonSize)
	}
	for i, l := range s {
		if !l.IsFinite() {
			return fmt.Errorf("%w: landmark %d (%s)", ErrInvalidLandmark, i, LandmarkIndex(i))
		}
	}
	return nil
}

// At returns the landmark at the given anatomical index.
func (s LandmarkSet) At(idx LandmarkIndex) Landmark {
	return s[idx]
}

// Clone returns a copy that does not share the backing array.
func (s LandmarkSet) Clone() LandmarkSet {
	if s == nil {
		return nil
	}
	c := make(LandmarkSet, len(s))
	copy(c, s)
	return c
}

// NormalizeLandmarks translates every landmark so that the landmark at ref
// becomes the origin. The result is a new set, the input is not modified.
// ref must be a valid index into set.
func NormalizeLandmarks(set LandmarkSet, ref LandmarkIndex) LandmarkSet {
	origin := set[ref].vec()
	normalized := make(LandmarkSet, len(set))
	for i, l := range set {
		v := r2.Sub(l.vec(), origin)
		normalized[i] = Landmark{X: v.X, Y: v.Y}
	}
	return normalized
}

// EuclideanDistance returns the 2-D distance between two landmarks.
func EuclideanDistance(p1, p2 Landmark) float64 {
	return r2.Norm(r2.Sub(p1.vec(), p2.vec()))
}

// CompareLandmarkSets returns the mean pairwise distance between
// corresponding points of a and b. Lower is more similar. The metric is
// scale sensitive, so both sets should be normalized the same way first.
func CompareLandmarkSets(a, b LandmarkSet) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d landmarks", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, ErrEmptyLandmarkSet
	}

	distances := make([]float64, len(a))
	for i := range a {
		distances[i] = EuclideanDistance(a[i], b[i])
	}
	return stat.Mean(distances, nil), nil
}

package pose

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPose      = errors.New("unknown pose")
	ErrLengthMismatch   = errors.New("landmark length mismatch")
	ErrEmptyLandmarkSet = errors.New("empty landmark set")
	ErrInvalidLandmark  = errors.New("invalid landmark")
	ErrDegenerateJoint  = errors.New("degenerate joint")
	ErrNoExemplars      = errors.New("no reference exemplars")
)

// JointError ties a scoring failure to the joint it happened on.
type JointError struct {
	Joint JointID
	// Observed is true when the failing landmarks came from the captured
	// frame, false when they came from the reference exemplar.
	Observed bool
	Err      error
}

func (e *JointError) Error() string {
	side := "reference"
	if e.Observed {
		side = "observed"
	}
	return fmt.Sprintf("joint %s (%s): %s", e.Joint, side, e.Err)
}

func (e *JointError) Unwrap() error {
	return e.Err
}

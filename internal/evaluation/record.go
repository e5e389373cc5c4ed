package evaluation

import (
	"errors"
	"time"

	"github.com/2beens/posecheck/internal/pose"
)

var ErrNotDue = errors.New("posture check not due yet")

// Record is one stored posture check of a session.
type Record struct {
	ID         int                  `json:"id"`
	SessionID  string               `json:"sessionId"`
	Asana      pose.Asana           `json:"asana"`
	Matched    bool                 `json:"matched"`
	Distance   float64              `json:"distance"`
	Deviations pose.DeviationReport `json:"deviations,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
}

type ListParams struct {
	SessionID string
	Page      int
	Size      int
}

type ListResponse struct {
	Evaluations []Record `json:"evaluations"`
	Total       int      `json:"total"`
}

// Stats aggregates the stored evaluations of one session.
type Stats struct {
	SessionID   string               `json:"sessionId"`
	Total       int                  `json:"total"`
	Matched     int                  `json:"matched"`
	Correct     int                  `json:"correct"`
	MatchRate   float64              `json:"matchRate"`
	JointCounts map[pose.JointID]int `json:"jointCounts"`
	// per pose, how many checks were done in it
	AsanaCounts map[pose.Asana]int `json:"asanaCounts"`
	First       *time.Time         `json:"first,omitempty"`
	Last        *time.Time         `json:"last,omitempty"`
}

// Result is what a single frame evaluation produces.
type Result struct {
	SessionID  string          `json:"sessionId"`
	Evaluation pose.Evaluation `json:"evaluation"`
	Messages   []string        `json:"messages"`
}

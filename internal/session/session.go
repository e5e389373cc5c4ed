package session

import (
	"errors"
	"time"

	"github.com/2beens/posecheck/internal/pose"
)

var ErrSessionNotFound = errors.New("session not found")

// Session carries the per-client state of a practice run: which pose the
// client is currently holding. It replaces process-wide "current pose"
// globals, so several clients can practice different poses at once.
type Session struct {
	ID        string     `json:"id"`
	Asana     pose.Asana `json:"asana"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

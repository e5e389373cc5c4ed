package feedback

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Speaker turns a feedback message into something the practitioner hears.
type Speaker interface {
	Say(ctx context.Context, text string) error
}

// LogSpeaker only logs what would be said. Used when no audio output is
// attached to the service.
type LogSpeaker struct{}

func (LogSpeaker) Say(_ context.Context, text string) error {
	log.WithField("speech", text).Info("feedback")
	return nil
}

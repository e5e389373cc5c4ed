package evaluation

import (
	"fmt"

	"github.com/2beens/posecheck/internal/pose"
)

const (
	MessageCorrectPosture = "Please correct the posture."
	MessageAllRight       = "You're doing it absolutely right."
)

// FeedbackMessages turns an evaluation into the sentences spoken to the
// practitioner. Deviations come in the order the pose lists its joints.
func FeedbackMessages(eval *pose.Evaluation) []string {
	if !eval.Similarity.Matched {
		return []string{MessageCorrectPosture}
	}
	if len(eval.Deviations) == 0 {
		return []string{MessageAllRight}
	}

	joints, _ := pose.JointsFor(eval.Asana)
	messages := make([]string, 0, len(eval.Deviations))
	for _, joint := range joints {
		dev, ok := eval.Deviations[joint]
		if !ok {
			continue
		}
		messages = append(messages, fmt.Sprintf("%s angle at %s.", dev.Direction, joint.Spoken()))
	}
	return messages
}

package evaluation

import (
	"github.com/2beens/posecheck/internal/pose"
)

// Analyze aggregates the records of a single session.
func Analyze(sessionID string, records []Record) *Stats {
	stats := &Stats{
		SessionID:   sessionID,
		JointCounts: make(map[pose.JointID]int),
		AsanaCounts: make(map[pose.Asana]int),
	}

	for i := range records {
		rec := &records[i]
		stats.Total++
		stats.AsanaCounts[rec.Asana]++

		if rec.Matched {
			stats.Matched++
			if len(rec.Deviations) == 0 {
				stats.Correct++
			}
		}
		for joint := range rec.Deviations {
			stats.JointCounts[joint]++
		}

		if stats.First == nil || rec.CreatedAt.Before(*stats.First) {
			first := rec.CreatedAt
			stats.First = &first
		}
		if stats.Last == nil || rec.CreatedAt.After(*stats.Last) {
			last := rec.CreatedAt
			stats.Last = &last
		}
	}

	if stats.Total > 0 {
		stats.MatchRate = float64(stats.Matched) / float64(stats.Total)
	}
	return stats
}

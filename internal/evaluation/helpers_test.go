package evaluation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2beens/posecheck/internal/pose"
)

// standingSkeleton has both elbows bent at 90 degrees and straight legs.
func standingSkeleton() pose.LandmarkSet {
	return pose.LandmarkSet{
		{X: 0.50, Y: 0.15}, // nose
		{X: 0.51, Y: 0.13},
		{X: 0.52, Y: 0.13},
		{X: 0.53, Y: 0.13},
		{X: 0.49, Y: 0.13},
		{X: 0.48, Y: 0.13},
		{X: 0.47, Y: 0.13},
		{X: 0.55, Y: 0.14},
		{X: 0.45, Y: 0.14},
		{X: 0.52, Y: 0.18},
		{X: 0.48, Y: 0.18},
		{X: 0.60, Y: 0.25}, // left shoulder
		{X: 0.40, Y: 0.25}, // right shoulder
		{X: 0.70, Y: 0.25}, // left elbow
		{X: 0.30, Y: 0.25}, // right elbow
		{X: 0.70, Y: 0.15}, // left wrist
		{X: 0.30, Y: 0.15}, // right wrist
		{X: 0.71, Y: 0.13},
		{X: 0.29, Y: 0.13},
		{X: 0.70, Y: 0.12},
		{X: 0.30, Y: 0.12},
		{X: 0.69, Y: 0.13},
		{X: 0.31, Y: 0.13},
		{X: 0.57, Y: 0.50}, // left hip
		{X: 0.43, Y: 0.50}, // right hip
		{X: 0.57, Y: 0.70}, // left knee
		{X: 0.43, Y: 0.70}, // right knee
		{X: 0.57, Y: 0.90}, // left ankle
		{X: 0.43, Y: 0.90}, // right ankle
		{X: 0.56, Y: 0.92},
		{X: 0.44, Y: 0.92},
		{X: 0.60, Y: 0.93},
		{X: 0.40, Y: 0.93},
	}
}

// straightLeftArm stretches the left elbow to 180 degrees.
func straightLeftArm() pose.LandmarkSet {
	set := standingSkeleton()
	set[pose.LandmarkLeftWrist] = pose.Landmark{X: 0.80, Y: 0.25}
	return set
}

// upsideDown mirrors the skeleton vertically, far from any standing exemplar.
func upsideDown() pose.LandmarkSet {
	set := standingSkeleton()
	for i := range set {
		set[i].Y = 1 - set[i].Y*3
	}
	return set
}

func testScorer(t *testing.T) *pose.Scorer {
	t.Helper()
	ideal := pose.NormalizeLandmarks(standingSkeleton(), pose.LandmarkNose)
	require.NoError(t, ideal.Validate())
	return pose.NewScorer(pose.References{
		pose.AsanaPranamasana: {Ideal: []pose.LandmarkSet{ideal}},
	})
}

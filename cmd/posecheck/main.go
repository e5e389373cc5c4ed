package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/posecheck/internal/evaluation"
	"github.com/2beens/posecheck/internal/logging"
	"github.com/2beens/posecheck/internal/pose"
)

func main() {
	refsPath := flag.String("refs", "./assets/reference_landmarks.json", "path for the reference landmarks JSON file")
	asana := flag.String("asana", "", "target pose, e.g. pranamasana")
	landmarksPath := flag.String("landmarks", "", "path for a JSON file with one captured frame: {\"landmarks\":[{\"x\":..,\"y\":..}, ...]}")
	similarity := flag.Float64("similarity", pose.DefaultThresholds().Similarity, "mean landmark distance below which the frame counts as the target pose")
	angle := flag.Float64("angle", pose.DefaultThresholds().Angle, "tolerated joint angle difference, in degrees")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogLevel: *logLevel,
	})
	// stdout carries the result
	log.SetOutput(os.Stderr)

	if *asana == "" || *landmarksPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	refs, err := pose.LoadReferencesFile(*refsPath)
	if err != nil {
		log.Fatalf("load references: %s", err)
	}

	frame, err := readFrame(*landmarksPath)
	if err != nil {
		log.Fatalf("read frame: %s", err)
	}

	scorer := pose.NewScorer(refs)
	eval, err := scorer.Evaluate(pose.Asana(*asana), frame.Landmarks, pose.Thresholds{
		Similarity: *similarity,
		Angle:      *angle,
	})
	if err != nil {
		log.Fatalf("evaluate %s: %s", *asana, err)
	}

	out, err := json.MarshalIndent(evaluation.ScoreResponse{
		Evaluation: eval,
		Messages:   evaluation.FeedbackMessages(eval),
	}, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %s", err)
	}
	fmt.Println(string(out))

	if !eval.Correct() {
		os.Exit(1)
	}
}

func readFrame(path string) (*evaluation.FrameRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frame evaluation.FrameRequest
	if err := json.NewDecoder(f).Decode(&frame); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &frame, nil
}

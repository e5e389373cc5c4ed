package evaluation

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/session"
	"github.com/2beens/posecheck/internal/telemetry/metrics"
	"github.com/2beens/posecheck/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=evaluation_test

type sessionStore interface {
	Create(ctx context.Context, asana pose.Asana) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	SetAsana(ctx context.Context, id string, asana pose.Asana) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

type checkCadence interface {
	Due(ctx context.Context, sessionID string) (bool, time.Duration, error)
	Reset(ctx context.Context, sessionID string) error
}

type feedbackNotifier interface {
	Notify(sessionID string, texts ...string) int
	Forget(sessionID string)
}

type historyRepo interface {
	Add(ctx context.Context, record Record) (*Record, error)
	List(ctx context.Context, params ListParams) (_ []Record, total int, err error)
	Stats(ctx context.Context, sessionID string) (*Stats, error)
}

const (
	outcomeCorrect    = "correct"
	outcomeDeviations = "deviations"
	outcomeNotMatched = "not_matched"
)

type NewServiceParams struct {
	Scorer         *pose.Scorer
	Thresholds     pose.Thresholds
	Sessions       sessionStore
	Cadence        checkCadence
	Notifier       feedbackNotifier
	Repo           historyRepo
	MetricsManager *metrics.Manager
}

// Service runs the posture check of practice sessions: it scores frames at
// the session cadence, announces the outcome and keeps the history.
type Service struct {
	scorer         *pose.Scorer
	thresholds     pose.Thresholds
	sessions       sessionStore
	cadence        checkCadence
	notifier       feedbackNotifier
	repo           historyRepo
	metricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		scorer:         params.Scorer,
		thresholds:     params.Thresholds,
		sessions:       params.Sessions,
		cadence:        params.Cadence,
		notifier:       params.Notifier,
		repo:           params.Repo,
		metricsManager: params.MetricsManager,
	}
}

func (s *Service) Thresholds() pose.Thresholds {
	return s.thresholds
}

func (s *Service) References() pose.References {
	return s.scorer.References()
}

func (s *Service) CreateSession(ctx context.Context, asana pose.Asana) (*session.Session, error) {
	if _, ok := s.scorer.References()[asana]; !ok {
		return nil, fmt.Errorf("%w: no reference data for %s", pose.ErrUnknownPose, asana)
	}
	return s.sessions.Create(ctx, asana)
}

func (s *Service) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return s.sessions.Get(ctx, id)
}

func (s *Service) SetSessionAsana(ctx context.Context, id string, asana pose.Asana) (*session.Session, error) {
	if _, ok := s.scorer.References()[asana]; !ok {
		return nil, fmt.Errorf("%w: no reference data for %s", pose.ErrUnknownPose, asana)
	}
	sess, err := s.sessions.SetAsana(ctx, id, asana)
	if err != nil {
		return nil, err
	}
	// the next frame in the new pose is checked right away
	if err := s.cadence.Reset(ctx, id); err != nil {
		log.Warnf("session %s: %s", id, err)
	}
	return sess, nil
}

func (s *Service) EndSession(ctx context.Context, id string) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cadence.Reset(ctx, id); err != nil {
		log.Warnf("session %s: %s", id, err)
	}
	s.notifier.Forget(id)
	return nil
}

// EvaluateFrame checks one captured frame of a session. Frames arriving
// before the session's next check is due are rejected with ErrNotDue.
func (s *Service) EvaluateFrame(ctx context.Context, sessionID string, landmarks pose.LandmarkSet) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.evaluation.frame")
	defer func() {
		// a skipped frame is not a failure
		if errors.Is(err, ErrNotDue) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session", sessionID))

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("asana", string(sess.Asana)))

	// a malformed frame must not use up the session's slot
	if err := landmarks.Validate(); err != nil {
		return nil, err
	}

	due, _, err := s.cadence.Due(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !due {
		s.metricsManager.CounterFramesSkipped.Inc()
		return nil, ErrNotDue
	}

	start := time.Now()
	eval, err := s.scorer.Evaluate(sess.Asana, landmarks, s.thresholds)
	s.metricsManager.HistEvaluationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	s.recordOutcome(eval)

	messages := FeedbackMessages(eval)
	if accepted := s.notifier.Notify(sessionID, messages...); accepted < len(messages) {
		log.Debugf("session %s: %d of %d feedback messages dropped", sessionID, len(messages)-accepted, len(messages))
	}

	if _, err := s.repo.Add(ctx, Record{
		SessionID:  sessionID,
		Asana:      eval.Asana,
		Matched:    eval.Similarity.Matched,
		Distance:   eval.Similarity.Distance,
		Deviations: eval.Deviations,
		CreatedAt:  time.Now().UTC(),
	}); err != nil {
		// history is best effort
		log.Errorf("session %s: store evaluation: %s", sessionID, err)
		s.metricsManager.CounterHistoryWriteErrors.Inc()
	}

	return &Result{
		SessionID:  sessionID,
		Evaluation: *eval,
		Messages:   messages,
	}, nil
}

// Score runs the two-tier check on its own, outside of any session.
func (s *Service) Score(asana pose.Asana, landmarks pose.LandmarkSet) (*pose.Evaluation, error) {
	return s.scorer.Evaluate(asana, landmarks, s.thresholds)
}

// Similarity runs only the exemplar gate. The captured landmarks are
// normalized on the nose first, like in a full check.
func (s *Service) Similarity(asana pose.Asana, landmarks pose.LandmarkSet, threshold float64) (pose.Similarity, error) {
	if err := landmarks.Validate(); err != nil {
		return pose.Similarity{}, err
	}
	if threshold <= 0 {
		threshold = s.thresholds.Similarity
	}
	observed := pose.NormalizeLandmarks(landmarks, pose.LandmarkNose)
	return s.scorer.IsSimilar(asana, observed, threshold)
}

func (s *Service) Deviations(asana pose.Asana, reference, landmarks pose.LandmarkSet, threshold float64) (pose.DeviationReport, error) {
	if threshold <= 0 {
		threshold = s.thresholds.Angle
	}
	return s.scorer.WrongJoints(asana, reference, landmarks, threshold)
}

func (s *Service) History(ctx context.Context, params ListParams) ([]Record, int, error) {
	records, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list evaluations: %w", err)
	}
	return records, total, nil
}

func (s *Service) Stats(ctx context.Context, sessionID string) (*Stats, error) {
	stats, err := s.repo.Stats(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("evaluation stats: %w", err)
	}
	return stats, nil
}

func (s *Service) recordOutcome(eval *pose.Evaluation) {
	outcome := outcomeCorrect
	switch {
	case !eval.Similarity.Matched:
		outcome = outcomeNotMatched
	case len(eval.Deviations) > 0:
		outcome = outcomeDeviations
	}
	s.metricsManager.CounterEvaluations.WithLabelValues(string(eval.Asana), outcome).Inc()

	for joint := range eval.Deviations {
		s.metricsManager.CounterJointDeviations.WithLabelValues(string(joint)).Inc()
	}
}

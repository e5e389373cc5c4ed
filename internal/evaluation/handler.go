package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/session"
	"github.com/2beens/posecheck/internal/telemetry/tracing"
	"github.com/2beens/posecheck/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=evaluation_test

type evaluationService interface {
	References() pose.References
	CreateSession(ctx context.Context, asana pose.Asana) (*session.Session, error)
	GetSession(ctx context.Context, id string) (*session.Session, error)
	SetSessionAsana(ctx context.Context, id string, asana pose.Asana) (*session.Session, error)
	EndSession(ctx context.Context, id string) error
	EvaluateFrame(ctx context.Context, sessionID string, landmarks pose.LandmarkSet) (*Result, error)
	Score(asana pose.Asana, landmarks pose.LandmarkSet) (*pose.Evaluation, error)
	Similarity(asana pose.Asana, landmarks pose.LandmarkSet, threshold float64) (pose.Similarity, error)
	Deviations(asana pose.Asana, reference, landmarks pose.LandmarkSet, threshold float64) (pose.DeviationReport, error)
	History(ctx context.Context, params ListParams) ([]Record, int, error)
	Stats(ctx context.Context, sessionID string) (*Stats, error)
}

type PoseInfo struct {
	Asana     pose.Asana     `json:"asana"`
	Joints    []pose.JointID `json:"joints"`
	Exemplars int            `json:"exemplars"`
}

type FrameRequest struct {
	Landmarks pose.LandmarkSet `json:"landmarks"`
}

type SimilarityRequest struct {
	Landmarks pose.LandmarkSet `json:"landmarks"`
	Threshold float64          `json:"threshold"`
}

type DeviationsRequest struct {
	Reference pose.LandmarkSet `json:"reference"`
	Landmarks pose.LandmarkSet `json:"landmarks"`
	Threshold float64          `json:"threshold"`
}

type SessionRequest struct {
	Asana pose.Asana `json:"asana"`
}

type ScoreResponse struct {
	Evaluation *pose.Evaluation `json:"evaluation"`
	Messages   []string         `json:"messages"`
}

type SkippedResponse struct {
	Skipped bool `json:"skipped"`
}

type DeletedResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service evaluationService
}

func NewHandler(service evaluationService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/poses", handler.HandleListPoses).Methods("GET", "OPTIONS").Name("list-poses")
	r.HandleFunc("/poses/{asana}/score", handler.HandleScore).Methods("POST", "OPTIONS").Name("score-pose")
	r.HandleFunc("/poses/{asana}/similarity", handler.HandleSimilarity).Methods("POST", "OPTIONS").Name("pose-similarity")
	r.HandleFunc("/poses/{asana}/deviations", handler.HandleDeviations).Methods("POST", "OPTIONS").Name("pose-deviations")

	r.HandleFunc("/sessions", handler.HandleCreateSession).Methods("POST", "OPTIONS").Name("new-session")
	r.HandleFunc("/sessions/{id}", handler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/{id}/asana", handler.HandleSetAsana).Methods("PUT", "OPTIONS").Name("set-session-asana")
	r.HandleFunc("/sessions/{id}", handler.HandleEndSession).Methods("DELETE", "OPTIONS").Name("end-session")
	r.HandleFunc("/sessions/{id}/frames", handler.HandleFrame).Methods("POST", "OPTIONS").Name("session-frame")
	r.HandleFunc("/sessions/{id}/evaluations/page/{page}/size/{size}", handler.HandleHistory).Methods("GET", "OPTIONS").Name("session-history")
	r.HandleFunc("/sessions/{id}/stats", handler.HandleStats).Methods("GET", "OPTIONS").Name("session-stats")
}

func (handler *Handler) HandleListPoses(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.poses.list")
	defer span.End()

	refs := handler.service.References()
	poses := make([]PoseInfo, 0, len(refs))
	for _, asana := range refs.Asanas() {
		joints, _ := pose.JointsFor(asana)
		poses = append(poses, PoseInfo{
			Asana:     asana,
			Joints:    joints,
			Exemplars: len(refs[asana].Exemplars()),
		})
	}

	writeJSON(w, poses, http.StatusOK)
}

func (handler *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.poses.score")
	defer span.End()

	asana := pose.Asana(mux.Vars(r)["asana"])
	span.SetAttributes(attribute.String("asana", string(asana)))

	var req FrameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	eval, err := handler.service.Score(asana, req.Landmarks)
	if err != nil {
		writeError(w, "score pose", err)
		return
	}

	writeJSON(w, ScoreResponse{
		Evaluation: eval,
		Messages:   FeedbackMessages(eval),
	}, http.StatusOK)
}

func (handler *Handler) HandleSimilarity(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.poses.similarity")
	defer span.End()

	asana := pose.Asana(mux.Vars(r)["asana"])
	span.SetAttributes(attribute.String("asana", string(asana)))

	var req SimilarityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Threshold < 0 {
		http.Error(w, "error, threshold must not be negative", http.StatusBadRequest)
		return
	}

	sim, err := handler.service.Similarity(asana, req.Landmarks, req.Threshold)
	if err != nil {
		writeError(w, "pose similarity", err)
		return
	}

	writeJSON(w, sim, http.StatusOK)
}

func (handler *Handler) HandleDeviations(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.poses.deviations")
	defer span.End()

	asana := pose.Asana(mux.Vars(r)["asana"])
	span.SetAttributes(attribute.String("asana", string(asana)))

	var req DeviationsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Threshold < 0 {
		http.Error(w, "error, threshold must not be negative", http.StatusBadRequest)
		return
	}

	report, err := handler.service.Deviations(asana, req.Reference, req.Landmarks, req.Threshold)
	if err != nil {
		writeError(w, "pose deviations", err)
		return
	}

	writeJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.new")
	defer span.End()

	var req SessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Asana == "" {
		http.Error(w, "error, asana empty", http.StatusBadRequest)
		return
	}

	sess, err := handler.service.CreateSession(ctx, req.Asana)
	if err != nil {
		writeError(w, "create session", err)
		return
	}

	log.Debugf("new session %s: %s", sess.ID, sess.Asana)
	writeJSON(w, sess, http.StatusCreated)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("session", id))

	sess, err := handler.service.GetSession(ctx, id)
	if err != nil {
		writeError(w, "get session", err)
		return
	}

	writeJSON(w, sess, http.StatusOK)
}

func (handler *Handler) HandleSetAsana(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.setasana")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("session", id))

	var req SessionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Asana == "" {
		http.Error(w, "error, asana empty", http.StatusBadRequest)
		return
	}

	sess, err := handler.service.SetSessionAsana(ctx, id, req.Asana)
	if err != nil {
		writeError(w, "set session asana", err)
		return
	}

	writeJSON(w, sess, http.StatusOK)
}

func (handler *Handler) HandleEndSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("session", id))

	if err := handler.service.EndSession(ctx, id); err != nil {
		writeError(w, "end session", err)
		return
	}

	writeJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.frame")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("session", id))

	var req FrameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := handler.service.EvaluateFrame(ctx, id, req.Landmarks)
	if errors.Is(err, ErrNotDue) {
		writeJSON(w, SkippedResponse{Skipped: true}, http.StatusAccepted)
		return
	}
	if err != nil {
		writeError(w, "evaluate frame", err)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.history")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	span.SetAttributes(attribute.String("session", id))

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle session history, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle session history, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	records, total, err := handler.service.History(ctx, ListParams{
		SessionID: id,
		Page:      page,
		Size:      size,
	})
	if err != nil {
		writeError(w, "session history", err)
		return
	}

	writeJSON(w, ListResponse{
		Evaluations: records,
		Total:       total,
	}, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.stats")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("session", id))

	stats, err := handler.service.Stats(ctx, id)
	if err != nil {
		writeError(w, "session stats", err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json body: %s", err)
		http.Error(w, "error, invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}

func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		log.Debugf("%s: %s", op, err)
		http.Error(w, "session not found", http.StatusNotFound)
	case errors.Is(err, pose.ErrUnknownPose),
		errors.Is(err, pose.ErrLengthMismatch),
		errors.Is(err, pose.ErrInvalidLandmark),
		errors.Is(err, pose.ErrEmptyLandmarkSet),
		errors.Is(err, pose.ErrDegenerateJoint):
		log.Debugf("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/posecheck/internal/evaluation"
	"github.com/2beens/posecheck/internal/pose"
	"github.com/2beens/posecheck/internal/session"
)

func (s *IntegrationTestSuite) doJSON(
	ctx context.Context,
	method, path string,
	body any,
) *http.Response {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func decodeResponse[T any](s *IntegrationTestSuite, resp *http.Response) T {
	defer resp.Body.Close()
	var out T
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// idealFrame is the raw pranamasana exemplar from the shipped reference data.
func (s *IntegrationTestSuite) idealFrame() pose.LandmarkSet {
	raw, err := os.ReadFile(referencesPath)
	require.NoError(s.T(), err)

	var refs map[pose.Asana]pose.ReferenceSet
	require.NoError(s.T(), json.Unmarshal(raw, &refs))
	ideal := refs[pose.AsanaPranamasana].Ideal
	require.NotEmpty(s.T(), ideal)
	return ideal[0]
}

func (s *IntegrationTestSuite) TestListPoses() {
	ctx := context.Background()
	resp := s.doJSON(ctx, "GET", "/poses", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	poses := decodeResponse[[]evaluation.PoseInfo](s, resp)
	require.NotEmpty(s.T(), poses)
	assert.Equal(s.T(), pose.AsanaPranamasana, poses[0].Asana)
}

func (s *IntegrationTestSuite) TestScore() {
	ctx := context.Background()
	resp := s.doJSON(ctx, "POST", "/poses/pranamasana/score", evaluation.FrameRequest{
		Landmarks: s.idealFrame(),
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)

	scored := decodeResponse[evaluation.ScoreResponse](s, resp)
	require.NotNil(s.T(), scored.Evaluation)
	assert.True(s.T(), scored.Evaluation.Correct())
	assert.NotEmpty(s.T(), scored.Messages)

	resp = s.doJSON(ctx, "POST", "/poses/sirsasana/score", evaluation.FrameRequest{
		Landmarks: s.idealFrame(),
	})
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestSessionFlow() {
	ctx := context.Background()

	resp := s.doJSON(ctx, "POST", "/sessions", evaluation.SessionRequest{Asana: pose.AsanaPranamasana})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)
	sess := decodeResponse[session.Session](s, resp)
	require.NotEmpty(s.T(), sess.ID)

	resp = s.doJSON(ctx, "GET", "/sessions/"+sess.ID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	got := decodeResponse[session.Session](s, resp)
	assert.Equal(s.T(), pose.AsanaPranamasana, got.Asana)

	framePath := fmt.Sprintf("/sessions/%s/frames", sess.ID)
	resp = s.doJSON(ctx, "POST", framePath, evaluation.FrameRequest{Landmarks: s.idealFrame()})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	result := decodeResponse[evaluation.Result](s, resp)
	assert.Equal(s.T(), sess.ID, result.SessionID)
	assert.True(s.T(), result.Evaluation.Correct())

	// the next check is a minute away
	resp = s.doJSON(ctx, "POST", framePath, evaluation.FrameRequest{Landmarks: s.idealFrame()})
	require.Equal(s.T(), http.StatusAccepted, resp.StatusCode)
	skipped := decodeResponse[evaluation.SkippedResponse](s, resp)
	assert.True(s.T(), skipped.Skipped)

	resp = s.doJSON(ctx, "GET", fmt.Sprintf("/sessions/%s/evaluations/page/1/size/10", sess.ID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	history := decodeResponse[evaluation.ListResponse](s, resp)
	assert.Equal(s.T(), 1, history.Total)
	require.Len(s.T(), history.Evaluations, 1)
	assert.True(s.T(), history.Evaluations[0].Matched)

	resp = s.doJSON(ctx, "GET", fmt.Sprintf("/sessions/%s/stats", sess.ID), nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	stats := decodeResponse[evaluation.Stats](s, resp)
	assert.Equal(s.T(), 1, stats.Total)
	assert.Equal(s.T(), 1, stats.Correct)

	// pose change lets the next frame through right away
	resp = s.doJSON(ctx, "PUT", fmt.Sprintf("/sessions/%s/asana", sess.ID), evaluation.SessionRequest{Asana: pose.AsanaHastauttanasana})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	changed := decodeResponse[session.Session](s, resp)
	assert.Equal(s.T(), pose.AsanaHastauttanasana, changed.Asana)

	resp = s.doJSON(ctx, "POST", framePath, evaluation.FrameRequest{Landmarks: s.idealFrame()})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = s.doJSON(ctx, "DELETE", "/sessions/"+sess.ID, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	deleted := decodeResponse[evaluation.DeletedResponse](s, resp)
	assert.Equal(s.T(), sess.ID, deleted.DeletedID)

	resp = s.doJSON(ctx, "GET", "/sessions/"+sess.ID, nil)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusNotFound, resp.StatusCode)
}

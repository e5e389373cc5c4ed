package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/posecheck/internal/telemetry/tracing"
	"github.com/2beens/posecheck/pkg"
)

// HTTPSpeaker posts each message to an external text-to-speech endpoint as
// {"text": "..."}. Any 2xx response counts as spoken.
type HTTPSpeaker struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSpeaker(url string, httpClient *http.Client) *HTTPSpeaker {
	return &HTTPSpeaker{
		url:        url,
		httpClient: httpClient,
	}
}

type speechRequest struct {
	Text string `json:"text"`
}

func (s *HTTPSpeaker) Say(ctx context.Context, text string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "feedback.speaker.http")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	body, err := json.Marshal(speechRequest{Text: text})
	if err != nil {
		return fmt.Errorf("marshal speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new speech request: %w", err)
	}
	req.Header.Set("Content-Type", pkg.ContentType.JSON)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("speech request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("speech request: unexpected status %d", resp.StatusCode)
	}
	return nil
}

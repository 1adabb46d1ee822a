package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/rs/zerolog"
)

type RequestState string

const (
	RequestIdle    RequestState = "idle"
	RequestPending RequestState = "pending"
	RequestReady   RequestState = "ready"
	RequestFailed  RequestState = "failed"
)

// AnalysisSnapshot is a copy of the request lifecycle at one point in time.
type AnalysisSnapshot struct {
	State      RequestState
	Result     *domain.AnalysisResult
	Message    string
	Err        error
	ReceivedAt time.Time
}

// AnalysisClient drives one analysis request at a time against the service.
type AnalysisClient struct {
	service ports.AnalysisService
	clock   ports.Clock
	log     zerolog.Logger

	mu         sync.Mutex
	state      RequestState
	result     *domain.AnalysisResult
	message    string
	err        error
	receivedAt time.Time
}

func NewAnalysisClient(service ports.AnalysisService, clock ports.Clock, log zerolog.Logger) *AnalysisClient {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AnalysisClient{
		service: service,
		clock:   clock,
		log:     log.With().Str("component", "analysis").Logger(),
		state:   RequestIdle,
	}
}

// Submit sends the input for analysis. Empty input and a request already in
// flight are rejected before any network call. A failed request does not
// retry; calling Submit again is allowed.
func (c *AnalysisClient) Submit(ctx context.Context, userID string, input domain.SessionInput) (domain.AnalysisResult, error) {
	if !IsSubmittable(input) {
		c.log.Warn().Msg("rejected empty submission")
		return domain.AnalysisResult{}, domain.ErrEmptySubmission
	}

	c.mu.Lock()
	if c.state == RequestPending {
		c.mu.Unlock()
		c.log.Warn().Msg("rejected submission while another is pending")
		return domain.AnalysisResult{}, domain.ErrSubmissionPending
	}
	c.state = RequestPending
	c.message = ""
	c.err = nil
	c.mu.Unlock()

	c.log.Info().
		Str("user_id", userID).
		Interface("modalities", input.Modalities()).
		Int("audio_bytes", input.Audio.Size()).
		Int("image_bytes", input.Image.Size()).
		Msg("submitting session")

	result, err := c.service.Analyze(ctx, userID, input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = RequestFailed
		c.err = err
		c.message = failureMessage(err)
		c.log.Error().Err(err).Msg("analysis failed")
		return domain.AnalysisResult{}, fmt.Errorf("analyze session: %w", err)
	}

	c.state = RequestReady
	c.result = &result
	c.receivedAt = c.clock.Now()
	c.log.Info().
		Float64("wellbeing_score", result.WellbeingScore).
		Str("dominant_emotion", result.DominantEmotion).
		Float64("processing_time_ms", result.ProcessingTimeMS).
		Msg("analysis ready")

	return result, nil
}

func (c *AnalysisClient) Snapshot() AnalysisSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := AnalysisSnapshot{
		State:      c.state,
		Message:    c.message,
		Err:        c.err,
		ReceivedAt: c.receivedAt,
	}
	if c.result != nil {
		result := *c.result
		snapshot.Result = &result
	}

	return snapshot
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransportFailure):
		return "Failed to analyze. Make sure the analysis service is running."
	case errors.Is(err, domain.ErrMalformedResponse):
		return "The analysis service sent an unexpected response."
	case errors.Is(err, context.DeadlineExceeded):
		return "The analysis service did not answer in time."
	default:
		return "Failed to analyze: " + err.Error()
	}
}

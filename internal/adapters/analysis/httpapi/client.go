package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultBaseURL        = "http://127.0.0.1:8000"
	DefaultRequestTimeout = 2 * time.Minute

	analyzePath = "/analyze_session"
	historyPath = "/history"

	requestIDHeader  = "X-Request-ID"
	maxResponseBytes = 1 << 20
	maxErrorBytes    = 4 << 10
)

var validate = validator.New()

// Client talks to the analysis service over HTTP. Every request is bounded by
// RequestTimeout, or DefaultRequestTimeout when it is not positive.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	NewRequestID   func() string
}

var _ ports.AnalysisService = Client{}

type analysisResponse struct {
	UserID           string                `json:"user_id"`
	WellbeingScore   *float64              `json:"wellbeing_score" validate:"required"`
	DominantEmotion  *string               `json:"dominant_emotion" validate:"required"`
	Recommendation   *string               `json:"recommendation" validate:"required"`
	FusedEmotions    *domain.EmotionScores `json:"fused_emotions" validate:"required"`
	TextAnalysis     domain.EmotionScores  `json:"text_analysis"`
	AudioAnalysis    domain.EmotionScores  `json:"audio_analysis"`
	FaceAnalysis     json.RawMessage       `json:"face_analysis"`
	ProcessingTimeMS *float64              `json:"processing_time_ms" validate:"required,gte=0"`
}

type historyItem struct {
	ID              int64    `json:"id"`
	UserID          string   `json:"user_id"`
	Timestamp       *string  `json:"timestamp" validate:"required"`
	WellbeingScore  *float64 `json:"wellbeing_score" validate:"required"`
	DominantEmotion string   `json:"dominant_emotion"`
	Recommendation  string   `json:"recommendation"`
}

func (c Client) Analyze(ctx context.Context, userID string, input domain.SessionInput) (domain.AnalysisResult, error) {
	if !input.Submittable() {
		return domain.AnalysisResult{}, domain.ErrEmptySubmission
	}

	endpoint, err := buildAPIURL(c.BaseURL, analyzePath)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	body, contentType, err := encodeSession(userID, input)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, body)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	var payload analysisResponse
	if err := c.do(req, "analyze session", &payload); err != nil {
		return domain.AnalysisResult{}, err
	}
	if err := validate.Struct(payload); err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: analyze session: %w", domain.ErrMalformedResponse, err)
	}

	face, err := decodeFaceAnalysis(payload.FaceAnalysis)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: analyze session: %w", domain.ErrMalformedResponse, err)
	}

	result := domain.AnalysisResult{
		UserID:           payload.UserID,
		WellbeingScore:   *payload.WellbeingScore,
		DominantEmotion:  *payload.DominantEmotion,
		FusedEmotions:    *payload.FusedEmotions,
		Recommendation:   *payload.Recommendation,
		ProcessingTimeMS: *payload.ProcessingTimeMS,
		TextAnalysis:     payload.TextAnalysis,
		AudioAnalysis:    payload.AudioAnalysis,
		FaceAnalysis:     face,
	}
	if result.UserID == "" {
		result.UserID = userID
	}

	return result, nil
}

func (c Client) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	endpoint, err := buildAPIURL(c.BaseURL, historyPath)
	if err != nil {
		return nil, err
	}
	endpoint += "?" + url.Values{"user_id": []string{userID}}.Encode()

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create history request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var items []historyItem
	if err := c.do(req, "load history", &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("%w: load history: expected array", domain.ErrMalformedResponse)
	}

	entries := make([]domain.HistoryEntry, 0, len(items))
	for i, item := range items {
		if err := validate.Struct(item); err != nil {
			return nil, fmt.Errorf("%w: history entry %d: %w", domain.ErrMalformedResponse, i, err)
		}

		timestamp, err := parseTimestamp(*item.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: history entry %d: %w", domain.ErrMalformedResponse, i, err)
		}

		entries = append(entries, domain.HistoryEntry{
			Timestamp:       timestamp,
			WellbeingScore:  *item.WellbeingScore,
			DominantEmotion: item.DominantEmotion,
			Recommendation:  item.Recommendation,
		})
	}

	return entries, nil
}

func (c Client) do(req *http.Request, action string, out any) error {
	req.Header.Set(requestIDHeader, c.requestID())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrTransportFailure, action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return fmt.Errorf("%w: %s: status %d: %s", domain.ErrTransportFailure, action, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %w", domain.ErrTransportFailure, action, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrMalformedResponse, action, err)
	}

	return nil
}

func encodeSession(userID string, input domain.SessionInput) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("user_id", userID); err != nil {
		return nil, "", fmt.Errorf("encode user_id: %w", err)
	}
	if input.Text != "" {
		if err := writer.WriteField("text", input.Text); err != nil {
			return nil, "", fmt.Errorf("encode text: %w", err)
		}
	}
	if err := writeArtifact(writer, "audio_file", input.Audio, domain.RecordingFilename, domain.MediaTypeWAV); err != nil {
		return nil, "", err
	}
	if err := writeArtifact(writer, "image_file", input.Image, domain.CameraCaptureFilename, domain.MediaTypeJPEG); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

// writeArtifact skips empty artifacts. Live captures always use the
// canonical filename; uploads keep theirs when they have one.
func writeArtifact(writer *multipart.Writer, field string, artifact *domain.Artifact, filename string, mediaType string) error {
	if artifact.Empty() {
		return nil
	}

	if artifact.Source != domain.ModeLive && artifact.Filename != "" {
		filename = artifact.Filename
	}
	if artifact.MediaType != "" {
		mediaType = artifact.MediaType
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", mediaType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(artifact.Data); err != nil {
		return fmt.Errorf("write %s part: %w", field, err)
	}

	return nil
}

// decodeFaceAnalysis accepts a score object, a note string, or nothing.
func decodeFaceAnalysis(raw json.RawMessage) (domain.FaceAnalysis, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domain.FaceAnalysis{}, nil
	}

	switch trimmed[0] {
	case '"':
		var note string
		if err := json.Unmarshal(trimmed, &note); err != nil {
			return domain.FaceAnalysis{}, fmt.Errorf("face analysis: %w", err)
		}
		return domain.FaceAnalysis{Note: note}, nil
	case '{':
		var scores domain.EmotionScores
		if err := json.Unmarshal(trimmed, &scores); err != nil {
			return domain.FaceAnalysis{}, fmt.Errorf("face analysis: %w", err)
		}
		return domain.FaceAnalysis{Detected: len(scores) > 0, Scores: scores}, nil
	default:
		return domain.FaceAnalysis{}, errors.New("face analysis: expected object or string")
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseTimestamp reads RFC 3339 and the zone-less SQLite layout, which is UTC.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

func (c Client) requestID() string {
	if c.NewRequestID != nil {
		return c.NewRequestID()
	}
	return uuid.NewString()
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout())
}

func (c Client) timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.RequestTimeout
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return "", fmt.Errorf("parse backend url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("backend url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("backend url host is required")
	}

	return parsed.String() + path, nil
}

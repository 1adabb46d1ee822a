package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisBody = `{
	"user_id": "u1",
	"wellbeing_score": 72,
	"dominant_emotion": "joy",
	"recommendation": "Keep going",
	"fused_emotions": {"joy": 0.8, "sadness": 0.2},
	"text_analysis": {"joy": 0.8, "sadness": 0.2},
	"audio_analysis": null,
	"face_analysis": "No face detected",
	"processing_time_ms": 123.6
}`

func TestAnalyzeSendsTextOnlyMultipart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze_session", r.URL.Path)
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, map[string][]string{"user_id": {"u1"}, "text": {"I feel great"}}, map[string][]string(r.MultipartForm.Value))
		assert.Empty(t, r.MultipartForm.File)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(analysisBody))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, NewRequestID: func() string { return "req-1" }}
	result, err := client.Analyze(context.Background(), "u1", domain.SessionInput{Text: "I feel great"})
	require.NoError(t, err)

	assert.Equal(t, "u1", result.UserID)
	assert.Equal(t, 72.0, result.WellbeingScore)
	assert.Equal(t, "joy", result.DominantEmotion)
	assert.Equal(t, domain.EmotionScores{{Emotion: "joy", Probability: 0.8}, {Emotion: "sadness", Probability: 0.2}}, result.FusedEmotions)
	assert.Nil(t, result.AudioAnalysis)
	assert.Equal(t, domain.FaceAnalysis{Note: "No face detected"}, result.FaceAnalysis)
	assert.Equal(t, 123.6, result.ProcessingTimeMS)
}

func TestAnalyzeSendsArtifactsWithFilenamesAndMediaTypes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.NotContains(t, r.MultipartForm.Value, "text")

		audio := r.MultipartForm.File["audio_file"]
		if !assert.Len(t, audio, 1) {
			return
		}
		assert.Equal(t, "recording.wav", audio[0].Filename)
		assert.Equal(t, "audio/wav", audio[0].Header.Get("Content-Type"))

		image := r.MultipartForm.File["image_file"]
		if !assert.Len(t, image, 1) {
			return
		}
		assert.Equal(t, "selfie.png", image[0].Filename)
		assert.Equal(t, "image/png", image[0].Header.Get("Content-Type"))

		file, err := image[0].Open()
		if !assert.NoError(t, err) {
			return
		}
		defer func() { _ = file.Close() }()
		data, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

		_, _ = w.Write([]byte(analysisBody))
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL}
	_, err := client.Analyze(context.Background(), "u1", domain.SessionInput{
		Audio: &domain.Artifact{Modality: domain.ModalityAudio, Filename: "ignored.wav", Source: domain.ModeLive, Data: []byte("RIFF")},
		Image: &domain.Artifact{Modality: domain.ModalityImage, MediaType: "image/png", Filename: "selfie.png", Source: domain.ModeUpload, Data: []byte{0x89, 'P', 'N', 'G'}},
	})
	require.NoError(t, err)
}

func TestAnalyzeDecodesFaceScores(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"wellbeing_score":40,"dominant_emotion":"sad","recommendation":"Rest",
			"fused_emotions":{"sad":0.6},"face_analysis":{"sad":0.6,"happy":0.1},"processing_time_ms":0}`))
	}))
	defer server.Close()

	result, err := Client{BaseURL: server.URL}.Analyze(context.Background(), "u2", domain.SessionInput{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "u2", result.UserID)
	assert.True(t, result.FaceAnalysis.Detected)
	assert.Equal(t, domain.EmotionScores{{Emotion: "sad", Probability: 0.6}, {Emotion: "happy", Probability: 0.1}}, result.FaceAnalysis.Scores)
}

func TestAnalyzeRejectsEmptySubmissionWithoutRequest(t *testing.T) {
	t.Parallel()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer server.Close()

	_, err := Client{BaseURL: server.URL}.Analyze(context.Background(), "u1", domain.SessionInput{Audio: &domain.Artifact{}})
	assert.ErrorIs(t, err, domain.ErrEmptySubmission)
	assert.Zero(t, calls)
}

func TestAnalyzeClassifiesFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, want: domain.ErrTransportFailure},
		{name: "not found", status: http.StatusNotFound, body: ``, want: domain.ErrTransportFailure},
		{name: "not json", status: http.StatusOK, body: `<html>`, want: domain.ErrMalformedResponse},
		{name: "missing score", status: http.StatusOK, body: `{"dominant_emotion":"joy","recommendation":"r","fused_emotions":{},"processing_time_ms":1}`, want: domain.ErrMalformedResponse},
		{name: "negative latency", status: http.StatusOK, body: `{"wellbeing_score":1,"dominant_emotion":"joy","recommendation":"r","fused_emotions":{},"processing_time_ms":-1}`, want: domain.ErrMalformedResponse},
		{name: "duplicate emotion", status: http.StatusOK, body: `{"wellbeing_score":1,"dominant_emotion":"joy","recommendation":"r","fused_emotions":{"joy":0.1,"joy":0.2},"processing_time_ms":1}`, want: domain.ErrMalformedResponse},
		{name: "numeric face", status: http.StatusOK, body: `{"wellbeing_score":1,"dominant_emotion":"joy","recommendation":"r","fused_emotions":{},"face_analysis":3,"processing_time_ms":1}`, want: domain.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := Client{BaseURL: server.URL}.Analyze(context.Background(), "u1", domain.SessionInput{Text: "x"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalyzeUnreachableServiceIsTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := Client{BaseURL: baseURL, RequestTimeout: time.Second}.Analyze(context.Background(), "u1", domain.SessionInput{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrTransportFailure)
}

func TestAnalyzeSlowServiceTimesOut(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := Client{BaseURL: server.URL, RequestTimeout: 50 * time.Millisecond}
	_, err := client.Analyze(context.Background(), "u1", domain.SessionInput{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrTransportFailure)
}

func TestClientFallsBackToDefaultTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultRequestTimeout, Client{}.timeout())
	assert.Equal(t, DefaultRequestTimeout, Client{RequestTimeout: -time.Second}.timeout())
	assert.Equal(t, 3*time.Second, Client{RequestTimeout: 3 * time.Second}.timeout())

	ctx, cancel := Client{}.requestContext(context.Background())
	defer cancel()
	_, ok := ctx.Deadline()
	assert.True(t, ok)
}

func TestHistoryPreservesServiceOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/history", r.URL.Path)
		assert.Equal(t, "u 1", r.URL.Query().Get("user_id"))

		_, _ = w.Write([]byte(`[
			{"id":2,"user_id":"u 1","timestamp":"2026-01-02 10:00:00","wellbeing_score":60,"dominant_emotion":"joy","recommendation":"r2"},
			{"id":1,"user_id":"u 1","timestamp":"2026-01-01T09:00:00Z","wellbeing_score":40}
		]`))
	}))
	defer server.Close()

	entries, err := Client{BaseURL: server.URL + "/"}.History(context.Background(), "u 1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC), entries[0].Timestamp)
	assert.Equal(t, 60.0, entries[0].WellbeingScore)
	assert.Equal(t, "joy", entries[0].DominantEmotion)
	assert.Equal(t, time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), entries[1].Timestamp)
	assert.Equal(t, 40.0, entries[1].WellbeingScore)
}

func TestHistoryEmptyArray(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	entries, err := Client{BaseURL: server.URL}.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestHistoryRejectsMalformedEntries(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"object":        `{"id":1}`,
		"null":          `null`,
		"bad timestamp": `[{"timestamp":"yesterday","wellbeing_score":1}]`,
		"missing score": `[{"timestamp":"2026-01-01 00:00:00"}]`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			_, err := Client{BaseURL: server.URL}.History(context.Background(), "u1")
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	got, err := buildAPIURL("", analyzePath)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/analyze_session", got)

	got, err = buildAPIURL("https://wb.example/api/", historyPath)
	require.NoError(t, err)
	assert.Equal(t, "https://wb.example/api/history", got)

	_, err = buildAPIURL("ftp://wb.example", historyPath)
	assert.Error(t, err)
}

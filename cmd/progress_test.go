package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type steppedClock struct {
	times []time.Time
}

func (c *steppedClock) Now() time.Time {
	now := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return now
}

func TestSubmissionStepDescribesModalities(t *testing.T) {
	input := domain.SessionInput{
		Text:  "très bien",
		Audio: &domain.Artifact{Modality: domain.ModalityAudio, Data: make([]byte, 2048)},
	}

	step := submissionStep(input, 2*time.Minute)

	assert.Equal(t, "Analyzing session", step.label)
	assert.Equal(t, "text 9 chars, audio 2.0 kB", step.detail)
	assert.Equal(t, 2*time.Minute, step.budget)
}

func TestSubmissionStepImageOnly(t *testing.T) {
	input := domain.SessionInput{Image: &domain.Artifact{Modality: domain.ModalityImage, Data: make([]byte, 500)}}

	assert.Equal(t, "image 500 B", submissionStep(input, time.Second).detail)
}

func TestLiveCaptureStepLabels(t *testing.T) {
	assert.Equal(t, progressStep{label: "Recording audio", budget: 5 * time.Second}, liveCaptureStep(liveCapture{record: 5 * time.Second}))
	assert.Equal(t, "Recording audio and capturing photo", liveCaptureStep(liveCapture{record: time.Second, snap: true}).label)
	assert.Equal(t, progressStep{label: "Capturing photo", detail: "camera preview"}, liveCaptureStep(liveCapture{snap: true}))
}

func TestProgressViewShowsElapsedAgainstBudget(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	clock := &steppedClock{times: []time.Time{start, start.Add(3500 * time.Millisecond)}}
	step := progressStep{label: "Analyzing session", detail: "text 2 chars", budget: 2 * time.Minute}

	model := newProgressModel(step, clock, nil)
	updated, _ := model.Update(spinner.TickMsg{})
	view := updated.View()

	assert.Contains(t, view, "Analyzing session (text 2 chars)")
	assert.Contains(t, view, "3s / 2m0s")
}

func TestProgressViewWithoutBudgetShowsElapsedOnly(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	model := newProgressModel(progressStep{label: "Capturing photo"}, &steppedClock{times: []time.Time{start}}, nil)

	assert.Contains(t, model.View(), "Capturing photo  0s")
	assert.NotContains(t, model.View(), "/")
}

func TestProgressDoneKeepsTaskErrorAndQuits(t *testing.T) {
	start := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	model := newProgressModel(progressStep{label: "Recording audio"}, &steppedClock{times: []time.Time{start}}, nil)
	taskErr := errors.New("device busy")

	updated, cmd := model.Update(progressDoneMsg{err: taskErr})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	final, ok := updated.(progressModel)
	require.True(t, ok)
	assert.ErrorIs(t, final.err, taskErr)
	assert.Empty(t, final.View())
}

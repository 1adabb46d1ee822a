package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// progressStep is one blocking step shown on stderr while it runs. A zero
// budget shows elapsed time only.
type progressStep struct {
	label  string
	detail string
	budget time.Duration
}

// submissionStep names the modalities being sent and bounds the wait by the
// request timeout.
func submissionStep(input domain.SessionInput, timeout time.Duration) progressStep {
	parts := make([]string, 0, 3)
	for _, modality := range input.Modalities() {
		switch modality {
		case domain.ModalityText:
			parts = append(parts, fmt.Sprintf("text %d chars", utf8.RuneCountInString(input.Text)))
		case domain.ModalityAudio:
			parts = append(parts, "audio "+humanize.Bytes(uint64(input.Audio.Size())))
		case domain.ModalityImage:
			parts = append(parts, "image "+humanize.Bytes(uint64(input.Image.Size())))
		}
	}

	return progressStep{
		label:  "Analyzing session",
		detail: strings.Join(parts, ", "),
		budget: timeout,
	}
}

func liveCaptureStep(req liveCapture) progressStep {
	switch {
	case req.record > 0 && req.snap:
		return progressStep{label: "Recording audio and capturing photo", budget: req.record}
	case req.record > 0:
		return progressStep{label: "Recording audio", budget: req.record}
	default:
		return progressStep{label: "Capturing photo", detail: "camera preview"}
	}
}

type progressDoneMsg struct {
	err error
}

type progressModel struct {
	spinner spinner.Model
	step    progressStep
	clock   ports.Clock
	started time.Time
	now     time.Time
	task    tea.Cmd
	err     error
	done    bool
}

func newProgressModel(step progressStep, clock ports.Clock, task tea.Cmd) progressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
	)
	started := clock.Now()

	return progressModel{
		spinner: s,
		step:    step,
		clock:   clock,
		started: started,
		now:     started,
		task:    task,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.now = m.clock.Now()
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(m.step.label)
	if m.step.detail != "" {
		b.WriteString(" (" + m.step.detail + ")")
	}
	b.WriteString("  ")
	b.WriteString(m.elapsed())

	return b.String()
}

func (m progressModel) elapsed() string {
	elapsed := m.now.Sub(m.started).Truncate(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if m.step.budget <= 0 {
		return elapsed.String()
	}

	return fmt.Sprintf("%s / %s", elapsed, m.step.budget)
}

// runWithProgress shows step on output until task returns, then clears the
// line and hands back the task's error.
func runWithProgress(ctx context.Context, output io.Writer, clock ports.Clock, step progressStep, task func(context.Context) error) error {
	taskCmd := func() tea.Msg {
		return progressDoneMsg{err: task(ctx)}
	}

	p := tea.NewProgram(
		newProgressModel(step, clock, taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run progress view: %w", err)
	}

	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected progress model %T", final)
	}

	return model.err
}

package report

import (
	"errors"
	"io"

	"github.com/bnema/wellbeing-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	result  *domain.AnalysisResult
	history []domain.HistoryEntry
	opts    RenderOptions
	styles  styles
	output  string
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		if m.result != nil {
			m.output = renderResult(*m.result, m.opts, m.styles)
		} else {
			m.output = renderTimeline(m.history, m.opts, m.styles)
		}
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// RenderResult draws the analysis report for one submission.
func RenderResult(result domain.AnalysisResult, opts RenderOptions) (string, error) {
	return run(model{result: &result, opts: opts, styles: newStyles()})
}

// RenderHistory draws the wellbeing timeline in the order given.
func RenderHistory(history []domain.HistoryEntry, opts RenderOptions) (string, error) {
	return run(model{history: history, opts: opts, styles: newStyles()})
}

func run(initial model) (string, error) {
	p := tea.NewProgram(
		initial,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

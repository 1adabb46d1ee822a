package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	sourceLabel = "AI Fusion"

	barWidth      = 24
	timelineWidth = 30
	maxScore      = 100.0
)

type RenderOptions struct {
	// Location sets the timeline clock; nil means local time.
	Location *time.Location
}

func renderResult(result domain.AnalysisResult, _ RenderOptions, s styles) string {
	lines := []string{s.title.Render("Wellbeing Analysis")}
	if result.UserID != "" {
		lines = append(lines, s.header.Render(fmt.Sprintf("user: %s", result.UserID)))
	}

	lines = append(lines,
		s.section.Render(renderCards(result, s)),
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.heading.Render("Recommendation"),
			s.advice.Render(recommendationText(result.Recommendation)),
		)),
		s.section.Render(renderRadar(application.RadarSeries(result), s)),
		s.section.Render(renderBars(application.BarSeries(result), s)),
		s.section.Render(renderBreakdown(result, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCards(result domain.AnalysisResult, s styles) string {
	dominant := "n/a"
	if result.DominantEmotion != "" {
		dominant = application.EmotionLabel(result.DominantEmotion)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card("Wellbeing Score", fmt.Sprintf("%.1f", result.WellbeingScore)+" "+deltaLabel(application.ScoreDelta(result), s), s),
		card("Dominant Emotion", dominant, s),
		card("Latency", application.FormattedLatency(result), s),
		card("Source", sourceLabel, s),
	)
}

func card(label string, value string, s styles) string {
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, s.cardLabel.Render(label), s.cardValue.Render(value)))
}

func deltaLabel(delta application.Delta, s styles) string {
	if delta.Polarity == application.PolarityPositive {
		return s.positive.Render(fmt.Sprintf("▲ %.1f", delta.Magnitude))
	}

	return s.negative.Render(fmt.Sprintf("▼ %.1f", delta.Magnitude))
}

func recommendationText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "No recommendation."
	}

	return text
}

func renderRadar(series []application.SeriesPoint, s styles) string {
	lines := []string{s.heading.Render("Emotion Radar")}
	if len(series) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No emotion scores."))...)
	}

	width := categoryWidth(series)
	for _, point := range series {
		lines = append(lines, fmt.Sprintf("%s %s", s.seriesKey.Render(pad(point.Category, width)), s.barText.Render(fmt.Sprintf("%.2f", point.Value))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBars(series []application.SeriesPoint, s styles) string {
	lines := []string{s.heading.Render("Confidence Distribution")}
	if len(series) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No emotion scores."))...)
	}

	width := categoryWidth(series)
	for _, point := range series {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.seriesKey.Render(pad(point.Category, width)),
			" ",
			renderBar(point.Value, 1, barWidth, s),
			" ",
			s.barText.Render(fmt.Sprintf("%.2f", point.Value)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBreakdown(result domain.AnalysisResult, s styles) string {
	face := scoresSummary(result.FaceAnalysis.Scores)
	if !result.FaceAnalysis.Detected {
		face = "n/a"
		if result.FaceAnalysis.Note != "" {
			face = result.FaceAnalysis.Note
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.heading.Render("Modality Breakdown"),
		fmt.Sprintf("%s %s", s.seriesKey.Render("text: "), scoresSummary(result.TextAnalysis)),
		fmt.Sprintf("%s %s", s.seriesKey.Render("audio:"), scoresSummary(result.AudioAnalysis)),
		fmt.Sprintf("%s %s", s.seriesKey.Render("face: "), face),
	)
}

func scoresSummary(scores domain.EmotionScores) string {
	if len(scores) == 0 {
		return "n/a"
	}

	parts := make([]string, 0, len(scores))
	for _, score := range scores {
		parts = append(parts, fmt.Sprintf("%s %.2f", score.Emotion, score.Probability))
	}

	return strings.Join(parts, ", ")
}

func renderTimeline(history []domain.HistoryEntry, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Wellbeing Timeline"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(history))),
	}

	points := application.TimelineSeries(history, opts.Location)
	if len(points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, append(lines, s.empty.Render("No sessions yet."))...)
	}

	body := make([]string, 0, len(points))
	for i, point := range points {
		row := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.seriesKey.Render(point.Time),
			" ",
			renderBar(point.Score, maxScore, timelineWidth, s),
			" ",
			s.barText.Render(fmt.Sprintf("%5.1f", point.Score)),
		)
		if emotion := history[i].DominantEmotion; emotion != "" {
			row += " " + s.header.Render(emotion)
		}
		body = append(body, row)
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderBar fills width cells in proportion to value/max. Out of range
// values are clamped; callers print the raw value next to it.
func renderBar(value float64, max float64, width int, s styles) string {
	if width <= 0 || max <= 0 {
		return ""
	}

	fraction := value / max
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	fillStyle := s.barFill.Foreground(interpolateColor(fraction, 0, 1))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillStyle.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func categoryWidth(series []application.SeriesPoint) int {
	width := 0
	for _, point := range series {
		if n := lipgloss.Width(point.Category); n > width {
			width = n
		}
	}
	return width
}

func pad(value string, width int) string {
	if gap := width - lipgloss.Width(value); gap > 0 {
		return value + strings.Repeat(" ", gap)
	}
	return value
}

// interpolateColor walks the 256-color greyscale ramp from 240 at min to 255
// at max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}

package application

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/samber/lo"
)

const neutralWellbeingScore = 50

type SeriesPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

type Delta struct {
	Polarity  Polarity `json:"polarity"`
	Magnitude float64  `json:"magnitude"`
}

// RadarSeries lists the fused emotions in service order for a radial chart.
func RadarSeries(result domain.AnalysisResult) []SeriesPoint {
	return emotionSeries(result.FusedEmotions)
}

// BarSeries carries the same values as RadarSeries for a categorical chart.
func BarSeries(result domain.AnalysisResult) []SeriesPoint {
	return emotionSeries(result.FusedEmotions)
}

func emotionSeries(scores domain.EmotionScores) []SeriesPoint {
	return lo.Map(scores, func(score domain.EmotionScore, _ int) SeriesPoint {
		return SeriesPoint{Category: capitalize(score.Emotion), Value: score.Probability}
	})
}

// ScoreDelta is the distance from the neutral score. A score of exactly 50
// is negative.
func ScoreDelta(result domain.AnalysisResult) Delta {
	polarity := PolarityNegative
	if result.WellbeingScore > neutralWellbeingScore {
		polarity = PolarityPositive
	}

	return Delta{
		Polarity:  polarity,
		Magnitude: math.Abs(result.WellbeingScore - neutralWellbeingScore),
	}
}

// EmotionLabel is the display form of an emotion key.
func EmotionLabel(emotion string) string {
	return capitalize(emotion)
}

func FormattedLatency(result domain.AnalysisResult) string {
	return fmt.Sprintf("%dms", int64(math.Round(result.ProcessingTimeMS)))
}

func capitalize(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))
	b.WriteRune(unicode.ToUpper(r))
	b.WriteString(value[size:])
	return b.String()
}

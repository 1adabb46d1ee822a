package application

import (
	"testing"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRadarSeriesKeepsServiceOrder(t *testing.T) {
	series := RadarSeries(sampleResult())

	assert.Equal(t, []SeriesPoint{
		{Category: "Joy", Value: 0.9},
		{Category: "Sadness", Value: 0.05},
	}, series)
}

func TestRadarAndBarSeriesMatch(t *testing.T) {
	tests := []struct {
		name   string
		scores domain.EmotionScores
	}{
		{name: "empty", scores: domain.EmotionScores{}},
		{name: "nil", scores: nil},
		{name: "single", scores: domain.EmotionScores{{Emotion: "neutral", Probability: 1}}},
		{name: "out of range", scores: domain.EmotionScores{{Emotion: "anger", Probability: 1.4}, {Emotion: "fear", Probability: -0.2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := domain.AnalysisResult{FusedEmotions: tt.scores}
			radar := RadarSeries(result)
			bar := BarSeries(result)

			assert.NotNil(t, radar)
			assert.Len(t, radar, len(tt.scores))
			assert.Equal(t, radar, bar)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Joy", capitalize("joy"))
	assert.Equal(t, "ÉMotion", capitalize("éMotion"))
	assert.Equal(t, "Already", capitalize("Already"))
}

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		score float64
		want  Delta
	}{
		{score: 80, want: Delta{Polarity: PolarityPositive, Magnitude: 30}},
		{score: 20, want: Delta{Polarity: PolarityNegative, Magnitude: 30}},
		{score: 50, want: Delta{Polarity: PolarityNegative, Magnitude: 0}},
		{score: 130, want: Delta{Polarity: PolarityPositive, Magnitude: 80}},
		{score: -10, want: Delta{Polarity: PolarityNegative, Magnitude: 60}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreDelta(domain.AnalysisResult{WellbeingScore: tt.score}), "score %v", tt.score)
	}
}

func TestFormattedLatency(t *testing.T) {
	assert.Equal(t, "120ms", FormattedLatency(domain.AnalysisResult{ProcessingTimeMS: 120.4}))
	assert.Equal(t, "121ms", FormattedLatency(domain.AnalysisResult{ProcessingTimeMS: 120.5}))
	assert.Equal(t, "0ms", FormattedLatency(domain.AnalysisResult{}))
}

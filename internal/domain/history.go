package domain

import "time"

// HistoryEntry is one past analysis as listed by the service.
type HistoryEntry struct {
	Timestamp       time.Time `json:"timestamp"`
	WellbeingScore  float64   `json:"wellbeing_score"`
	DominantEmotion string    `json:"dominant_emotion,omitempty"`
	Recommendation  string    `json:"recommendation,omitempty"`
}

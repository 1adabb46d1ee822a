package domain

import "time"

// AnalysisResult is the fused analysis of one submission. A new result
// replaces the previous one wholesale.
type AnalysisResult struct {
	UserID           string        `json:"user_id,omitempty"`
	WellbeingScore   float64       `json:"wellbeing_score"`
	DominantEmotion  string        `json:"dominant_emotion"`
	FusedEmotions    EmotionScores `json:"fused_emotions"`
	Recommendation   string        `json:"recommendation"`
	ProcessingTimeMS float64       `json:"processing_time_ms"`

	TextAnalysis  EmotionScores `json:"text_analysis,omitempty"`
	AudioAnalysis EmotionScores `json:"audio_analysis,omitempty"`
	FaceAnalysis  FaceAnalysis  `json:"face_analysis"`
}

// FaceAnalysis carries the facial breakdown; the service reports a plain
// string instead of scores when it found no face.
type FaceAnalysis struct {
	Detected bool          `json:"detected"`
	Scores   EmotionScores `json:"scores,omitempty"`
	Note     string        `json:"note,omitempty"`
}

// ProcessingTime converts the reported latency to a duration.
func (r AnalysisResult) ProcessingTime() time.Duration {
	return time.Duration(r.ProcessingTimeMS * float64(time.Millisecond))
}

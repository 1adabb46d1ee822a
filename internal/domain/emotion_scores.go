package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EmotionScore is one per-emotion confidence.
type EmotionScore struct {
	Emotion     string
	Probability float64
}

// EmotionScores keeps the order in which the service listed each emotion.
// Probabilities are independent confidences and need not sum to one.
type EmotionScores []EmotionScore

func (s EmotionScores) Get(emotion string) (float64, bool) {
	for _, score := range s {
		if score.Emotion == emotion {
			return score.Probability, true
		}
	}

	return 0, false
}

// Dominant returns the highest scoring emotion; ties keep the first listed.
func (s EmotionScores) Dominant() (EmotionScore, bool) {
	if len(s) == 0 {
		return EmotionScore{}, false
	}

	best := s[0]
	for _, score := range s[1:] {
		if score.Probability > best.Probability {
			best = score
		}
	}

	return best, true
}

func (s *EmotionScores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("emotion scores: expected object, got %v", tok)
	}

	scores := EmotionScores{}
	seen := map[string]struct{}{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("emotion scores: expected key, got %v", keyTok)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("emotion scores: duplicate emotion %q", key)
		}
		seen[key] = struct{}{}

		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("emotion scores: value for %q: %w", key, err)
		}
		scores = append(scores, EmotionScore{Emotion: key, Probability: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = scores
	return nil
}

func (s EmotionScores) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, score := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(score.Emotion)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(score.Probability)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

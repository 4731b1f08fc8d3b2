package sentiment

import (
	"context"
	"errors"
	"strings"
)

// MaxInputRunes bounds text submitted to a classifier backend. Longer input
// is clipped, never rejected.
const MaxInputRunes = 512

// ErrUnavailable is returned when the inference capability never initialized.
var ErrUnavailable = errors.New("sentiment model not available")

// Prediction is a normalized classifier output: a lower-cased label and a
// confidence in [0,1].
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier scores English text. Implementations are safe for concurrent
// use; inference is stateless per call.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

var labelMap = map[string]string{
	"POSITIVE": "positive",
	"NEGATIVE": "negative",
	"NEUTRAL":  "neutral",
}

// NormalizeLabel maps the model's label vocabulary to the stable API labels.
// Unknown labels are lower-cased and passed through so additional model
// categories still produce usable output.
func NormalizeLabel(raw string) string {
	if mapped, ok := labelMap[raw]; ok {
		return mapped
	}
	return strings.ToLower(raw)
}

// ClampScore forces a model score into [0,1].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Truncate clips text to MaxInputRunes runes.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxInputRunes {
		return text
	}
	return string(runes[:MaxInputRunes])
}

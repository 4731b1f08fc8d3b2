package sentiment

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

// VADERClassifier is a local lexicon-based backend. It needs no model files
// on disk, which makes it the fallback when no ONNX model is configured.
type VADERClassifier struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVADERClassifier() *VADERClassifier {
	return &VADERClassifier{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (c *VADERClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	plainText := ConvertMarkdownToText(Truncate(text))
	scores := c.analyzer.PolarityScores(plainText)
	compound := scores.Compound

	var label string
	var confidence float64
	switch {
	case compound >= positiveThreshold:
		label = "positive"
		confidence = math.Abs(compound)
	case compound <= negativeThreshold:
		label = "negative"
		confidence = math.Abs(compound)
	default:
		label = "neutral"
		confidence = scores.Neutral
	}

	return Prediction{
		Label:      NormalizeLabel(label),
		Confidence: ClampScore(confidence),
	}, nil
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := htmlTagPattern.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/sentiment"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/translation"
)

// Boundary validation caps text at 5000 characters; the pipeline clips
// defensively in case it is fed directly.
const maxItemRunes = 5000

// Pipeline runs one text through translate-then-classify and assembles the
// normalized result. The classifier handle may be nil when the model failed
// to load at startup; every classification attempt then fails as unavailable
// instead of crashing the process.
type Pipeline struct {
	translator translation.Translator
	classifier sentiment.Classifier
}

func New(translator translation.Translator, classifier sentiment.Classifier) *Pipeline {
	return &Pipeline{
		translator: translator,
		classifier: classifier,
	}
}

// Ready reports whether the inference capability initialized.
func (p *Pipeline) Ready() bool {
	return p.classifier != nil
}

// Process analyzes a single item. Failures are never retried here and
// propagate to the caller tagged with the stage that failed.
func (p *Pipeline) Process(ctx context.Context, item models.SentimentRequestItem) (models.SentimentResult, error) {
	start := time.Now()

	if item.Text == "" {
		return models.SentimentResult{}, &Error{Kind: FailureValidation, Err: errors.New("empty text")}
	}
	text := clipRunes(item.Text, maxItemRunes)

	sourceLang := item.SourceLanguage
	if sourceLang == "" {
		sourceLang = models.LanguageAuto
	}

	workingText := text
	resolvedLang := models.LanguagePivot
	translatedText := ""
	detectedLang := ""

	if sourceLang != models.LanguagePivot {
		translated, err := p.translator.Translate(ctx, text, sourceLang)
		if err != nil {
			return models.SentimentResult{}, &Error{Kind: FailureTranslation, Err: err}
		}
		workingText = translated.Text
		resolvedLang = translated.ResolvedLanguage
		translatedText = translated.Text
		detectedLang = translated.DetectedLanguage
	}

	prediction, err := p.classify(ctx, workingText)
	if err != nil {
		return models.SentimentResult{}, err
	}

	elapsed := time.Since(start).Seconds() * 1000
	if elapsed < 0 {
		elapsed = 0
	}

	return models.SentimentResult{
		Text:             item.Text,
		Sentiment:        prediction.Label,
		Confidence:       roundTo(prediction.Confidence, 4),
		SourceLanguage:   resolvedLang,
		TranslatedText:   translatedText,
		DetectedLanguage: detectedLang,
		ProcessingTimeMs: roundTo(elapsed, 2),
		Timestamp:        time.Now().UTC(),
	}, nil
}

func (p *Pipeline) classify(ctx context.Context, text string) (sentiment.Prediction, error) {
	if p.classifier == nil {
		return sentiment.Prediction{}, &Error{Kind: FailureUnavailable, Err: sentiment.ErrUnavailable}
	}

	prediction, err := p.classifier.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, sentiment.ErrUnavailable) {
			return sentiment.Prediction{}, &Error{Kind: FailureUnavailable, Err: err}
		}
		slog.Error("[Pipeline] Sentiment analysis failed",
			slog.String("error", err.Error()))
		return sentiment.Prediction{}, &Error{Kind: FailureClassification, Err: err}
	}

	return prediction, nil
}

func clipRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	slog.Warn(fmt.Sprintf("[Pipeline] Clipping oversized input from %d runes", len(runes)))
	return string(runes[:limit])
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/sentiment"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/translation"
)

// failingClassifier fails for texts containing the trigger substring.
type failingClassifier struct {
	trigger string
}

func (f *failingClassifier) Classify(ctx context.Context, text string) (sentiment.Prediction, error) {
	if f.trigger != "" && strings.Contains(text, f.trigger) {
		return sentiment.Prediction{}, errors.New("boom")
	}
	return sentiment.Prediction{Label: "positive", Confidence: 0.9}, nil
}

type identityTranslator struct{}

func (identityTranslator) Translate(ctx context.Context, text string, sourceLang string) (translation.Translation, error) {
	return translation.Translation{Text: text, ResolvedLanguage: sourceLang}, nil
}

func englishItems(texts ...string) []models.SentimentRequestItem {
	items := make([]models.SentimentRequestItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, models.SentimentRequestItem{Text: text, SourceLanguage: "en"})
	}
	return items
}

func TestProcessBatchAllSucceed(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{})
	o := NewOrchestrator(p, OrchestratorConfig{})

	batch := o.ProcessBatch(context.Background(), englishItems("one", "two", "three"))

	require.Len(t, batch.Results, 3)
	assert.Equal(t, 3, batch.TotalProcessed)
	assert.Empty(t, batch.Failures)
	assert.GreaterOrEqual(t, batch.ProcessingTimeMs, 0.0)
	assert.Equal(t, "one", batch.Results[0].Text)
	assert.Equal(t, "two", batch.Results[1].Text)
	assert.Equal(t, "three", batch.Results[2].Text)
}

func TestProcessBatchPartialFailure(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{trigger: "bad"})
	o := NewOrchestrator(p, OrchestratorConfig{})

	batch := o.ProcessBatch(context.Background(), englishItems("good one", "bad one", "good two"))

	require.Len(t, batch.Results, 2)
	assert.Equal(t, 2, batch.TotalProcessed)
	assert.Equal(t, "good one", batch.Results[0].Text)
	assert.Equal(t, "good two", batch.Results[1].Text)

	require.Len(t, batch.Failures, 1)
	assert.Equal(t, 1, batch.Failures[0].Index)
	assert.Equal(t, "bad one", batch.Failures[0].Text)
	assert.Equal(t, string(FailureClassification), batch.Failures[0].Reason)
}

func TestProcessBatchAllFail(t *testing.T) {
	p := New(identityTranslator{}, nil) // classifier never loaded
	o := NewOrchestrator(p, OrchestratorConfig{})

	batch := o.ProcessBatch(context.Background(), englishItems("one", "two"))

	assert.Empty(t, batch.Results)
	assert.Equal(t, 0, batch.TotalProcessed)
	require.Len(t, batch.Failures, 2)
	for _, failure := range batch.Failures {
		assert.Equal(t, string(FailureUnavailable), failure.Reason)
	}
}

func TestProcessBatchEmptyInput(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{})
	o := NewOrchestrator(p, OrchestratorConfig{})

	batch := o.ProcessBatch(context.Background(), nil)

	assert.NotNil(t, batch.Results)
	assert.Empty(t, batch.Results)
	assert.Equal(t, 0, batch.TotalProcessed)
}

func TestProcessBatchInvariant(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{trigger: "2"})
	o := NewOrchestrator(p, OrchestratorConfig{Workers: 3})

	var texts []string
	for i := 0; i < 20; i++ {
		texts = append(texts, fmt.Sprintf("item %d", i))
	}

	batch := o.ProcessBatch(context.Background(), englishItems(texts...))

	assert.Equal(t, len(batch.Results), batch.TotalProcessed)
	assert.LessOrEqual(t, len(batch.Results), 20)
	assert.Equal(t, 20, len(batch.Results)+len(batch.Failures))
}

func TestProcessBatchConcurrentPreservesOrder(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{})
	o := NewOrchestrator(p, OrchestratorConfig{Workers: 8})

	var texts []string
	for i := 0; i < 50; i++ {
		texts = append(texts, fmt.Sprintf("item %d", i))
	}

	batch := o.ProcessBatch(context.Background(), englishItems(texts...))

	require.Len(t, batch.Results, 50)
	for i, result := range batch.Results {
		assert.Equal(t, fmt.Sprintf("item %d", i), result.Text)
	}
}

func TestProcessBatchFailureDoesNotCancelOthers(t *testing.T) {
	p := New(identityTranslator{}, &failingClassifier{trigger: "bad"})
	o := NewOrchestrator(p, OrchestratorConfig{Workers: 4})

	batch := o.ProcessBatch(context.Background(),
		englishItems("bad", "ok 1", "bad", "ok 2", "bad", "ok 3"))

	require.Len(t, batch.Results, 3)
	assert.Len(t, batch.Failures, 3)
}

package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

// ONNXClassifier runs a local text-classification model through hugot. The
// session is created once at startup and shared read-only afterwards.
type ONNXClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewONNXClassifier(modelPath string) (*ONNXClassifier, error) {
	slog.Info("[ONNXClassifier] Loading sentiment model",
		slog.String("model_path", modelPath))
	start := time.Now()

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentClassifier",
	}

	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to create classification pipeline: %w", err)
	}

	slog.Info("[ONNXClassifier] Sentiment model loaded successfully",
		slog.Duration("elapsed", time.Since(start)))

	return &ONNXClassifier{session: session, pipeline: pipeline}, nil
}

func (c *ONNXClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	output, err := c.pipeline.RunPipeline([]string{Truncate(text)})
	if err != nil {
		return Prediction{}, fmt.Errorf("inference failed: %w", err)
	}
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return Prediction{}, fmt.Errorf("inference returned no output")
	}

	best := output.ClassificationOutputs[0][0]
	for _, candidate := range output.ClassificationOutputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	return Prediction{
		Label:      NormalizeLabel(best.Label),
		Confidence: ClampScore(float64(best.Score)),
	}, nil
}

func (c *ONNXClassifier) Close() error {
	return c.session.Destroy()
}

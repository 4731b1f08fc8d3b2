package translation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/clients"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
)

type libreTranslateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage *struct {
		Confidence float64 `json:"confidence"`
		Language   string  `json:"language"`
	} `json:"detectedLanguage,omitempty"`
}

// LibreTranslator talks to a LibreTranslate-compatible HTTP endpoint through
// the shared translate client.
type LibreTranslator struct {
	client *clients.TranslateClient
	apiKey string
}

func NewLibreTranslator(client *clients.TranslateClient, apiKey string) *LibreTranslator {
	return &LibreTranslator{
		client: client,
		apiKey: apiKey,
	}
}

func (t *LibreTranslator) Translate(ctx context.Context, text string, sourceLang string) (Translation, error) {
	request := libreTranslateRequest{
		Query:  text,
		Source: sourceLang,
		Target: models.LanguagePivot,
		Format: "text",
		APIKey: t.apiKey,
	}

	start := time.Now()
	var response libreTranslateResponse
	if err := t.client.PostJSON(ctx, request, &response); err != nil {
		slog.Error("[LibreTranslator] Translation request failed",
			slog.String("source_language", sourceLang),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return Translation{}, fmt.Errorf("translation failed: %w", err)
	}

	result := Translation{
		Text:             response.TranslatedText,
		ResolvedLanguage: sourceLang,
	}
	if response.DetectedLanguage != nil {
		result.DetectedLanguage = response.DetectedLanguage.Language
	}

	slog.Debug("[LibreTranslator] Translation successful",
		slog.String("source_language", sourceLang),
		slog.Duration("elapsed", time.Since(start)))

	return result, nil
}

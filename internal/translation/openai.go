package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
)

const translateSystemPrompt = "You are a translation engine. Translate the user's text to English. " +
	"Respond with the translation only, no commentary. If the text is already English, return it unchanged."

// OpenAITranslator uses a chat model as the translation backend. Useful when
// no LibreTranslate instance is reachable.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(client *openai.Client, model string) *OpenAITranslator {
	if model == "" {
		model = openai.GPT3Dot5Turbo1106
	}
	return &OpenAITranslator{client: client, model: model}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text string, sourceLang string) (Translation, error) {
	userPrompt := text
	if sourceLang != models.LanguageAuto {
		userPrompt = fmt.Sprintf("Source language: %s\n%s", sourceLang, text)
	}

	start := time.Now()
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: translateSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		slog.Error("[OpenAITranslator] Translation request failed",
			slog.String("source_language", sourceLang),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return Translation{}, fmt.Errorf("translation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Translation{}, fmt.Errorf("translation failed: model returned no choices")
	}

	return Translation{
		Text:             strings.TrimSpace(resp.Choices[0].Message.Content),
		ResolvedLanguage: sourceLang,
	}, nil
}

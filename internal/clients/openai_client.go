package clients

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Default timeout for individual OpenAI API requests. Translation prompts are
// short, but model latency varies; override with OPENAI_TIMEOUT.
const defaultOpenAITimeout = 60 * time.Second

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
}

func GetOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
		panic("[OpenAIClient] Missing OPENAI_API_KEY in environment variables")
	}

	timeout := defaultOpenAITimeout
	if raw := os.Getenv("OPENAI_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			timeout = parsed
		} else {
			slog.Warn("[OpenAIClient] Invalid OPENAI_TIMEOUT, using default",
				slog.String("value", raw))
		}
	}

	openAIOnce.Do(func() {
		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{
			Timeout: timeout,
		}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized",
			slog.Duration("timeout", timeout))
	})
	return openAIClientInstance
}

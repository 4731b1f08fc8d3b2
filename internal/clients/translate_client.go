package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

const DEFAULT_TRANSLATE_ENDPOINT = "https://libretranslate.com/translate"

var (
	translateInstance *TranslateClient
	translateOnce     sync.Once
)

// TranslateClient is the shared HTTP client for the external translation
// service. It owns timeouts; callers own error semantics, so there is no
// retry here.
type TranslateClient struct {
	Client   *http.Client
	Endpoint string
}

func GetTranslateClient() *TranslateClient {
	var timeout time.Duration
	env := os.Getenv("APP_ENV")
	if env == "production" {
		timeout = 10 * time.Second
	} else {
		timeout = 60 * time.Second
	}

	endpoint := os.Getenv("TRANSLATE_API_URL")
	if endpoint == "" {
		endpoint = DEFAULT_TRANSLATE_ENDPOINT
	}

	translateOnce.Do(func() {
		slog.Info("[TranslateClient] Initializing Client",
			slog.Duration("timeout", timeout),
			slog.String("endpoint", endpoint),
			slog.String("env", env))
		translateInstance = NewTranslateClient(endpoint, timeout)
	})
	return translateInstance
}

func NewTranslateClient(endpoint string, timeout time.Duration) *TranslateClient {
	return &TranslateClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		Endpoint: endpoint,
	}
}

// PostJSON posts input to the translation endpoint and decodes the response
// into output.
func (t *TranslateClient) PostJSON(ctx context.Context, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		slog.Error("[TranslateClient] Request rejected",
			slog.Int("status_code", resp.StatusCode),
			getPreview(respBody))
		return fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[TranslateClient] Failed to unmarshal response",
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/config"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/clients"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/logging"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/pipeline"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/sentiment"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/server"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/translation"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	classifier := buildClassifier()
	translator := buildTranslator()

	p := pipeline.New(translator, classifier)
	orchestrator := pipeline.NewOrchestrator(p, orchestratorConfigFromEnv())

	srv := server.Create(p, orchestrator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("[Main] Starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] HTTP server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed", slog.String("error", err.Error()))
	}

	if closer, ok := classifier.(*sentiment.ONNXClassifier); ok && closer != nil {
		if err := closer.Close(); err != nil {
			slog.Warn("[Main] Failed to close classifier session", slog.String("error", err.Error()))
		}
	}
	clients.CloseValkey()
}

// buildClassifier loads the inference capability once. A load failure must
// not crash the process: the service keeps running and reports unavailable on
// every classification attempt.
func buildClassifier() sentiment.Classifier {
	if os.Getenv("SENTIMENT_BACKEND") == "vader" {
		slog.Info("[Main] Using VADER sentiment backend")
		return sentiment.NewVADERClassifier()
	}

	modelPath := os.Getenv("SENTIMENT_MODEL_PATH")
	if modelPath == "" {
		modelPath = "./models/distilbert-sst2"
	}

	classifier, err := sentiment.NewONNXClassifier(modelPath)
	if err != nil {
		slog.Error("[Main] Error loading sentiment model, service will report unavailable",
			slog.String("model_path", modelPath),
			slog.String("error", err.Error()))
		return nil
	}
	return classifier
}

func buildTranslator() translation.Translator {
	var base translation.Translator
	if os.Getenv("TRANSLATOR_BACKEND") == "openai" {
		slog.Info("[Main] Using OpenAI translation backend")
		base = translation.NewOpenAITranslator(
			clients.GetOpenAIClient().Client,
			os.Getenv("OPENAI_TRANSLATE_MODEL"))
	} else {
		base = translation.NewLibreTranslator(
			clients.GetTranslateClient(),
			os.Getenv("TRANSLATE_API_KEY"))
	}

	if os.Getenv("VALKEY_INIT_ADDRESS") == "" {
		return base
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("TRANSLATION_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			ttl = parsed
		}
	}
	slog.Info("[Main] Translation caching enabled", slog.Duration("ttl", ttl))
	return translation.NewCachedTranslator(base, clients.InitValkey(), ttl)
}

func orchestratorConfigFromEnv() pipeline.OrchestratorConfig {
	cfg := pipeline.OrchestratorConfig{Workers: 1}
	if raw := os.Getenv("BATCH_WORKERS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			cfg.Workers = parsed
		}
	}
	if raw := os.Getenv("PIPELINE_ITEM_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.ItemTimeout = parsed
		}
	}
	if raw := os.Getenv("PIPELINE_BATCH_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cfg.BatchTimeout = parsed
		}
	}
	return cfg
}

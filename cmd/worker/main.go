package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/config"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/clients"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/clients/kafka_client"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/logging"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/pipeline"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/sentiment"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/translation"
)

// The worker consumes batch analysis jobs from kafka, runs them through the
// same orchestrator the HTTP boundary uses, and publishes results keyed by
// request id.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := kafka_client.GetKafkaConfig()
	if err := initProducerWithRetry(ctx, cfg, kafka_client.InitKafkaProducer); err != nil {
		slog.Warn("[Worker] Shutting down before producer initialized",
			slog.String("error", err.Error()))
		return
	}
	defer kafka_client.CloseKafkaProducer()

	if err := kafka_client.InitKafkaConsumer(cfg); err != nil {
		slog.Error("[Worker] Failed to initialize consumer", slog.String("error", err.Error()))
		return
	}
	defer kafka_client.CloseKafkaConsumer()

	runWorker(ctx, orchestrator)
	clients.CloseValkey()
}

const producerRetryDelay = 5 * time.Second

// initProducerWithRetry keeps retrying producer init during broker outages
// but still honors shutdown signals between attempts.
func initProducerWithRetry(ctx context.Context, cfg kafka_client.KafkaConfig, init func(kafka_client.KafkaConfig) error) error {
	for {
		err := init(cfg)
		if err == nil {
			return nil
		}
		slog.Warn("[Worker] Kafka producer init failed, retrying...",
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(producerRetryDelay):
		}
	}
}

func runWorker(ctx context.Context, orchestrator *pipeline.Orchestrator) {
	for {
		msg, err := kafka_client.NextMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				slog.Warn("[Worker] Shutting down...")
				return
			}
			slog.Error("[Worker] Failed to read message", slog.String("error", err.Error()))
			continue
		}

		var job models.AnalysisJob
		if err := json.Unmarshal(msg.Value, &job); err != nil {
			slog.Error("[Worker] Failed to deserialize job, skipping",
				slog.String("error", err.Error()))
			if err := kafka_client.CommitMessage(msg); err != nil {
				slog.Warn("[Worker] Failed to commit skipped message",
					slog.String("error", err.Error()))
			}
			continue
		}
		if job.RequestID == "" {
			job.RequestID = uuid.NewString()
		}
		if job.SourceLanguage == "" {
			job.SourceLanguage = models.LanguageAuto
		}

		items := make([]models.SentimentRequestItem, 0, len(job.Texts))
		for _, text := range job.Texts {
			items = append(items, models.SentimentRequestItem{
				Text:           text,
				SourceLanguage: job.SourceLanguage,
			})
		}

		result := models.AnalysisJobResult{
			RequestID:   job.RequestID,
			BatchResult: orchestrator.ProcessBatch(ctx, items),
		}

		if err := kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_ANALYSIS_RESULTS, job.RequestID, result); err != nil {
			slog.Error("[Worker] Failed to publish result",
				slog.String("request_id", job.RequestID),
				slog.String("error", err.Error()))
			continue
		}

		if err := kafka_client.CommitMessage(msg); err != nil {
			slog.Warn("[Worker] Failed to commit offset",
				slog.String("request_id", job.RequestID),
				slog.String("error", err.Error()))
		}
	}
}

func buildClassifier() sentiment.Classifier {
	if os.Getenv("SENTIMENT_BACKEND") == "vader" {
		slog.Info("[Worker] Using VADER sentiment backend")
		return sentiment.NewVADERClassifier()
	}

	modelPath := os.Getenv("SENTIMENT_MODEL_PATH")
	if modelPath == "" {
		modelPath = "./models/distilbert-sst2"
	}

	classifier, err := sentiment.NewONNXClassifier(modelPath)
	if err != nil {
		slog.Error("[Worker] Error loading sentiment model, jobs will fail as unavailable",
			slog.String("model_path", modelPath),
			slog.String("error", err.Error()))
		return nil
	}
	return classifier
}

func buildTranslator() translation.Translator {
	var base translation.Translator
	if os.Getenv("TRANSLATOR_BACKEND") == "openai" {
		slog.Info("[Worker] Using OpenAI translation backend")
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
	slog.Info("[Worker] Translation caching enabled", slog.Duration("ttl", ttl))
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

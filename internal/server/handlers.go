package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/pipeline"
)

const serviceVersion = "1.0.0"

type sentimentRequest struct {
	Text           string `json:"text"            validate:"required,min=1,max=5000"`
	SourceLanguage string `json:"source_language" validate:"omitempty,language"`
}

type batchSentimentRequest struct {
	Texts          []string `json:"texts"           validate:"required,min=1,max=50,dive,required,max=5000"`
	SourceLanguage string   `json:"source_language" validate:"omitempty,language"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type Handlers struct {
	pipeline     *pipeline.Pipeline
	orchestrator *pipeline.Orchestrator
	validate     *validator.Validate
}

func NewHandlers(p *pipeline.Pipeline, o *pipeline.Orchestrator) *Handlers {
	validate := validator.New()
	// "language": a supported code or the auto sentinel.
	err := validate.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return models.IsSupportedLanguage(fl.Field().String())
	})
	if err != nil {
		slog.Error("[Server] Failed to register language validation", slog.String("error", err.Error()))
		panic("[Server] Failed to register language validation: " + err.Error())
	}

	return &Handlers{
		pipeline:     p,
		orchestrator: o,
		validate:     validate,
	}
}

func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	encodeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "Cross-Lingual Sentiment Analysis API",
		"version": serviceVersion,
		"status":  "operational",
		"endpoints": map[string]string{
			"analyze":       "/api/v1/sentiment",
			"batch_analyze": "/api/v1/sentiment/batch",
			"health":        "/health",
			"languages":     "/api/v1/languages",
		},
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	encodeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"model_loaded": h.pipeline.Ready(),
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) Languages(w http.ResponseWriter, r *http.Request) {
	encodeJSON(w, http.StatusOK, map[string]interface{}{
		"supported_languages": models.SupportedLanguages,
		"total":               len(models.SupportedLanguages),
		"auto_detect":         true,
	})
}

func (h *Handlers) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = models.LanguageAuto
	}
	if err := h.validate.Struct(req); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.pipeline.Process(r.Context(), models.SentimentRequestItem{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
	})
	if err != nil {
		renderPipelineError(w, err)
		return
	}

	encodeJSON(w, http.StatusOK, result)
}

func (h *Handlers) AnalyzeSentimentBatch(w http.ResponseWriter, r *http.Request) {
	var req batchSentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = models.LanguageAuto
	}
	if err := h.validate.Struct(req); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]models.SentimentRequestItem, 0, len(req.Texts))
	for _, text := range req.Texts {
		items = append(items, models.SentimentRequestItem{
			Text:           text,
			SourceLanguage: req.SourceLanguage,
		})
	}

	// Best-effort: per-item failures are reported in the payload, never as an
	// HTTP error.
	encodeJSON(w, http.StatusOK, h.orchestrator.ProcessBatch(r.Context(), items))
}

func renderPipelineError(w http.ResponseWriter, err error) {
	switch pipeline.KindOf(err) {
	case pipeline.FailureUnavailable:
		renderError(w, http.StatusServiceUnavailable, "Sentiment model not available")
	case pipeline.FailureValidation:
		renderError(w, http.StatusBadRequest, err.Error())
	case pipeline.FailureTranslation:
		renderError(w, http.StatusInternalServerError, "Translation failed")
	default:
		renderError(w, http.StatusInternalServerError, "Analysis failed")
	}
}

func renderError(w http.ResponseWriter, status int, detail string) {
	if status >= 500 {
		slog.Error("[Server] Request failed", slog.Int("status", status), slog.String("detail", detail))
	}
	encodeJSON(w, status, errorResponse{Detail: detail})
}

func encodeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}

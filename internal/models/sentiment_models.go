package models

import "time"

// SentimentRequestItem is one unit of work for the analysis pipeline.
// Validation (non-empty text, length bound, known language code) happens at
// the service boundary; the pipeline only defends against the worst cases.
type SentimentRequestItem struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}

// SentimentResult is the normalized outcome for a single text. It is built
// once per item and never mutated afterwards.
type SentimentResult struct {
	Text             string    `json:"text"`
	Sentiment        string    `json:"sentiment"`
	Confidence       float64   `json:"confidence"`
	SourceLanguage   string    `json:"source_language"`
	TranslatedText   string    `json:"translated_text,omitempty"`
	DetectedLanguage string    `json:"detected_language,omitempty"`
	ProcessingTimeMs float64   `json:"processing_time_ms"`
	Timestamp        time.Time `json:"timestamp"`
}

// ItemFailure records a batch item that could not be processed.
type ItemFailure struct {
	Index  int    `json:"index"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// BatchResult aggregates a best-effort batch run. TotalProcessed always
// equals len(Results); failed items appear only in Failures.
type BatchResult struct {
	Results          []SentimentResult `json:"results"`
	TotalProcessed   int               `json:"total_processed"`
	ProcessingTimeMs float64           `json:"processing_time_ms"`
	Failures         []ItemFailure     `json:"failures,omitempty"`
}

package models

// AnalysisJob is the envelope consumed by the kafka batch worker.
type AnalysisJob struct {
	RequestID      string   `json:"request_id"`
	Texts          []string `json:"texts"`
	SourceLanguage string   `json:"source_language"`
}

// AnalysisJobResult is published once the batch finished processing.
type AnalysisJobResult struct {
	RequestID string `json:"request_id"`
	BatchResult
}

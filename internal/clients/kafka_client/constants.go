package kafka_client

import "time"

const (
	KAFKA_TOPIC_ANALYSIS_REQUESTS = "sentiment-analysis-requests" // batch jobs submitted by async callers
	KAFKA_TOPIC_ANALYSIS_RESULTS  = "sentiment-analysis-results"  // batch results keyed by request id
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)

package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/pipeline"
)

const readHeaderTimeout = 5 * time.Second

// Create builds the HTTP server around the pipeline and orchestrator. Port
// comes from PORT (default 8000).
func Create(p *pipeline.Pipeline, o *pipeline.Orchestrator) *http.Server {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	handlers := NewHandlers(p, o)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           setupRouter(handlers),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

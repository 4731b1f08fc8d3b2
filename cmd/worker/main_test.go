package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/clients/kafka_client"
)

func TestInitProducerWithRetrySucceeds(t *testing.T) {
	attempts := 0
	init := func(kafka_client.KafkaConfig) error {
		attempts++
		return nil
	}

	err := initProducerWithRetry(context.Background(), kafka_client.KafkaConfig{}, init)

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestInitProducerWithRetryStopsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	init := func(kafka_client.KafkaConfig) error {
		return errors.New("broker down")
	}

	done := make(chan error, 1)
	go func() {
		done <- initProducerWithRetry(ctx, kafka_client.KafkaConfig{}, init)
	}()

	cancel()

	select {
	case err := <-done:
		// A cancelled worker must stop retrying instead of spinning until
		// SIGKILL.
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(producerRetryDelay + time.Second):
		t.Fatal("retry loop did not stop after shutdown signal")
	}
}

package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var consumer *kafka.Consumer

func InitKafkaConsumer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka Consumer...",
		slog.String("broker", cfg.Broker),
		slog.String("group_id", cfg.GroupID),
		slog.String("topic", cfg.Topic))

	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":  cfg.Broker,
		"group.id":           cfg.GroupID,
		"auto.offset.reset":  "earliest",
		"enable.auto.commit": false,
	})
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to create consumer: %w", err)
	}

	err = c.SubscribeTopics([]string{cfg.Topic}, nil)
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to subscribe to topic: %w", err)
	}

	consumer = c
	slog.Info("[KafkaClient] Kafka Consumer initialized successfully")
	return nil
}

func CloseKafkaConsumer() {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			slog.Warn("[KafkaClient] Failed to close consumer",
				slog.String("error", err.Error()))
		}
	}
}

// NextMessage blocks until a message arrives or the context is cancelled.
func NextMessage(ctx context.Context) (*kafka.Message, error) {
	if consumer == nil {
		return nil, errors.New("[KafkaClient] consumer has not been initialized")
	}

	for i := 0; i < MAX_RETRIES; i++ {
		select {
		case <-ctx.Done():
			slog.Warn("[KafkaClient] Context cancelled, stopping consumer loop")
			return nil, ctx.Err()
		default:
			msg, err := consumer.ReadMessage(time.Second)
			if err != nil {
				if kafkaErr, ok := err.(kafka.Error); ok {
					if kafkaErr.Code() == kafka.ErrTimedOut {
						i--
						continue
					}
					if kafkaErr.Code() == kafka.ErrAllBrokersDown {
						slog.Error("[KafkaClient] All Kafka brokers are down. Aborting")
						return nil, err
					}
				}

				slog.Warn("[KafkaClient] Failed to read message, retrying...",
					slog.Int("attempt", i+1),
					slog.Int("max_retries", MAX_RETRIES),
					slog.String("error", err.Error()))

				time.Sleep(RETRY_DELAY)
				continue
			}
			return msg, nil
		}
	}
	return nil, errors.New("[KafkaClient] failed to read message after retries")
}

func CommitMessage(msg *kafka.Message) error {
	if consumer == nil {
		return errors.New("[KafkaClient] consumer has not been initialized")
	}

	_, err := consumer.CommitMessage(msg)
	if err != nil {
		slog.Warn("[KafkaClient] Failed to commit offset",
			slog.String("error", err.Error()),
			slog.Int("partition", int(msg.TopicPartition.Partition)))
		return err
	}

	return nil
}

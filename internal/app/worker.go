package app

import (
	"context"
	"fmt"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/config"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/messaging/kafka/producer"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes pending outbox events to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(postgresOptions(cfg.DB), logger)
	if err != nil {
		return err
	}
	if err := gormDB.AutoMigrate(&kafka.OutboxRecord{}); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	runUntilSignal(func(ctx context.Context) {
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Kafka.PollInterval)
	})
	logger.Info("worker stopped")
	return nil
}

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/caen"
	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/config"
	"github.com/TirlaP/lista-firme-backend/internal/events"
	"github.com/TirlaP/lista-firme-backend/internal/location"
	"github.com/TirlaP/lista-firme-backend/internal/messaging/kafka/consumer"
	"github.com/TirlaP/lista-firme-backend/internal/shared/connection"
)

// RunConsumer subscribes to registry update events and keeps the cache
// coherent with the ingestion pipeline.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka brokers are required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, 5)
	if err != nil && cfg.Cache.Backend == "redis" {
		return err
	}
	appCache := cache.New(cfg.Cache.Backend, rdb)

	companyRepo := company.NewRepository(gormDB)
	caenService := caen.NewService(caen.NewRepository(gormDB), appCache)
	locationService := location.NewService(location.NewRepository(gormDB), appCache)
	companyService := company.NewService(companyRepo, caenService, locationService, appCache)

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = events.RegistryCompanyUpdatedTopic
	}
	groupID := cfg.Kafka.GroupID
	if groupID == "" {
		groupID = "lista-firme-cache-invalidation"
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          topic,
		GroupID:        groupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRegistryUpdates(ctx, reader, companyService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	return nil
}

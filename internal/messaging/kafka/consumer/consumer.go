package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/events"
)

// ConsumeRegistryUpdates drops cached entities and derived counts whenever
// the ingestion pipeline rewrites a company. Undecodable messages are
// committed and skipped; invalidation failures leave the message
// uncommitted so it is retried.
func ConsumeRegistryUpdates(
	ctx context.Context,
	reader *kafkago.Reader,
	companyService company.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.registry_updates")
	log.Info("registry updates consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("registry updates consumer stopped")
				return
			}
			log.Error("fetch registry update message failed", zap.Error(err))
			continue
		}

		var event events.RegistryCompanyUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode registry update event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := companyService.InvalidateCompany(ctx, event.CUI); err != nil {
			log.Error("invalidate company cache failed",
				zap.Int64("cui", event.CUI),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit registry update message failed", zap.Error(err))
			continue
		}

		log.Info("company cache invalidated from registry update",
			zap.Int64("cui", event.CUI),
		)
	}
}

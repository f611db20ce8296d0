package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/config"
	"github.com/TirlaP/lista-firme-backend/internal/shared/connection"
)

const relabelBatchSize = 5000

// RunWorker executes the status relabel job: walk every company in CUI
// order, derive the status label from the registry state, bulk-update the
// rows whose label changed, then refresh the stats snapshot. The job
// repeats daily until signalled.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	repo := company.NewRepository(gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			if err := relabelStatuses(ctx, repo, logger); err != nil && ctx.Err() == nil {
				logger.Error("status relabel run failed", zap.Error(err))
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	return nil
}

func relabelStatuses(ctx context.Context, repo company.Repository, logger *zap.Logger) error {
	start := time.Now()
	var (
		afterCUI int64
		scanned  int
		changed  int64
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := repo.BatchForRelabel(ctx, afterCUI, relabelBatchSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}

		updates := make(map[int64]string)
		for i := range batch {
			c := &batch[i]
			label := company.DeriveStatus(c.DateGenerale.StareInregistrare, c.StareInactiv.StatusInactivi)
			if label != c.StareFirma {
				updates[c.CUI] = label
			}
		}

		if len(updates) > 0 {
			n, err := repo.UpdateStatuses(ctx, updates)
			if err != nil {
				return err
			}
			changed += n
		}

		scanned += len(batch)
		afterCUI = batch[len(batch)-1].CUI
	}

	if err := repo.ReplaceStatusCounts(ctx); err != nil {
		return err
	}

	logger.Info("status relabel finished",
		zap.Int("scanned", scanned),
		zap.Int64("changed", changed),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}

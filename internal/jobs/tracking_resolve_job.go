package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/shipflow/ordergateway/internal/config"
	"github.com/shipflow/ordergateway/internal/service"
	"go.uber.org/zap"
)

// TrackingResolveJob periodically re-resolves tracking numbers for orders the
// carrier left in the pending status after the creation-time polling budget
// ran out.
type TrackingResolveJob struct {
	orders   service.OrderService
	cron     *cron.Cron
	schedule string
	logger   *zap.Logger
}

func NewTrackingResolveJob(orders service.OrderService, cfg *config.Config, logger *zap.Logger) *TrackingResolveJob {
	return &TrackingResolveJob{
		orders:   orders,
		cron:     cron.New(),
		schedule: cfg.Tracking.ResolveSchedule,
		logger:   logger,
	}
}

func (j *TrackingResolveJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.orders.ResolvePendingTracking(ctx); err != nil {
			j.logger.Error("Pending tracking resolution failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Tracking resolve job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *TrackingResolveJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Tracking resolve job stopped")
}

package main

import (
	"context"

	"github.com/shipflow/ordergateway/internal/config"
	"github.com/shipflow/ordergateway/internal/database"
	"github.com/shipflow/ordergateway/internal/jobs"
	"github.com/shipflow/ordergateway/internal/repository"
	"github.com/shipflow/ordergateway/internal/service"
	"github.com/shipflow/ordergateway/pkg/eccang"
	"github.com/shipflow/ordergateway/pkg/httpclient"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			NewHTTPClient,
			NewCarrierGateway,

			repository.NewOrderRepository,
			repository.NewLabelRepository,
			service.NewOrderService,

			jobs.NewTrackingResolveJob,
		),
		fx.Invoke(runTrackingResolveJob),
	).Run()
}

func runTrackingResolveJob(job *jobs.TrackingResolveJob, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return job.Start()
		},
		OnStop: func(ctx context.Context) error {
			job.Stop()
			return nil
		},
	})
}

func NewHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Carrier.Timeout)
}

func NewCarrierGateway(cfg *config.Config, client httpclient.HTTPClient, logger *zap.Logger) eccang.Gateway {
	return eccang.NewGateway(cfg.Carrier, client, logger)
}

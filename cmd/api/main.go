package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/shipflow/ordergateway/internal/api"
	"github.com/shipflow/ordergateway/internal/api/middleware"
	v1 "github.com/shipflow/ordergateway/internal/api/v1"
	"github.com/shipflow/ordergateway/internal/config"
	"github.com/shipflow/ordergateway/internal/database"
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
			NewFiberApp,
			NewHTTPClient,
			NewCarrierGateway,

			repository.NewOrderRepository,
			repository.NewLabelRepository,
			repository.NewTransactionManager,
			service.NewOrderService,
			service.NewLabelService,

			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func NewHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Carrier.Timeout)
}

func NewCarrierGateway(cfg *config.Config, client httpclient.HTTPClient, logger *zap.Logger) eccang.Gateway {
	return eccang.NewGateway(cfg.Carrier, client, logger)
}

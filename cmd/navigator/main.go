package main

import (
	"context"
	"log/slog"
	"os"

	"saferoute/config"
	"saferoute/internal/delivery"
	"saferoute/internal/delivery/api"
	"saferoute/internal/delivery/api/middleware"
	"saferoute/internal/delivery/api/router/handler"
	"saferoute/internal/domain/service"
	"saferoute/internal/errors"
	"saferoute/internal/infra/announce"
	"saferoute/internal/infra/auth"
	logs "saferoute/internal/infra/log"
	"saferoute/internal/infra/notification"
	"saferoute/internal/infra/pubsub"
	"saferoute/internal/infra/routing/ors"
	"saferoute/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
		announce.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			ors.NewClient,
			notification.NewOptionalFirebaseService,
			newTokenVerifier,
		),
	)
}

// newTokenVerifier builds the JWT verifier only when authentication is enabled
func newTokenVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || !cfg.Auth.Enabled {
		return nil, nil
	}

	verifier, err := auth.NewJWTService(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token verifier")
	}

	return verifier, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNavigationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

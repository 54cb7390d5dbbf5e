package main

import (
	"context"
	"log/slog"
	"os"

	"vita/config"
	"vita/internal/delivery"
	"vita/internal/delivery/http"
	"vita/internal/delivery/http/middleware"
	"vita/internal/delivery/http/router/handler"
	"vita/internal/infra/auth"
	logs "vita/internal/infra/log"
	"vita/internal/infra/persistence/postgres"
	"vita/internal/infra/pubsub"
	"vita/internal/usecase/impl"

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
		injectRepo(),
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
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSnapshotRepository,
			postgres.NewTrendRepository,
			postgres.NewDiaryRepository,
			postgres.NewBodyMetricsRepository,
			postgres.NewCalorieTargetRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSnapshotService,
			impl.NewTrendService,
			impl.NewNutritionService,
			impl.NewDashboardService,
			impl.NewDiaryService,
			impl.NewBodyMetricsService,
			impl.NewCalorieTargetService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDashboardHandler,
			handler.NewDiaryHandler,
			handler.NewBodyMetricsHandler,
			handler.NewCalorieTargetHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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

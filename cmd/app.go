package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qrave1/zoomer/internal/application/config"
	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/application/metric"
	"github.com/qrave1/zoomer/internal/infra/adapters/memory"
	"github.com/qrave1/zoomer/internal/infra/adapters/postgres"
	"github.com/qrave1/zoomer/internal/infra/adapters/postgres/repository"
	"github.com/qrave1/zoomer/internal/infra/ports/http/handlers"
	"github.com/qrave1/zoomer/internal/infra/ports/http/server"
	"github.com/qrave1/zoomer/internal/usecase"
)

type repositories struct {
	rooms       usecase.RoomRepository
	occupancies usecase.OccupancyRepository
	state       usecase.StateRepository
}

func runApp() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		slog.Error("parse config", slog.Any(constant.Error, err))
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(
			slog.NewJSONHandler(
				os.Stdout,
				&slog.HandlerOptions{Level: level},
			),
		),
	)

	slog.Info("Running app", slog.Bool("debug", cfg.Debug), slog.String(constant.StoreDrv, cfg.StoreDriver))

	var repos repositories

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		repos = repositories{rooms: store.Rooms(), occupancies: store.Occupancies(), state: store.State()}

	default:
		dbConn, err := postgres.NewPostgres(ctx, &cfg.Postgres)
		if err != nil {
			slog.Error("connect to postgres", slog.Any(constant.Error, err))
			os.Exit(1)
		}
		defer dbConn.Close()

		repos = repositories{
			rooms:       repository.NewRoomRepo(dbConn),
			occupancies: repository.NewOccupancyRepo(dbConn),
			state:       repository.NewStateRepo(dbConn),
		}
	}

	roomUsecase := usecase.NewRoomUsecase(repos.rooms)
	occupancyUsecase := usecase.NewOccupancyUsecase(repos.rooms, repos.occupancies)
	stateUsecase := usecase.NewStateUsecase(repos.rooms, repos.state)

	roomHandler := handlers.NewRoomHandler(roomUsecase, stateUsecase)
	occupancyHandler := handlers.NewOccupancyHandler(occupancyUsecase)

	echoSrv := server.New(cfg, roomHandler, occupancyHandler)

	metricsSrv := metric.NewServer()

	echoSrvCh := make(chan error, 1)
	metricsSrvCh := make(chan error, 1)

	go func() {
		slog.Info("HTTP server starting", slog.String("port", cfg.Port))
		echoSrvCh <- echoSrv.Start(":" + cfg.Port)
	}()

	go func() {
		metricsSrvCh <- metricsSrv.Start(":" + cfg.MetricPort)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers due to context cancel")
	case err := <-echoSrvCh:
		slog.Error(
			"HTTP server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	case err := <-metricsSrvCh:
		slog.Error(
			"Metrics server failed",
			slog.Any(constant.Error, err),
		)
		os.Exit(1)
	}

	timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeoutCancel()

	if err := echoSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown HTTP server", slog.Any(constant.Error, err))
	}

	if err := metricsSrv.Shutdown(timeoutCtx); err != nil {
		slog.Error("Failed to gracefully shutdown metric server", slog.Any(constant.Error, err))
	}
}

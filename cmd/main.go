package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/niklvrr/DevProjects/internal/config"
	"github.com/niklvrr/DevProjects/internal/infrastructure/db"
	"github.com/niklvrr/DevProjects/internal/infrastructure/repository"
	"github.com/niklvrr/DevProjects/internal/transport"
	"github.com/niklvrr/DevProjects/internal/transport/handler"
	"github.com/niklvrr/DevProjects/internal/usecase/service"
	"github.com/niklvrr/DevProjects/internal/usecase/validation"
	"github.com/niklvrr/DevProjects/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("service stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Бд
	pool, err := db.NewDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Слои
	validator := validation.New()

	developerRepo := repository.NewDeveloperRepository(pool, log)
	projectRepo := repository.NewProjectRepository(pool, log)
	existenceRepo := repository.NewExistenceRepository(pool)

	developerService := service.NewDeveloperService(developerRepo, validator, log)
	projectService := service.NewProjectService(projectRepo, validator, log)

	router := transport.NewRouter(
		handler.NewDeveloperHandler(developerService, log),
		handler.NewProjectHandler(projectService, log),
		handler.NewHealthHandler(pool, log),
		existenceRepo,
		cfg.App.RequestTimeout,
		log,
	)

	// Сервер
	server := transport.NewServer(cfg.App.Port, router, cfg.App.RequestTimeout, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

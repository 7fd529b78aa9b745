package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invest/src/api"
	"invest/src/api/handlers"
	"invest/src/config"
	"invest/src/database"
	"invest/src/repositories"
	"invest/src/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	logger := utils.NewLogger(utils.ParseLevel(cfg.Service.LogLevel), cfg.Service.LogToFile, cfg.Service.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errC, err := run(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		logger.WithError(err).Error("Error while running")
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	pool, err := database.SetupDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewHandler(
		repositories.NewClientRepository(pool),
		repositories.NewAssetRepository(pool),
	)
	httpServer := api.NewHTTPServer(api.NewServer(cfg, handler, logger), cfg.Service)

	errC := make(chan error, 1)

	go func() {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer func() {
			pool.Close()
			cancel()
			close(errC)
		}()

		httpServer.SetKeepAlivesEnabled(false)
		if err := httpServer.Shutdown(ctxTimeout); err != nil {
			errC <- err
		}
		logger.Info("Shutdown completed")
	}()

	go func() {
		logger.WithField("port", cfg.Service.Port).Info("Starting server")

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}

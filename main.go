package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"school-activities/config"
	"school-activities/controllers"
	"school-activities/static"
	"school-activities/store"
	"school-activities/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Error loading configuration: ", err)
	}
	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		logrus.Fatal("Error configuring logger: ", err)
	}

	seed, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		logger.Fatal("Error loading activities: ", err)
	}
	catalog, err := store.New(seed)
	if err != nil {
		logger.Fatal("Error building catalog: ", err)
	}
	logger.WithField("activities", catalog.Names()).Debug("catalog seeded")

	router := controllers.NewRouter(catalog, static.FileSystem(cfg.StaticDir), logger)
	server := &http.Server{Addr: cfg.Addr(), Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Server started on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

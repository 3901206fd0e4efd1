package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-notebook/api"
	"github.com/carson-networks/finance-notebook/internal/config"
	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/operator"
	"github.com/carson-networks/finance-notebook/internal/service"
	"github.com/carson-networks/finance-notebook/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("finance-notebook starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, envConfig); err != nil {
		logger.WithError(err).Error("finance-notebook stopped with error")
		return
	}
	logger.Info("finance-notebook stopped")
}

// run wires storage, the entry store, the operator and the HTTP server, and
// blocks until ctx is done or the server fails.
func run(ctx context.Context, logger *logrus.Logger, envConfig *config.Config) error {
	slotStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).WithField("backend", envConfig.StorageBackend).Error("storage.NewStorage")
		return err
	}
	defer func() {
		if err := slotStorage.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()

	svc := service.NewService(slotStorage, logger)
	svc.Entries.Load(ctx)

	// One worker keeps every mutation on a single goroutine.
	delegator := operator.NewOperatorDelegator(svc.Entries, 1)
	delegator.Start()
	defer delegator.Stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		return httpRest.Serve(groupCtx)
	})

	return group.Wait()
}

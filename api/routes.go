package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-notebook/internal/handlers/v1/entry"
	"github.com/carson-networks/finance-notebook/internal/handlers/v1/export"
	"github.com/carson-networks/finance-notebook/internal/handlers/v1/status"
	"github.com/carson-networks/finance-notebook/internal/logging"
	"github.com/carson-networks/finance-notebook/internal/operator"
	"github.com/carson-networks/finance-notebook/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the router: /status on the plain mux and the v1 operations
// through huma.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Service.Entries)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Finance Notebook", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	entry.NewCreateEntryHandler(r.Operator).Register(api)
	entry.NewToggleEntryHandler(r.Operator).Register(api)
	entry.NewListEntriesHandler(r.Service.Entries).Register(api)
	entry.NewTotalsHandler(r.Service.Entries).Register(api)
	export.NewHandler(r.Service.Entries).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}

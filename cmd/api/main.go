package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/webhookconfig-repository/config"
	"github.com/marcelsud/webhookconfig-repository/internal/http/chi"
	"github.com/marcelsud/webhookconfig-repository/internal/provider"
	"github.com/marcelsud/webhookconfig-repository/metrics"
)

const TIMEOUT = 30 * time.Second

/* api - local test entrypoint
 * Serves the same handler over HTTP so events can be replayed without Lambda
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	logger := provider.NewLogger(cfg.LogLevel)

	exporter, err := metrics.NewOTelExporter(nil)
	if err != nil {
		logger.Error().Err(err).Msg("creating metrics exporter")
		return
	}
	defer exporter.Shutdown(context.Background())

	h := provider.NewHandler(cfg, nil, exporter)
	r := chi.Handlers(ctx, h, logger, exporter.ServeHTTP())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	logger.Info().Str("port", cfg.Port).Str("error_mode", cfg.ErrorMode).Str("read_mode", cfg.ReadMode).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("server stopped")
		return
	}
	if err := <-errShutdown; err != nil {
		logger.Error().Err(err).Msg("server shutdown")
		return
	}
	logger.Info().Msg("server stopped")
}

// shutdown drains srv once ctx is done, in-flight invocations get TIMEOUT to finish
func shutdown(srv *http.Server, ctx context.Context, errShutdown chan<- error) {
	<-ctx.Done()

	ctxTimeout, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(ctxTimeout); err != nil {
		errShutdown <- fmt.Errorf("shutting down server: %w", err)
		return
	}
	errShutdown <- nil
}

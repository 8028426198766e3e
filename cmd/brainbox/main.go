package main

import (
	"brainbox/internal/app"
	"brainbox/internal/app/deps"
	"brainbox/internal/app/services"
	dl "brainbox/internal/core/domain/logging"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const SHUTDOWN_TIMEOUT = 20 * time.Second

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)
	httpServer := app.InitHttpServer(deps, services)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		deps.Logger.Info(
			ctx,
			"HTTP server has started.",
			dl.Entry("address", httpServer.Addr),
			dl.Entry("dataDir", deps.Config.DataDir),
			dl.Entry("isTestMode", deps.Config.IsTestMode),
		)
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error(context.Background(), "HTTP server failed.", dl.Entry("err", err))
		}
	}

	shutdown(httpServer, deps, shutdownDeps)
}

func shutdown(server *http.Server, deps *deps.Deps, shutdownDeps func()) {
	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "Could not shut down HTTP server.", dl.Entry("err", err))
	}

	shutdownDeps()
	deps.Logger.Info(ctx, "HTTP server has shut down.")
}

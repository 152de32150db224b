// Package main runs the shelves HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/listenupapp/shelves-server/internal/di"
)

func main() {
	injector := di.NewContainer()
	if err := di.Serve(injector); err != nil {
		fmt.Fprintf(os.Stderr, "shelves: %v\n", err)
		os.Exit(1)
	}
	log := do.MustInvoke[*slog.Logger](injector)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutdown requested")
	// Providers shut down in reverse dependency order: HTTP, limiter, store.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("Server stopped")
}

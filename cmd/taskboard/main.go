package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/httpapi"
	"taskboard/internal/latency"
	"taskboard/internal/observability/jsonlog"
	"taskboard/internal/store/memorystore"
	"taskboard/internal/task"
)

func main() {
	logger := jsonlog.New(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Error("listen", map[string]any{"addr": cfg.Addr, "error": err.Error()})
		os.Exit(1)
	}

	if err := run(ctx, ln, cfg, logger); err != nil {
		logger.Error("server", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func newHandler(cfg config.Config, logger *jsonlog.Logger) http.Handler {
	var st *memorystore.TaskStore
	if cfg.SeedTasks {
		st = memorystore.NewSeededTaskStore(nil)
	} else {
		st = memorystore.NewTaskStore(nil)
	}

	var sim *latency.Simulator
	if cfg.Latency.Max > 0 {
		sim = latency.New(cfg.Latency, nil)
	}

	svc := task.NewService(st, sim)
	return httpapi.NewServer(svc, httpapi.Options{
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		Ready:          st,
	})
}

// run serves on ln until ctx is done, then drains in-flight requests.
func run(ctx context.Context, ln net.Listener, cfg config.Config, logger *jsonlog.Logger) error {
	srv := &http.Server{
		Handler:           newHandler(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          logger.StdLogger("http_server"),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", map[string]any{
			"addr":        ln.Addr().String(),
			"latency_min": cfg.Latency.Min.String(),
			"latency_max": cfg.Latency.Max.String(),
			"seeded":      cfg.SeedTasks,
		})
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutdown signal received", nil)

	// Stop accepting new requests; wait for in-flight with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("bye", nil)
	return nil
}

// serve exposes converted texts over a small read-only JSON API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/veda-tools/vedadiff/internal/logger"
	"github.com/veda-tools/vedadiff/internal/metrics"
	"github.com/veda-tools/vedadiff/internal/store"
	"github.com/veda-tools/vedadiff/internal/store/postgres"
	"github.com/veda-tools/vedadiff/internal/store/sqlite"
	"github.com/veda-tools/vedadiff/internal/web"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("vedadiff-serve")
	var (
		port        = fs.Int64Long("port", 8080, "HTTP server port")
		databaseURL = fs.StringLong("database-url", "", "Store URL (sqlite:// or postgres://)")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if *databaseURL == "" {
		return errors.New("database-url is required")
	}

	log := logger.New()
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	st, err := openStore(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()
	log.InfoContext(ctx, "store opened")

	// Export pool stats when the store is PostgreSQL.
	if pg, ok := st.(*postgres.Store); ok {
		go func() {
			ticker := time.NewTicker(15 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					s := pg.PoolStats()
					metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
					metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
					metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", web.NewRouter(st, log).Handler())
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	errChan := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, url string) (store.Store, error) {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.New(ctx, url)
	}
	return sqlite.New(ctx, url)
}

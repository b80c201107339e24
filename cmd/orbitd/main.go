// Command orbitd serves an orbital system over HTTP: state queries at an
// arbitrary instant, static statistics, orbit trails and a live WebSocket
// stream. System descriptions live in a SQLite catalog seeded with the
// solar system on first run.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"orbital.space/internal/catalog"
	"orbital.space/internal/server"
)

type config struct {
	addr     string
	dbPath   string
	system   string
	tick     time.Duration
	tlsHosts string
	certDir  string
}

func parseConfig() config {
	cfg := config{}

	flag.StringVar(&cfg.addr, "addr", envOr("ORBITD_ADDR", ":8080"), "listen address")
	flag.StringVar(&cfg.dbPath, "db", envOr("ORBITD_DB", "orbitd.db"), "catalog database path")
	flag.StringVar(&cfg.system, "system", envOr("ORBITD_SYSTEM", "solar"), "name of the system to serve")
	flag.DurationVar(&cfg.tick, "tick", 40*time.Millisecond, "stream frame interval")
	flag.StringVar(&cfg.tlsHosts, "tls-hosts", envOr("ORBITD_TLS_HOSTS", ""), "comma-separated hostnames to serve TLS for (empty disables TLS)")
	flag.StringVar(&cfg.certDir, "cert-dir", envOr("ORBITD_CERT_DIR", "certs"), "certificate cache directory")
	flag.Parse()

	return cfg
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func main() {
	cfg := parseConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := catalog.Open(cfg.dbPath)
	if err != nil {
		logger.Error("catalog open failed", "path", cfg.dbPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	description, err := loadSystem(store, cfg.system, logger)
	if err != nil {
		logger.Error("system load failed", "system", cfg.system, "error", err)
		os.Exit(1)
	}

	srv, err := server.New(description, logger, cfg.tick)
	if err != nil {
		logger.Error("server construction failed", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         cfg.addr,
		Handler:      srv.Handler(),
		ReadTimeout:  time.Minute,
		WriteTimeout: 0, // streams stay open indefinitely
	}

	serveErr := make(chan error, 1)
	go func() {
		if cfg.tlsHosts != "" {
			tlsConfig, err := server.SetupTLS(cfg.certDir, strings.Split(cfg.tlsHosts, ","), logger)
			if err != nil {
				serveErr <- err
				return
			}

			httpServer.TLSConfig = tlsConfig
			logger.Info("serving with TLS", "addr", cfg.addr, "system", cfg.system)
			serveErr <- httpServer.ListenAndServeTLS("", "")
			return
		}

		logger.Info("serving", "addr", cfg.addr, "system", cfg.system)
		serveErr <- httpServer.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// loadSystem fetches the named description, seeding the catalog with the
// solar system the first time it is asked for.
func loadSystem(store *catalog.Store, name string, logger *slog.Logger) (catalog.System, error) {
	description, err := store.Load(name)
	if err == nil {
		return description, nil
	}

	if errors.Is(err, catalog.ErrNotFound) && name == "solar" {
		logger.Info("seeding catalog with the solar system")

		seeded := catalog.SolarSystem()
		if err := store.Save(name, seeded); err != nil {
			return catalog.System{}, err
		}

		return seeded, nil
	}

	return catalog.System{}, err
}

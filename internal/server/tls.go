package server

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/crypto/acme/autocert"
)

// SetupTLS returns a TLS configuration backed by autocert, limited to the
// given hostnames. Certificates are cached under cacheDir across restarts.
func SetupTLS(cacheDir string, hosts []string, logger *slog.Logger) (*tls.Config, error) {
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		return nil, fmt.Errorf("create certificate cache: %w", err)
	}

	allowed := make(map[string]struct{}, len(hosts))
	for _, host := range hosts {
		allowed[host] = struct{}{}
	}

	manager := &autocert.Manager{
		Cache:  autocert.DirCache(cacheDir),
		Prompt: autocert.AcceptTOS,
		HostPolicy: func(ctx context.Context, host string) error {
			if _, ok := allowed[host]; ok {
				return nil
			}

			logger.Warn("rejecting certificate request", "host", host)
			return fmt.Errorf("host %s not configured", host)
		},
	}

	return &tls.Config{
		GetCertificate:   manager.GetCertificate,
		MinVersion:       tls.VersionTLS12,
		CurvePreferences: []tls.CurveID{tls.X25519, tls.CurveP256},
	}, nil
}

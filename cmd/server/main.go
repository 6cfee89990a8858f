package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/murphy83/wpgiftregistry/internal/auth"
	"github.com/murphy83/wpgiftregistry/internal/config"
	"github.com/murphy83/wpgiftregistry/internal/handlers"
	"github.com/murphy83/wpgiftregistry/internal/middleware"
	"github.com/murphy83/wpgiftregistry/internal/service"
	"github.com/murphy83/wpgiftregistry/internal/storage/sqlite"
	"github.com/murphy83/wpgiftregistry/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	nonces := auth.NewNonceManager(cfg.NonceSecret, cfg.NonceTTL)
	admin := auth.NewAdminAuthenticator(cfg.AdminPasswordHash)
	reservations := service.NewReservationService(store)
	registry := service.NewRegistryService(store, service.DisplaySettings{
		CurrencySymbol:          cfg.CurrencySymbol,
		CurrencySymbolPlacement: cfg.CurrencySymbolPlacement,
	})

	mux := http.NewServeMux()
	handlers.New(nonces, admin, reservations, registry).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Optionally serve the wishlist widget assets; rendering itself
	// happens client-side against the JSON read surface.
	if cfg.WebPath != "" {
		webDir, err := filepath.Abs(cfg.WebPath)
		if err != nil {
			slog.Error("Failed to resolve web path", "error", err)
			os.Exit(1)
		}
		slog.Info("Serving static files", "path", webDir)
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				http.NotFound(w, r)
				return
			}
			urlPath := r.URL.Path
			if urlPath == "/" {
				urlPath = "/index.html"
			}
			http.ServeFile(w, r, filepath.Join(webDir, filepath.Clean(urlPath)))
		})
	}

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// Wrap with h2c so proxies can speak HTTP/2 without TLS.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Gift registry server starting", "address", addr)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"apex-tracker/internal/config"
	"apex-tracker/internal/constants"
	"apex-tracker/internal/domain"
	"apex-tracker/internal/middleware"
	"apex-tracker/internal/monitoring"
	"apex-tracker/pkg/apex"
)

type SnapshotProvider interface {
	Latest() (*domain.RotationSnapshot, bool)
}

// NewHandler serves /metrics, /healthz and /rotation[?mode=ranked].
func NewHandler(snapshots SnapshotProvider, metrics *monitoring.Metrics, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/rotation", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
			return
		}
		snapshot, ok := snapshots.Latest()
		if !ok {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no rotation fetched yet"})
			return
		}

		mode := apex.ModeAll
		if q := r.URL.Query().Get("mode"); q != "" {
			parsed, err := apex.ParseMode(q)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			mode = parsed
		}

		if mode == apex.ModeAll {
			writeJSON(w, http.StatusOK, snapshot)
			return
		}
		rotation := snapshot.Rotation.Get(mode)
		if rotation == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("mode %q not in latest rotation", mode)})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":         snapshot.ID,
			"fetched_at": snapshot.FetchedAt,
			"mode":       mode,
			"rotation":   rotation,
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return middleware.RequestID(logger)(c.Handler(mux))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Register binds the watch server to the fx lifecycle.
func Register(lc fx.Lifecycle, cfg *config.Config, snapshots SnapshotProvider, metrics *monitoring.Metrics, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: NewHandler(snapshots, metrics, logger),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

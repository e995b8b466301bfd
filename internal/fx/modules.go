package fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"apex-tracker/internal/config"
	"apex-tracker/internal/logger"
	"apex-tracker/internal/monitoring"
	"apex-tracker/internal/sentry"
	"apex-tracker/internal/server"
	"apex-tracker/internal/service"
	"apex-tracker/internal/watcher"
	"apex-tracker/pkg/apex"
)

func ProvideClient(cfg *config.Config, metrics *monitoring.Metrics, logger zerolog.Logger) *apex.Client {
	return apex.New(cfg.APIKey,
		apex.WithBaseURL(cfg.BaseURL),
		apex.WithAPIVersion(cfg.APIVersion),
		apex.WithTimeout(cfg.RequestTimeout),
		apex.WithLogger(logger.With().Str("component", "apex").Logger()),
		apex.WithObserver(metrics),
	)
}

func ProvideStatsClient(c *apex.Client) service.StatsClient { return c }

func ProvideRotationSource(s *service.StatsService) watcher.RotationSource { return s }

func ProvideSnapshots(w *watcher.Watcher) server.SnapshotProvider { return w }

// RunWatcher ties the poll loop to the app lifecycle.
func RunWatcher(lc fx.Lifecycle, w *watcher.Watcher, logger zerolog.Logger) {
	var (
		cancel context.CancelFunc
		g      *errgroup.Group
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			g, ctx = errgroup.WithContext(ctx)
			g.Go(func() error { return w.Run(ctx) })
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			if err := g.Wait(); err != nil {
				logger.Error().Err(err).Msg("watcher exited with error")
				return err
			}
			return nil
		},
	})
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(monitoring.New),
	fx.Provide(sentry.New),
	// api client
	fx.Provide(ProvideClient),
	fx.Provide(ProvideStatsClient),
	// svc
	fx.Provide(service.NewStatsService),
)

var WatchModule = fx.Options(
	fx.Provide(ProvideRotationSource),
	fx.Provide(watcher.New),
	fx.Provide(ProvideSnapshots),
	fx.Invoke(RunWatcher),
	fx.Invoke(server.Register),
)

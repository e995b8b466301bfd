package sentry

import (
	"context"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"apex-tracker/internal/config"
	"apex-tracker/internal/constants"
)

const appName = "apexstats"

// Reporter forwards unexpected upstream outcomes to Sentry. It is a no-op
// when no DSN is configured.
type Reporter struct {
	enabled bool
	logger  zerolog.Logger
}

func New(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (*Reporter, error) {
	r := &Reporter{logger: logger}
	if cfg.SentryDSN == "" {
		return r, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["app"] = appName
			return event
		},
	}); err != nil {
		return nil, err
	}
	r.enabled = true

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sentry.Flush(constants.SentryFlushWait)
			return nil
		},
	})
	logger.Info().Str("environment", cfg.Environment).Msg("sentry enabled")
	return r, nil
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

func (r *Reporter) CaptureError(operation string, err error, fields map[string]any) {
	if !r.Enabled() || err == nil {
		return
	}

	sentry.CurrentHub().WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelError)
		scope.SetTag("operation", operation)
		for k, v := range fields {
			scope.SetExtra(k, v)
		}
		sentry.CurrentHub().CaptureException(err)
	})
}

package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"apex-tracker/internal/config"
	"apex-tracker/internal/domain"
	"apex-tracker/internal/monitoring"
	"apex-tracker/pkg/apex"
)

type RotationSource interface {
	Maps(ctx context.Context, mode apex.Mode, version int) (*apex.MapRotation, error)
}

// Watcher polls the full map rotation and keeps the latest good snapshot.
type Watcher struct {
	source   RotationSource
	interval time.Duration
	metrics  *monitoring.Metrics
	logger   zerolog.Logger
	now      func() time.Time
	newID    func() (string, error)

	mu     sync.RWMutex
	latest *domain.RotationSnapshot
}

func New(source RotationSource, cfg *config.Config, metrics *monitoring.Metrics, logger zerolog.Logger) *Watcher {
	return &Watcher{
		source:   source,
		interval: cfg.PollInterval,
		metrics:  metrics,
		logger:   logger.With().Str("component", "watcher").Logger(),
		now:      time.Now,
		newID:    func() (string, error) { return gonanoid.New() },
	}
}

// Run polls immediately and then every interval until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Msg("watching map rotation")

	w.Poll(ctx) //nolint:errcheck // Poll logs its own failures

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("watcher stopped")
			return nil
		case <-ticker.C:
			w.Poll(ctx) //nolint:errcheck
		}
	}
}

// Poll fetches once. A failed poll keeps the previous snapshot.
func (w *Watcher) Poll(ctx context.Context) error {
	rotation, err := w.source.Maps(ctx, apex.ModeAll, 0)
	at := w.now()
	if err != nil {
		w.metrics.RecordPoll(pollStatus(err), at, false)
		w.logger.Warn().Err(err).Msg("rotation poll failed, keeping previous snapshot")
		return err
	}

	id, err := w.newID()
	if err != nil {
		w.metrics.RecordPoll("error", at, false)
		w.logger.Warn().Err(err).Msg("snapshot id generation failed, keeping previous snapshot")
		return fmt.Errorf("failed to generate snapshot id: %w", err)
	}
	snapshot := &domain.RotationSnapshot{ID: id, FetchedAt: at, Rotation: *rotation}

	w.mu.Lock()
	previous := w.latest
	w.latest = snapshot
	w.mu.Unlock()

	w.metrics.RecordPoll(apex.StatusOK.String(), at, true)
	if previous != nil {
		w.logChanges(previous.Rotation, snapshot.Rotation)
	}
	return nil
}

func (w *Watcher) Latest() (*domain.RotationSnapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest, w.latest != nil
}

func (w *Watcher) logChanges(before, after apex.MapRotation) {
	for _, mode := range apex.Modes {
		from, to := currentMap(before.Get(mode)), currentMap(after.Get(mode))
		if from != to {
			w.logger.Info().
				Str("mode", string(mode)).
				Str("from", from).
				Str("to", to).
				Msg("map changed")
		}
	}
}

func currentMap(r *apex.ModeRotation) string {
	if r == nil || r.Current == nil {
		return ""
	}
	return r.Current.Map
}

func pollStatus(err error) string {
	var upstream *apex.UpstreamError
	var unexpected *apex.UnexpectedError
	switch {
	case errors.As(err, &upstream):
		return apex.StatusUpstreamError.String()
	case errors.As(err, &unexpected):
		return apex.StatusUnexpected.String()
	}
	return "error"
}

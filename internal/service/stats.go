package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"apex-tracker/internal/constants"
	"apex-tracker/internal/domain"
	"apex-tracker/internal/monitoring"
	"apex-tracker/internal/sentry"
	"apex-tracker/pkg/apex"
)

// StatsClient is the subset of *apex.Client the service needs.
type StatsClient interface {
	PlayerStats(ctx context.Context, username string, platform apex.Platform) apex.Result[apex.PlayerStats]
	CraftingRotation(ctx context.Context) apex.Result[apex.CraftingRotation]
	MapRotation(ctx context.Context, mode apex.Mode, version int) apex.Result[apex.MapRotation]
	StoreListing(ctx context.Context) apex.Result[apex.StoreListing]
}

type StatsService struct {
	client   StatsClient
	metrics  *monitoring.Metrics
	reporter *sentry.Reporter
	logger   zerolog.Logger
}

func NewStatsService(client StatsClient, metrics *monitoring.Metrics, reporter *sentry.Reporter, logger zerolog.Logger) *StatsService {
	return &StatsService{client: client, metrics: metrics, reporter: reporter, logger: logger}
}

func (s *StatsService) PlayerStats(ctx context.Context, name string, platform apex.Platform) (*apex.PlayerStats, error) {
	s.logger.Info().Str("name", name).Str("platform", string(platform)).Msg("getting player stats")

	res := s.client.PlayerStats(ctx, name, platform)
	if err := record(s, "player", res, map[string]any{"name": name, "platform": string(platform)}); err != nil {
		return nil, fmt.Errorf("failed to fetch player %q: %w", name, err)
	}
	return res.Data, nil
}

func (s *StatsService) Player(ctx context.Context, name string, platform apex.Platform) (*domain.PlayerSummary, error) {
	stats, err := s.PlayerStats(ctx, name, platform)
	if err != nil {
		return nil, err
	}
	return domain.NewPlayerSummary(stats), nil
}

func (s *StatsService) Crafting(ctx context.Context) (apex.CraftingRotation, error) {
	res := s.client.CraftingRotation(ctx)
	if err := record(s, "crafting", res, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch crafting rotation: %w", err)
	}
	return *res.Data, nil
}

func (s *StatsService) Maps(ctx context.Context, mode apex.Mode, version int) (*apex.MapRotation, error) {
	res := s.client.MapRotation(ctx, mode, version)
	if err := record(s, "maps", res, map[string]any{"mode": string(mode), "version": version}); err != nil {
		return nil, fmt.Errorf("failed to fetch map rotation: %w", err)
	}
	return res.Data, nil
}

func (s *StatsService) Store(ctx context.Context) (apex.StoreListing, error) {
	res := s.client.StoreListing(ctx)
	if err := record(s, "store", res, nil); err != nil {
		return nil, fmt.Errorf("failed to fetch store: %w", err)
	}
	return *res.Data, nil
}

// Overview fetches crafting, maps and store concurrently. A failing leg does
// not cancel the others; an error is returned only when every leg failed.
func (s *StatsService) Overview(ctx context.Context) (*domain.Overview, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.OverviewTimeout)
	defer cancel()

	overview := &domain.Overview{}
	var mu sync.Mutex
	fail := func(leg string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if overview.Errors == nil {
			overview.Errors = make(map[string]string)
		}
		overview.Errors[leg] = err.Error()
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		crafting, err := s.Crafting(ctx)
		if err != nil {
			fail("crafting", err)
			return nil
		}
		overview.Crafting = crafting
		return nil
	})
	g.Go(func() error {
		maps, err := s.Maps(ctx, apex.ModeAll, 0)
		if err != nil {
			fail("maps", err)
			return nil
		}
		overview.Maps = maps
		return nil
	})
	g.Go(func() error {
		store, err := s.Store(ctx)
		if err != nil {
			fail("store", err)
			return nil
		}
		overview.Store = store
		return nil
	})
	_ = g.Wait()

	if len(overview.Errors) == 3 {
		return nil, fmt.Errorf("overview unavailable: %v", overview.Errors)
	}
	s.logger.Info().Int("failed_legs", len(overview.Errors)).Msg("overview fetched")
	return overview, nil
}

func record[T any](s *StatsService, operation string, res apex.Result[T], fields map[string]any) error {
	s.metrics.RecordOutcome(operation, res.Status.String())

	event := s.logger.Info()
	switch res.Status {
	case apex.StatusOK:
		event = s.logger.Debug()
	case apex.StatusUpstreamError:
		event = s.logger.Warn().Bool("retryable", true)
	case apex.StatusUnexpected:
		event = s.logger.Error()
		s.reporter.CaptureError(operation, res.Err(), fields)
	}
	event.Str("operation", operation).
		Str("status", res.Status.String()).
		Fields(fields).
		Err(res.Err()).
		Msg("upstream call finished")

	for _, u := range res.Unknown {
		s.logger.Warn().
			Str("operation", operation).
			Str("field", u.Field).
			Str("value", u.Value).
			Msg("unknown enumeration value")
	}
	return res.Err()
}

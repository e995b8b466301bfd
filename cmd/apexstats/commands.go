package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"apex-tracker/internal/service"
	"apex-tracker/pkg/apex"
)

const usage = `usage: apexstats <command> [flags]

commands:
  player -name <name> [-platform PC|X1|PS4] [-raw]
  crafting
  maps [-mode ranked|battle_royale|arenas|arenasRanked|control|all] [-version N]
  store
  overview
  watch`

type command struct {
	name string
	run  func(ctx context.Context, svc *service.StatsService) (any, error)
}

func (c command) watch() bool { return c.name == "watch" }

func parseCommand(args []string, stderr io.Writer) (command, error) {
	if len(args) == 0 {
		return command{}, fmt.Errorf("missing command")
	}
	name, rest := args[0], args[1:]

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	switch name {
	case "player":
		player := fs.String("name", "", "player name")
		platform := fs.String("platform", string(apex.PlatformPC), "PC, X1 or PS4")
		raw := fs.Bool("raw", false, "print the full stats payload")
		if err := fs.Parse(rest); err != nil {
			return command{}, err
		}
		if strings.TrimSpace(*player) == "" {
			return command{}, fmt.Errorf("player: -name is required")
		}
		p, err := apex.ParsePlatform(*platform)
		if err != nil {
			return command{}, err
		}
		return command{name: name, run: func(ctx context.Context, svc *service.StatsService) (any, error) {
			if *raw {
				return svc.PlayerStats(ctx, *player, p)
			}
			return svc.Player(ctx, *player, p)
		}}, nil

	case "maps":
		mode := fs.String("mode", string(apex.ModeRanked), "rotation mode or all")
		version := fs.Int("version", 0, "maprotation API version (0 uses APEX_API_VERSION)")
		if err := fs.Parse(rest); err != nil {
			return command{}, err
		}
		m, err := apex.ParseMode(*mode)
		if err != nil {
			return command{}, err
		}
		return command{name: name, run: func(ctx context.Context, svc *service.StatsService) (any, error) {
			rotation, err := svc.Maps(ctx, m, *version)
			if err != nil || m == apex.ModeAll {
				return rotation, err
			}
			return rotation.Get(m), nil
		}}, nil

	case "crafting", "store", "overview", "watch":
		if err := fs.Parse(rest); err != nil {
			return command{}, err
		}
		return command{name: name, run: simpleRun(name)}, nil
	}

	return command{}, fmt.Errorf("unknown command %q", name)
}

func simpleRun(name string) func(ctx context.Context, svc *service.StatsService) (any, error) {
	switch name {
	case "crafting":
		return func(ctx context.Context, svc *service.StatsService) (any, error) { return svc.Crafting(ctx) }
	case "store":
		return func(ctx context.Context, svc *service.StatsService) (any, error) { return svc.Store(ctx) }
	case "overview":
		return func(ctx context.Context, svc *service.StatsService) (any, error) { return svc.Overview(ctx) }
	}
	return nil
}

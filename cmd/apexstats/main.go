package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"apex-tracker/internal/constants"
	fxmodules "apex-tracker/internal/fx"
	"apex-tracker/internal/service"
)

func main() {
	cmd, err := parseCommand(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if cmd.watch() {
		fx.New(
			fxmodules.Module,
			fxmodules.WatchModule,
		).Run()
		return
	}

	os.Exit(runOnce(cmd))
}

func runOnce(cmd command) int {
	var svc *service.StatsService
	app := fx.New(
		fx.NopLogger,
		fxmodules.Module,
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	out, err := cmd.run(ctx, svc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

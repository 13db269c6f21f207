package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/james-woods/format-sql/pkg/cmd"
	"github.com/james-woods/format-sql/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.NopLogger,
		// formatting large trees happens inside the start hook
		fx.StartTimeout(time.Hour),
		fx.Supply(
			os.Args,
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	)

	// a broken config file fails the graph before any command runs
	if err := app.Err(); err != nil {
		slog.Error("Error starting format-sql", "err", err.Error())
		os.Exit(1)
	}

	app.Run()
}

package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func RootApp() *cli.App {
	return &cli.App{
		Name:  "feedwatch",
		Usage: "A deduplicating registry and store for feed announcements",
		Description: `feedwatch keeps the registry of which channel follows which feed
		and the set of entries already announced on each channel, so pollers
		can ask which fetched entries are novel before posting them.

		State lives in a single SQLite database in WAL mode and is served
		over an HTTP API.

		Configuration is read from environment variables, e.g.:

		FEEDWATCH_ADDR=:8080
		FEEDWATCH_DB_PATH=data/feedwatch.db
		FEEDWATCH_LOG_LEVEL=debug
		`,
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			sweepCmd(),
			feedsCmd(),
		},
		Action: func(ctx *cli.Context) error {
			// Show help if no command is specified
			return ctx.App.Run([]string{"", "help"})
		},
	}
}

func Execute() {
	if err := RootApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

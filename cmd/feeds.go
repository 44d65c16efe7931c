package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"feedwatch/internal/config"
	"feedwatch/internal/db"
	"feedwatch/internal/logger"
	"feedwatch/internal/repository"
	"feedwatch/internal/service"
)

func feedsCmd() *cli.Command {
	return &cli.Command{
		Name:  "feeds",
		Usage: "Inspect the feed registry",
		Subcommands: []*cli.Command{
			feedsListCmd(),
		},
	}
}

func feedsListCmd() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List a guild's subscriptions",
		Description: `Prints the guild's subscriptions ordered by channel.`,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:     "guild",
				Aliases:  []string{"g"},
				Usage:    "guild whose subscriptions to list",
				EnvVars:  []string{"FEEDWATCH_GUILD"},
				Required: true,
			},
		},
		Action: func(cliCtx *cli.Context) error {
			cfg, err := config.Load(cliCtx.Context)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer database.Close()

			subscriptions := service.NewSubscriptionService(database, repository.NewFeedRepository(database), service.NewChannelLocks())
			feeds, err := subscriptions.List(cliCtx.Context, cliCtx.Int64("guild"))
			if err != nil {
				return fmt.Errorf("list subscriptions: %w", err)
			}
			if len(feeds) == 0 {
				fmt.Println("no subscriptions")
				return nil
			}
			for _, feed := range feeds {
				fmt.Printf("%d\t%s\t%s\n", feed.ChannelID, feed.Name, feed.URL)
			}
			return nil
		},
	}
}

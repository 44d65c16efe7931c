package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"feedwatch/internal/config"
	"feedwatch/internal/db"
	"feedwatch/internal/logger"
	"feedwatch/internal/repository"
	"feedwatch/internal/service"
)

func sweepCmd() *cli.Command {
	return &cli.Command{
		Name:  "sweep",
		Usage: "Remove orphaned delivery history",
		Description: `Deletes seen-entry rows whose channel no longer has a feed.

		Databases written before cascade deletion was enforced can carry
		orphaned rows; one sweep removes them.`,
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

			ctx, cancel := context.WithTimeout(cliCtx.Context, 30*time.Second)
			defer cancel()

			delivery := service.NewDeliveryService(database, repository.NewEntryRepository(database), service.NewChannelLocks())
			removed, err := delivery.SweepOrphans(ctx)
			if err != nil {
				return fmt.Errorf("sweep orphans: %w", err)
			}
			fmt.Printf("removed %d orphaned entries\n", removed)
			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"feedwatch/internal/config"
	"feedwatch/internal/db"
	"feedwatch/internal/logger"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:        "migrate",
		Usage:       "Run database migrations",
		Description: `Runs database migrations on the configured database. Will create the database if it does not exist.`,
		Action: func(cliCtx *cli.Context) error {
			cfg, err := config.Load(cliCtx.Context)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			defer database.Close()

			fmt.Println("database migrated:", cfg.DBPath)
			return nil
		},
	}
}

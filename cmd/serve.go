package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"feedwatch/internal/config"
	"feedwatch/internal/db"
	"feedwatch/internal/handler"
	transport "feedwatch/internal/http"
	"feedwatch/internal/logger"
	"feedwatch/internal/repository"
	"feedwatch/internal/scheduler"
	"feedwatch/internal/service"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the feedwatch server",
		Description: `Starts the HTTP API backed by the SQLite store. Migrations run
		on startup.

		When FEEDWATCH_SWEEP_INTERVAL is set, a background scheduler
		periodically removes delivery history left behind by channels
		that lost their feed.`,
		Action: func(cliCtx *cli.Context) error {
			ctx, stop := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.Load(ctx)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

			database, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer database.Close()

			locks := service.NewChannelLocks()
			subscriptions := service.NewSubscriptionService(database, repository.NewFeedRepository(database), locks)
			delivery := service.NewDeliveryService(database, repository.NewEntryRepository(database), locks)

			router := transport.NewRouter(
				handler.NewSubscriptionHandler(subscriptions),
				handler.NewDeliveryHandler(delivery),
				handler.NewHealthHandler(database),
				cfg.RateLimit,
			)

			var sched *scheduler.Scheduler
			if cfg.SweepInterval > 0 {
				sched = scheduler.New(delivery, cfg.SweepInterval)
				sched.Start()
			}

			g, gCtx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("server started",
					"module", "http",
					"action", "serve",
					"resource", "http",
					"result", "ok",
					"addr", cfg.Addr,
				)
				if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("start server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				// Block until the group is cancelled, then drain
				<-gCtx.Done()

				if sched != nil {
					sched.Stop()
				}
				downCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
				defer cancel()
				if err := router.Shutdown(downCtx); err != nil {
					return fmt.Errorf("shutdown server: %w", err)
				}
				return nil
			})
			return g.Wait()
		},
	}
}

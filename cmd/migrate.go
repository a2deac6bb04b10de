package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-FacilityBooking/internal/infra/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции схемы БД",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			stopCh := make(chan struct{})
			defer close(stopCh)

			db, wrapped, err := openDB(ctx, cfg, nil, stopCh, log)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Up(ctx, wrapped, cfg.Database.Driver, log)
			if err != nil {
				return err
			}

			log.Info("Migrations done, applied %d new version(s)", len(applied))
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	notificationQueue "github.com/m04kA/SMC-FacilityBooking/internal/infra/queue/notifications"
	"github.com/m04kA/SMC-FacilityBooking/internal/integrations/whatsapp"
	notificationWorker "github.com/m04kA/SMC-FacilityBooking/internal/worker/notifications"
)

func newWorkerCmd(configPath *string) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Доставлять уведомления из очереди в WhatsApp",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			metricsCollector := newMetrics(cfg, log)
			if metricsCollector != nil && metricsAddr != "" {
				mux := http.NewServeMux()
				mux.Handle(cfg.Metrics.Path, promhttp.Handler())
				srv := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
				go func() {
					if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error("Worker metrics server failed: %v", err)
					}
				}()
				defer srv.Close()
			}

			rdb, err := openRedis(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer rdb.Close()

			wa := cfg.Notifications.WhatsApp
			sender := whatsapp.NewClient(whatsapp.Config{
				BaseURL:       wa.URL,
				PhoneNumberID: wa.PhoneNumberID,
				Token:         wa.Token,
				CountryPrefix: wa.CountryPrefix,
				Language:      wa.Language,
				Timeout:       time.Duration(wa.Timeout) * time.Second,
			}, log)

			retry := notificationWorker.DefaultRetryConfig()
			if wc := cfg.Notifications.Worker; wc.MaxRetries > 0 {
				retry.MaxRetries = wc.MaxRetries
			}
			if delays := cfg.Notifications.Worker.RetryDelays(); len(delays) > 0 {
				retry.RetryDelays = delays
			}

			w := notificationWorker.NewWorker(
				notificationQueue.NewQueue(rdb, cfg.Redis.QueueKey),
				sender,
				notificationWorker.Config{
					RatePerSecond: cfg.Notifications.Worker.RatePerSecond,
					Burst:         cfg.Notifications.Worker.Burst,
					PollWait:      time.Duration(cfg.Notifications.Worker.PollWait) * time.Second,
					Retry:         retry,
				},
				metricsCollector,
				log,
			)

			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9091", "адрес для /metrics воркера (пусто - не поднимать)")
	return cmd
}

func newDeadLettersCmd(configPath *string) *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "dead-letters",
		Short: "Показать уведомления, которые не удалось доставить",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			rdb, err := openRedis(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer rdb.Close()

			queue := notificationQueue.NewQueue(rdb, cfg.Redis.QueueKey)

			pending, err := queue.Len(ctx)
			if err != nil {
				return err
			}
			letters, err := queue.DeadLetters(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pending: %d, dead (showing up to %d): %d\n", pending, limit, len(letters))
			for _, dl := range letters {
				fmt.Fprintf(out, "%s  %-12s reservation=%d phone=%s  %s\n",
					dl.FailedAt.Format(time.RFC3339), dl.Event.Kind, dl.Event.ReservationID, dl.Event.Phone, dl.Reason)
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&limit, "limit", "n", 20, "сколько записей показать")
	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	agendaSummaryHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/agenda_summary"
	blockDayHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/block_day"
	cancelBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_available_slots"
	getOperatingHoursHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_operating_hours"
	getReservationHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/list_reservations"
	rescheduleBookingHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/reschedule_booking"
	setClientEnabledHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/set_client_enabled"
	updateOperatingHoursHandler "github.com/m04kA/SMC-FacilityBooking/internal/api/handlers/update_operating_hours"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/migrations"
	notificationQueue "github.com/m04kA/SMC-FacilityBooking/internal/infra/queue/notifications"
	clientRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/client"
	hoursRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/hours"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/resource"
	clientsService "github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/eligibility"
	hoursService "github.com/m04kA/SMC-FacilityBooking/internal/service/hours"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/notifier"
	reservationsService "github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	agendaSummaryUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/agenda_summary"
	blockDayUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/block_day"
	cancelBookingUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API бронирования",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()

			log.Info("Starting SMC-FacilityBooking %s...", Version)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			metricsCollector := newMetrics(cfg, log)
			stopMetricsCh := make(chan struct{})
			defer close(stopMetricsCh)

			db, wrappedDB, err := openDB(ctx, cfg, metricsCollector, stopMetricsCh, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if migrateUp {
				if _, err := migrations.Up(ctx, wrappedDB, cfg.Database.Driver, log); err != nil {
					return err
				}
			}

			rdb, err := openRedis(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer rdb.Close()

			venueClock, err := clock.New(cfg.Booking.Timezone)
			if err != nil {
				return fmt.Errorf("failed to load timezone %q: %w", cfg.Booking.Timezone, err)
			}

			// Репозитории
			reservationRepository := reservationRepo.NewRepository(wrappedDB)
			clientRepository := clientRepo.NewRepository(wrappedDB)
			resourceRepository := resourceRepo.NewRepository(wrappedDB)
			hoursRepository := hoursRepo.NewRepository(wrappedDB)
			txMgr := txmanager.NewTransactionManager(wrappedDB)

			// Уведомления уходят в очередь Redis, доставку выполняет команда worker
			queue := notificationQueue.NewQueue(rdb, cfg.Redis.QueueKey)
			bookingNotifier := notifier.New(
				queue,
				notifier.Templates{
					Confirmation: cfg.Notifications.Templates.Confirmation,
					Cancellation: cfg.Notifications.Templates.Cancellation,
				},
				cfg.PublishTimeout(),
				cfg.Booking.SystemClientID,
				metricsCollector,
				log,
			)

			// Сервисы
			hoursSvc := hoursService.NewService(hoursRepository, cfg.Booking.HoursID, log)
			clientsSvc := clientsService.NewService(clientRepository, log)
			reservationsSvc := reservationsService.NewService(
				reservationRepository,
				clientRepository,
				bookingNotifier,
				txMgr,
				venueClock,
				cfg.Booking.CancellationWindowDays,
				metricsCollector,
				log,
			)
			checker := eligibility.NewChecker(reservationRepository, clientRepository, cfg.Booking.DailyLimit)

			// Use cases
			createBookingUseCase := createBookingUC.NewUseCase(
				checker,
				clientsSvc,
				reservationsSvc,
				bookingNotifier,
				txMgr,
				cfg.Booking.SystemClientID,
				metricsCollector,
				log,
			)
			blockDayUseCase := blockDayUC.NewUseCase(
				resourceRepository,
				reservationRepository,
				reservationsSvc,
				hoursSvc,
				txMgr,
				cfg.Booking.SystemClientID,
				cfg.Booking.SlotStepMinutes,
				metricsCollector,
				log,
			)
			cancelBookingUseCase := cancelBookingUC.NewUseCase(reservationsSvc, log)
			getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
				reservationRepository,
				hoursSvc,
				venueClock,
				cfg.Booking.SlotStepMinutes,
				log,
			)
			agendaSummaryUseCase := agendaSummaryUC.NewUseCase(clientsSvc, reservationsSvc, resourceRepository, log)

			// Handlers
			createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
			blockDay := blockDayHandler.NewHandler(blockDayUseCase, log)
			cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
			getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
			rescheduleBooking := rescheduleBookingHandler.NewHandler(reservationsSvc, log)
			listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
			getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
			agendaSummary := agendaSummaryHandler.NewHandler(agendaSummaryUseCase, log)
			setClientEnabled := setClientEnabledHandler.NewHandler(clientsSvc, log)
			getOperatingHours := getOperatingHoursHandler.NewHandler(hoursSvc, log)
			updateOperatingHours := updateOperatingHoursHandler.NewHandler(hoursSvc, log)

			r := mux.NewRouter()

			if metricsCollector != nil {
				r.Use(middleware.MetricsMiddleware(metricsCollector))
				r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
				log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
			}

			api := r.PathPrefix("/api/v1").Subrouter()

			// Публичные маршруты
			api.HandleFunc("/resources/{resourceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
			api.HandleFunc("/operating-hours", getOperatingHours.Handle).Methods(http.MethodGet)
			api.HandleFunc("/clients/by-phone/{phone}/agenda", agendaSummary.Handle).Methods(http.MethodGet)

			// Требуют X-User-ID
			protected := api.PathPrefix("").Subrouter()
			protected.Use(middleware.Auth)

			protected.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
			protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
			protected.HandleFunc("/reservations/{reservationId:[0-9]+}", cancelBooking.Handle).Methods(http.MethodDelete)
			protected.HandleFunc("/clients/{clientId}/reservations", listReservations.HandleByClient).Methods(http.MethodGet)

			// Только администратор
			adminOnly := func(h http.HandlerFunc) http.Handler { return middleware.AdminOnly(h) }

			protected.Handle("/reservations/block-day", adminOnly(blockDay.Handle)).Methods(http.MethodPost)
			protected.Handle("/reservations/{reservationId:[0-9]+}", adminOnly(rescheduleBooking.Handle)).Methods(http.MethodPut)
			protected.Handle("/establishments/{establishmentId}/reservations", adminOnly(listReservations.HandleByEstablishment)).Methods(http.MethodGet)
			protected.Handle("/resources/{resourceId}/reservations", adminOnly(listReservations.HandleByResource)).Methods(http.MethodGet)
			protected.Handle("/clients/{clientId}/enabled", adminOnly(setClientEnabled.Handle)).Methods(http.MethodPatch)
			protected.Handle("/operating-hours", adminOnly(updateOperatingHours.Handle)).Methods(http.MethodPut)

			addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
			srv := &http.Server{
				Addr:         addr,
				Handler:      r,
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
				IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("Starting server on %s", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
			}

			log.Info("Shutting down server...")

			shutdownCtx, cancelShutdown := context.WithTimeout(
				context.Background(),
				time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
			)
			defer cancelShutdown()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Server forced to shutdown: %v", err)
			}

			log.Info("Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "применить миграции перед запуском")
	return cmd
}

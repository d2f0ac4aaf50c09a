package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/complete_booking"
	createAvailabilityHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/create_availability"
	createBookingHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/create_booking"
	deleteAvailabilityHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/delete_availability"
	getAvailabilityHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/get_booking"
	getCoachBookingsHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/get_coach_bookings"
	getPlayerBookingsHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/get_player_bookings"
	rescheduleBookingHandler "github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/handlers/reschedule_booking"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/api/middleware"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/config"
	availabilityRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/ethanriley28/baseball-lessons-app-sub000/internal/infra/storage/booking"
	availabilityService "github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability"
	bookingsService "github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings"
	createBookingUC "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/reschedule_booking"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/dbmetrics"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/logger"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/metrics"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/simpletxmanager"
	"github.com/ethanriley28/baseball-lessons-app-sub000/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting baseball-lessons-app...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, bookingRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getCoachBookings := getCoachBookingsHandler.NewHandler(bookingSvc, log)
	getPlayerBookings := getPlayerBookingsHandler.NewHandler(bookingSvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Slots
	api.HandleFunc("/coaches/{coachId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Bookings
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/coaches/{coachId}/bookings", getCoachBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/players/{playerId}/bookings", getPlayerBookings.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/coaches/{coachId}/availability", createAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/coaches/{coachId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/coaches/{coachId}/availability/{availabilityId}", deleteAvailability.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

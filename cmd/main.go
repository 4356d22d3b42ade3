package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/barberlink/admin-gateway/internal/api/handlers/book_appointment"
	getAvailableSlotsHandler "github.com/barberlink/admin-gateway/internal/api/handlers/get_available_slots"
	getDayViewHandler "github.com/barberlink/admin-gateway/internal/api/handlers/get_day_view"
	getScheduleHandler "github.com/barberlink/admin-gateway/internal/api/handlers/get_schedule"
	getWeekViewHandler "github.com/barberlink/admin-gateway/internal/api/handlers/get_week_view"
	refreshScheduleHandler "github.com/barberlink/admin-gateway/internal/api/handlers/refresh_schedule"
	updateStatusHandler "github.com/barberlink/admin-gateway/internal/api/handlers/update_appointment_status"
	"github.com/barberlink/admin-gateway/internal/api/middleware"
	"github.com/barberlink/admin-gateway/internal/config"
	"github.com/barberlink/admin-gateway/internal/integrations/bookingcore"
	scheduleService "github.com/barberlink/admin-gateway/internal/service/schedule"
	bookAppointmentUC "github.com/barberlink/admin-gateway/internal/usecase/book_appointment"
	"github.com/barberlink/admin-gateway/pkg/logger"
	"github.com/barberlink/admin-gateway/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting admin-gateway...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Initialize the booking backend client
	coreClient := bookingcore.NewClient(
		cfg.BookingCore.URL,
		time.Duration(cfg.BookingCore.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		coreClient = coreClient.WithMetrics(metricsCollector)
	}
	log.Info("Booking backend client initialized (url=%s timeout=%ds)",
		cfg.BookingCore.URL, cfg.BookingCore.Timeout)

	// Initialize services
	scheduleSvc := scheduleService.NewService(coreClient, log)
	if cfg.Metrics.Enabled {
		scheduleSvc = scheduleSvc.WithMetrics(metricsCollector)
	}

	// Initialize use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(coreClient, log)

	// Initialize handlers
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	getWeekView := getWeekViewHandler.NewHandler(scheduleSvc, log)
	getDayView := getDayViewHandler.NewHandler(scheduleSvc, log)
	refreshSchedule := refreshScheduleHandler.NewHandler(scheduleSvc, log)
	updateStatus := updateStatusHandler.NewHandler(scheduleSvc, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(coreClient, log)

	// Set up router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// All dashboard routes require a bearer token, which the gateway
	// forwards to the booking backend untouched.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Schedule views ---
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/week", getWeekView.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/day", getDayView.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/refresh", refreshSchedule.Handle).Methods(http.MethodPost)

	// --- Appointments ---
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPut)

	// --- Slots ---
	protected.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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

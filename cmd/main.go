package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/m04kA/SMC-PublicBooker/internal/api"
	applyActionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/apply_action"
	createSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/delete_session"
	getCalendarHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_day_slots"
	getMonthHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_month"
	getSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_session"
	getWeekHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_week"
	submitBookingHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/submit_booking"
	submitSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/submit_session"
	"github.com/m04kA/SMC-PublicBooker/internal/api/middleware"
	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/config"
	publicCalendarClient "github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	sessionsService "github.com/m04kA/SMC-PublicBooker/internal/service/sessions"
	getDaySlotsUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	getMonthUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	getWeekSlotsUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	loadCalendarUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	submitBookingUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
	"github.com/m04kA/SMC-PublicBooker/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if v := os.Getenv("BOOKER_CONFIG"); v != "" {
		configPath = v
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-PublicBooker...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент public calendar API
	client := publicCalendarClient.NewClient(
		cfg.PublicCalendar.URL,
		time.Duration(cfg.PublicCalendar.Timeout)*time.Second,
		log,
		publicCalendarClient.WithRateLimit(cfg.PublicCalendar.RequestsPerSecond, cfg.PublicCalendar.Burst),
		publicCalendarClient.WithMetrics(metricsCollector),
	)
	log.Info("Public calendar client initialized (url=%s, timeout=%ds, rps=%.1f)",
		cfg.PublicCalendar.URL, cfg.PublicCalendar.Timeout, cfg.PublicCalendar.RequestsPerSecond)

	// Инициализируем use cases
	loadCalendarUseCase := loadCalendarUC.NewUseCase(client, log)
	getMonthUseCase := getMonthUC.NewUseCase(client, metricsCollector, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(client, metricsCollector, log)
	getWeekSlotsUseCase := getWeekSlotsUC.NewUseCase(client, metricsCollector, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(client, metricsCollector, log)

	// Инициализируем сервис сессий
	defaultLayout, err := booker.ParseLayout(cfg.Booker.DefaultLayout)
	if err != nil {
		log.Fatal("Invalid default layout: %v", err)
	}
	defaultTimeFormat, err := views.ParseTimeFormat(cfg.Booker.DefaultTimeFormat)
	if err != nil {
		log.Fatal("Invalid default time format: %v", err)
	}

	sessionSvc := sessionsService.NewService(
		loadCalendarUseCase,
		getMonthUseCase,
		getDaySlotsUseCase,
		getWeekSlotsUseCase,
		submitBookingUseCase,
		metricsCollector,
		log,
		sessionsService.Config{
			TTL:               time.Duration(cfg.Sessions.TTLMinutes) * time.Minute,
			CleanupInterval:   time.Duration(cfg.Sessions.CleanupIntervalSeconds) * time.Second,
			MaxSessions:       cfg.Sessions.MaxSessions,
			DefaultLayout:     defaultLayout,
			DefaultTimeFormat: defaultTimeFormat,
			WeekDays:          cfg.Booker.WeekDays,
		},
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	go sessionSvc.Run(ctx)

	submitLimiter := middleware.NewRateLimiter(cfg.RateLimit.SubmitPerMinute, cfg.RateLimit.Burst, log)
	go submitLimiter.Run(ctx)

	// Настраиваем роутер
	routes := api.Routes{
		GetCalendar:   getCalendarHandler.NewHandler(loadCalendarUseCase, log).Handle,
		GetMonth:      getMonthHandler.NewHandler(getMonthUseCase, log).Handle,
		GetDaySlots:   getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log).Handle,
		GetWeek:       getWeekHandler.NewHandler(getWeekSlotsUseCase, cfg.Booker.WeekDays, log).Handle,
		SubmitBooking: submitBookingHandler.NewHandler(submitBookingUseCase, log).Handle,
		CreateSession: createSessionHandler.NewHandler(sessionSvc, log).Handle,
		GetSession:    getSessionHandler.NewHandler(sessionSvc, log).Handle,
		ApplyAction:   applyActionHandler.NewHandler(sessionSvc, log).Handle,
		SubmitSession: submitSessionHandler.NewHandler(sessionSvc, log).Handle,
		DeleteSession: deleteSessionHandler.NewHandler(sessionSvc, log).Handle,
	}

	opts := api.Options{SubmitLimiter: submitLimiter}
	if cfg.Metrics.Enabled {
		opts.Metrics = metricsCollector
		opts.MetricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r := api.NewRouter(routes, opts)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи
	stop()

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

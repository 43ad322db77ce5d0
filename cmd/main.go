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
	_ "time/tzdata"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkDateHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/check_date"
	createBookingHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/get_booking"
	getDiagnosticHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/get_diagnostic"
	getDiagnosticStatusHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/get_diagnostic_status"
	getPacksHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/get_packs"
	healthHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/health"
	updateBookingStatusHandler "github.com/m04kA/nuisibook-booking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/nuisibook-booking/internal/api/middleware"
	"github.com/m04kA/nuisibook-booking/internal/calendar"
	"github.com/m04kA/nuisibook-booking/internal/config"
	bookingRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/booking"
	diagnosticRepo "github.com/m04kA/nuisibook-booking/internal/infra/storage/diagnostic"
	"github.com/m04kA/nuisibook-booking/internal/integrations/mailer"
	"github.com/m04kA/nuisibook-booking/internal/integrations/sms"
	bookingsService "github.com/m04kA/nuisibook-booking/internal/service/bookings"
	diagnosticsService "github.com/m04kA/nuisibook-booking/internal/service/diagnostics"
	healthService "github.com/m04kA/nuisibook-booking/internal/service/health"
	holidaysService "github.com/m04kA/nuisibook-booking/internal/service/holidays"
	notificationsService "github.com/m04kA/nuisibook-booking/internal/service/notifications"
	checkDateUC "github.com/m04kA/nuisibook-booking/internal/usecase/check_date"
	createBookingUC "github.com/m04kA/nuisibook-booking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/nuisibook-booking/internal/usecase/get_availability"
	"github.com/m04kA/nuisibook-booking/pkg/dbmetrics"
	"github.com/m04kA/nuisibook-booking/pkg/logger"
	"github.com/m04kA/nuisibook-booking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting nuisibook-booking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil коллектор безопасен.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Бизнес-календарь (Validate уже проверил часовой пояс и праздники)
	location, _ := cfg.Calendar.Location()
	holidays, _ := cfg.Calendar.HolidaySet()
	cal := calendar.New(holidays)

	log.Info("Calendar initialized (timezone=%s, holiday years=%v)", location, holidays.Years())

	// Проверка покрытия таблицы праздников: при старте и по расписанию
	holidayWatcher := holidaysService.NewWatcher(holidays, location, log)
	holidayWatcher.Check()
	if err := holidayWatcher.Start(cfg.Calendar.CoverageCheck); err != nil {
		log.Fatal("Failed to schedule holiday coverage check: %v", err)
	}

	// Подключаемся к базе данных. Без host сервис работает, но хранилища
	// отвечают ErrNotConfigured.
	var executor dbmetrics.DBExecutor
	if cfg.Database.Configured() {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			log.Error("Failed to ping database, continuing in degraded mode: %v", err)
		} else {
			log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
				cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		}
		cancel()

		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			executor = db
		}
	} else {
		log.Warn("Database host is empty: booking and diagnostic stores are not configured")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(executor, cfg.Database.BookingsTable)
	diagnosticRepository := diagnosticRepo.NewRepository(executor, cfg.Database.DiagnosticsTable)

	// Интеграции для уведомлений
	var emailSender notificationsService.EmailSender = mailer.NewStubClient(log)
	if cfg.SendGrid.Enabled {
		client, err := mailer.NewClient(mailer.Config{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize SendGrid client: %v", err)
		}
		emailSender = client
	}

	var smsSender notificationsService.SMSSender = sms.NewStubClient(log)
	if cfg.Twilio.Enabled {
		client, err := sms.NewClient(sms.Config{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
		}, log)
		if err != nil {
			log.Fatal("Failed to initialize Twilio client: %v", err)
		}
		smsSender = client
	}
	log.Info("Notification channels initialized (sendgrid=%t, twilio=%t)", cfg.SendGrid.Enabled, cfg.Twilio.Enabled)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, location, log)
	diagnosticSvc := diagnosticsService.NewService(diagnosticRepository, metricsCollector, diagnosticsService.Options{
		InitialDelay: cfg.Diagnostic.InitialDelayDuration(),
		PollInterval: cfg.Diagnostic.PollIntervalDuration(),
	}, log)
	healthSvc := healthService.NewService(bookingRepository, diagnosticRepository, 3*time.Second, log)
	notificationSvc := notificationsService.NewService(
		emailSender,
		smsSender,
		cfg.Twilio.ProfessionalNumber,
		location,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		notificationSvc,
		metricsCollector,
		cal,
		location,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(cal, location, log)
	checkDateUseCase := checkDateUC.NewUseCase(cal, location, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	checkDate := checkDateHandler.NewHandler(checkDateUseCase, log)
	getPacks := getPacksHandler.NewHandler(log)
	getDiagnostic := getDiagnosticHandler.NewHandler(diagnosticSvc, cfg.Diagnostic.WaitTimeoutDuration(), log)
	getDiagnosticStatus := getDiagnosticStatusHandler.NewHandler(diagnosticSvc, log)
	health := healthHandler.NewHandler(healthSvc)

	// Rate limiter на создание бронирований
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis ping failed (addr=%s, fail_open=%t): %v", cfg.Redis.Addr, cfg.RateLimit.FailOpen, err)
		}
		cancel()

		trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to parse trusted proxies: %v", err)
		}

		limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitOptions{
			Limit:          cfg.RateLimit.Limit,
			Window:         cfg.RateLimit.WindowDuration(),
			Prefix:         cfg.RateLimit.Prefix,
			FailOpen:       cfg.RateLimit.FailOpen,
			TrustedProxies: trustedProxies,
		}, metricsCollector, log)
		createBookingRoute = limiter.Middleware(createBookingRoute)
		log.Info("Rate limiting enabled on POST /bookings (limit=%d per %ds)", cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка хранилищ
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календарь ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/check", checkDate.Handle).Methods(http.MethodGet)

	// --- Пакеты ---
	api.HandleFunc("/packs", getPacks.List).Methods(http.MethodGet)
	api.HandleFunc("/packs/{slug}", getPacks.Get).Methods(http.MethodGet)

	// --- Бронирования ---
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Диагностики ---
	api.HandleFunc("/diagnostics/{slug}", getDiagnostic.Handle).Methods(http.MethodGet)
	api.HandleFunc("/diagnostics/{slug}/status", getDiagnosticStatus.Handle).Methods(http.MethodGet)

	// CORS для формы бронирования на сайте
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.CORSAllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
		gorillaHandlers.ExposedHeaders([]string{middleware.HeaderRequestID, "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"}),
	)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      cors(r),
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

	// Останавливаем сбор метрик connection pool и планировщик
	close(stopMetricsCh)
	holidayWatcher.Stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся фоновых уведомлений
	if err := notificationSvc.Shutdown(shutdownCtx); err != nil {
		log.Error("Pending notifications dropped: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}

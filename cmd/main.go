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
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/create_booking"
	getAvailabilityConfigHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_availability_config"
	getBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booking"
	getDayBookingsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_day_bookings"
	getDaySlotsHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_day_slots"
	updateAvailabilityConfigHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/update_availability_config"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	"github.com/m04kA/Salon-BookingService/internal/infra/cache"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	documentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/document"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage/filedoc"
	notifyClient "github.com/m04kA/Salon-BookingService/internal/integrations/notifyservice"
	availabilityService "github.com/m04kA/Salon-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/Salon-BookingService/internal/service/bookings"
	cancelBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_day_slots"
	reconcileUC "github.com/m04kA/Salon-BookingService/internal/usecase/reconcile_fully_booked"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
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

	log.Info("Starting Salon-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis (кеши доступности)
	rdx := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdx.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdx.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Выбираем драйвер document store для конфигурации доступности
	type documentStore interface {
		Read(ctx context.Context, key string, out interface{}) error
		Write(ctx context.Context, key string, value interface{}) error
	}
	var docStore documentStore

	switch cfg.Storage.Driver {
	case config.StorageDriverFile:
		fileStore, err := filedoc.NewStore(cfg.Storage.DocumentsDir)
		if err != nil {
			log.Fatal("Failed to initialize file document store: %v", err)
		}
		docStore = fileStore
		log.Info("Document store: file driver (dir=%s)", cfg.Storage.DocumentsDir)
	default:
		docStore = documentRepo.NewRepository(db)
		log.Info("Document store: postgres driver")
	}

	// Инициализируем репозитории и инвалидатор кешей
	bookingRepository := bookingRepo.NewRepository(db)
	invalidator := cache.NewInvalidator(rdx)

	// Хуки на смену статуса занятости дня (уведомления через NotifyService)
	var callbacks reconcileUC.Callbacks
	if cfg.NotifyService.Enabled {
		notifier := notifyClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		callbacks = reconcileUC.Callbacks{
			OnDayFullyBooked: func(ctx context.Context, date string) {
				if err := notifier.NotifyDayFullyBooked(ctx, date); err != nil {
					log.Warn("NotifyService: fully booked notification failed for date=%s: %v", date, err)
				}
			},
			OnDayReopened: func(ctx context.Context, date string) {
				if err := notifier.NotifyDayReopened(ctx, date); err != nil {
					log.Warn("NotifyService: reopened notification failed for date=%s: %v", date, err)
				}
			},
		}
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)
	}

	// Инициализируем use cases
	reconciler := reconcileUC.NewUseCase(docStore, bookingRepository, invalidator, callbacks, log)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(docStore, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, docStore, reconciler, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, reconciler, log)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(docStore, invalidator, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем handlers
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getAvailabilityConfig := getAvailabilityConfigHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityConfig := updateAvailabilityConfigHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентская запись)
	// ============================================================

	// Слоты записи на дату
	api.HandleFunc("/availability/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (админка, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Конфигурация доступности ---
	protected.HandleFunc("/availability/config", getAvailabilityConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability/config", updateAvailabilityConfig.Handle).Methods(http.MethodPut)

	// --- Бронирования (админка) ---
	protected.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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

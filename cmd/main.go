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

	cancelBookingHandler "github.com/avklm/STR-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avklm/STR-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/avklm/STR-BookingService/internal/api/handlers/get_booking"
	getBookingSummaryHandler "github.com/avklm/STR-BookingService/internal/api/handlers/get_booking_summary"
	getGuestBookingsHandler "github.com/avklm/STR-BookingService/internal/api/handlers/get_guest_bookings"
	getPropertyConfigHandler "github.com/avklm/STR-BookingService/internal/api/handlers/get_property_config"
	listAvailableRoomsHandler "github.com/avklm/STR-BookingService/internal/api/handlers/list_available_rooms"
	resetPropertyConfigHandler "github.com/avklm/STR-BookingService/internal/api/handlers/reset_property_config"
	updatePropertyConfigHandler "github.com/avklm/STR-BookingService/internal/api/handlers/update_property_config"
	"github.com/avklm/STR-BookingService/internal/api/middleware"
	"github.com/avklm/STR-BookingService/internal/config"
	bookingRepo "github.com/avklm/STR-BookingService/internal/infra/storage/booking"
	configRepo "github.com/avklm/STR-BookingService/internal/infra/storage/config"
	inventoryServiceClient "github.com/avklm/STR-BookingService/internal/integrations/inventoryservice"
	bookingsService "github.com/avklm/STR-BookingService/internal/service/bookings"
	configService "github.com/avklm/STR-BookingService/internal/service/config"
	createBookingUC "github.com/avklm/STR-BookingService/internal/usecase/create_booking"
	getBookingSummaryUC "github.com/avklm/STR-BookingService/internal/usecase/get_booking_summary"
	listAvailableRoomsUC "github.com/avklm/STR-BookingService/internal/usecase/list_available_rooms"
	"github.com/avklm/STR-BookingService/pkg/dbmetrics"
	"github.com/avklm/STR-BookingService/pkg/logger"
	"github.com/avklm/STR-BookingService/pkg/metrics"
	"github.com/avklm/STR-BookingService/pkg/simpletxmanager"
	"github.com/avklm/STR-BookingService/pkg/txmanager"
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

	log.Info("Starting STR-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем клиент InventoryService
	inventoryClient := inventoryServiceClient.NewClient(
		cfg.InventoryService.URL,
		time.Duration(cfg.InventoryService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (InventoryService=%s timeout=%ds)",
		cfg.InventoryService.URL, cfg.InventoryService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		configRepository  *configRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		configRepository = configRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		configRepository = configRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	configSvc := configService.NewService(
		configRepository,
		inventoryClient,
		log,
	)

	// Инициализируем use cases
	listAvailableRoomsUseCase := listAvailableRoomsUC.NewUseCase(
		bookingRepository,
		configSvc,
		inventoryClient,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		inventoryClient,
		txMgr,
		log,
	)

	getBookingSummaryUseCase := getBookingSummaryUC.NewUseCase(
		bookingRepository,
		configSvc,
		inventoryClient,
		log,
	)

	// Инициализируем handlers
	listAvailableRooms := listAvailableRoomsHandler.NewHandler(listAvailableRoomsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookingSummary := getBookingSummaryHandler.NewHandler(getBookingSummaryUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	getPropertyConfig := getPropertyConfigHandler.NewHandler(configSvc, log)
	updatePropertyConfig := updatePropertyConfigHandler.NewHandler(configSvc, log)
	resetPropertyConfig := resetPropertyConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение свободных комнат на запрошенные даты
	api.HandleFunc("/properties/{propertyId}/available-rooms",
		listAvailableRooms.Handle).Methods(http.MethodGet)

	// Получение конфигурации ценообразования объекта
	api.HandleFunc("/properties/{propertyId}/config",
		getPropertyConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Guest-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Детализация стоимости бронирования
	protected.HandleFunc("/bookings/{bookingId}/summary", getBookingSummary.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований гостя
	protected.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Управление объектом размещения ---
	// Обновление конфигурации ценообразования
	protected.HandleFunc("/properties/{propertyId}/config", updatePropertyConfig.Handle).Methods(http.MethodPut)

	// Сброс конфигурации к дефолтной политике
	protected.HandleFunc("/properties/{propertyId}/config", resetPropertyConfig.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
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

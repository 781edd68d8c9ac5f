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

	createBookingHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/delete_booking"
	deleteBookingsHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/delete_bookings"
	exportBookingsHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/export_bookings"
	getOverallStatusHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/get_overall_status"
	getSlotAvailabilityHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/get_slot_availability"
	getStatsHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/get_stats"
	getWeeklyStatusHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/get_weekly_status"
	listBookingsHandler "github.com/m04kA/VisitBookingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/VisitBookingService/internal/api/middleware"
	"github.com/m04kA/VisitBookingService/internal/config"
	"github.com/m04kA/VisitBookingService/internal/infra/migrate"
	bookingRepo "github.com/m04kA/VisitBookingService/internal/infra/storage/booking"
	bookingsService "github.com/m04kA/VisitBookingService/internal/service/bookings"
	exportService "github.com/m04kA/VisitBookingService/internal/service/export"
	createBookingUC "github.com/m04kA/VisitBookingService/internal/usecase/create_booking"
	getSlotAvailabilityUC "github.com/m04kA/VisitBookingService/internal/usecase/get_slot_availability"
	"github.com/m04kA/VisitBookingService/migrations"
	"github.com/m04kA/VisitBookingService/pkg/dbmetrics"
	"github.com/m04kA/VisitBookingService/pkg/logger"
	"github.com/m04kA/VisitBookingService/pkg/metrics"
	"github.com/m04kA/VisitBookingService/pkg/simpletxmanager"
	"github.com/m04kA/VisitBookingService/pkg/txmanager"
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

	log.Info("Starting VisitBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Каталог слотов провалидирован при загрузке конфигурации
	catalog, err := cfg.SlotCatalog()
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	log.Info("Slot catalog: %d slot(s), slot capacity=%d, daily capacity=%d",
		len(catalog.Slots), catalog.SlotCapacity, catalog.DailyCapacity)

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

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, migrations.FS)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrator.Version(context.Background()); err == nil {
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, catalog, log)
	exportSvc := exportService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalog,
		txMgr,
		log,
	)

	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(
		bookingRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(getSlotAvailabilityUseCase, log)
	getOverallStatus := getOverallStatusHandler.NewHandler(bookingSvc, log)
	getWeeklyStatus := getWeeklyStatusHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	deleteBookings := deleteBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)

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
	// PUBLIC ROUTES
	// ============================================================

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Общий статус сегодняшнего дня
	// Регистрируется до /slots/{date}, иначе mux сматчит "status" как дату
	api.HandleFunc("/slots/status/overall", getOverallStatus.Handle).Methods(http.MethodGet)

	// Доступность слотов на дату
	api.HandleFunc("/slots/{date}", getSlotAvailability.Handle).Methods(http.MethodGet)

	// Статус недельного ограничения посетителя
	api.HandleFunc("/user/weekly-status", getWeeklyStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// TODO: закрыть аутентификацией, когда появится общий auth сервис
	// ============================================================

	// Список бронирований за период
	api.HandleFunc("/admin/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Пакетное удаление бронирований
	api.HandleFunc("/admin/bookings", deleteBookings.Handle).Methods(http.MethodDelete)

	// Удаление одного бронирования
	api.HandleFunc("/admin/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Выгрузка бронирований в XLSX
	api.HandleFunc("/admin/export", exportBookings.Handle).Methods(http.MethodGet)

	// Агрегированная статистика
	api.HandleFunc("/admin/stats", getStats.Handle).Methods(http.MethodGet)

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

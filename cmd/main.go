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

	attachFormDataHandler "github.com/velmark/NST-BookingService/internal/api/handlers/attach_form_data"
	blockedRangesHandler "github.com/velmark/NST-BookingService/internal/api/handlers/blocked_ranges"
	cancelBookingHandler "github.com/velmark/NST-BookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/velmark/NST-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/velmark/NST-BookingService/internal/api/handlers/create_booking"
	createSlotHandler "github.com/velmark/NST-BookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/velmark/NST-BookingService/internal/api/handlers/delete_slot"
	getBookingHandler "github.com/velmark/NST-BookingService/internal/api/handlers/get_booking"
	getDaySlotsHandler "github.com/velmark/NST-BookingService/internal/api/handlers/get_day_slots"
	listBookingsHandler "github.com/velmark/NST-BookingService/internal/api/handlers/list_bookings"
	releaseBookingSlotsHandler "github.com/velmark/NST-BookingService/internal/api/handlers/release_booking_slots"
	releaseExpiredHandler "github.com/velmark/NST-BookingService/internal/api/handlers/release_expired"
	"github.com/velmark/NST-BookingService/internal/api/middleware"
	"github.com/velmark/NST-BookingService/internal/config"
	blockedRangeRepo "github.com/velmark/NST-BookingService/internal/infra/storage/blockedrange"
	bookingRepo "github.com/velmark/NST-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/velmark/NST-BookingService/internal/infra/storage/slot"
	customerServiceClient "github.com/velmark/NST-BookingService/internal/integrations/customerservice"
	notifyServiceClient "github.com/velmark/NST-BookingService/internal/integrations/notifyservice"
	allocatorService "github.com/velmark/NST-BookingService/internal/service/allocator"
	bookingsService "github.com/velmark/NST-BookingService/internal/service/bookings"
	calendarService "github.com/velmark/NST-BookingService/internal/service/calendar"
	attachFormDataUC "github.com/velmark/NST-BookingService/internal/usecase/attach_form_data"
	cancelBookingUC "github.com/velmark/NST-BookingService/internal/usecase/cancel_booking"
	confirmBookingUC "github.com/velmark/NST-BookingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/velmark/NST-BookingService/internal/usecase/create_booking"
	getDaySlotsUC "github.com/velmark/NST-BookingService/internal/usecase/get_day_slots"
	releaseExpiredUC "github.com/velmark/NST-BookingService/internal/usecase/release_expired"
	"github.com/velmark/NST-BookingService/pkg/dbmetrics"
	"github.com/velmark/NST-BookingService/pkg/logger"
	"github.com/velmark/NST-BookingService/pkg/metrics"
	"github.com/velmark/NST-BookingService/pkg/simpletxmanager"
	"github.com/velmark/NST-BookingService/pkg/txmanager"
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

	log.Info("Starting NST-BookingService...")
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

	// Инициализируем интеграционных клиентов
	customerClient := customerServiceClient.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CustomerService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.CustomerService.URL, cfg.CustomerService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository         *slotRepo.Repository
		bookingRepository      *bookingRepo.Repository
		blockedRangeRepository *blockedRangeRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		blockedRangeRepository = blockedRangeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		blockedRangeRepository = blockedRangeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Подтягиваем счетчик номеров до максимального выданного номера.
	// После восстановления из бэкапа счетчик может отставать от данных
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bookingRepository.SyncSequence(startupCtx); err != nil {
		cancelStartup()
		log.Fatal("Failed to sync booking sequence: %v", err)
	}
	cancelStartup()
	log.Info("Booking number sequence synced")

	// Инициализируем сервисы
	allocatorSvc := allocatorService.NewService(slotRepository, blockedRangeRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	calendarSvc := calendarService.NewService(
		slotRepository,
		bookingRepository,
		blockedRangeRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, allocatorSvc, txMgr, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		blockedRangeRepository,
		notifyClient,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingRepository, notifyClient, txMgr, log)
	attachFormDataUseCase := attachFormDataUC.NewUseCase(bookingRepository, customerClient, txMgr, log)
	releaseExpiredUseCase := releaseExpiredUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		time.Duration(cfg.Sweeper.MaxAgeMinutes)*time.Minute,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(slotRepository, blockedRangeRepository, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	attachFormData := attachFormDataHandler.NewHandler(attachFormDataUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createSlot := createSlotHandler.NewHandler(calendarSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(calendarSvc, log)
	releaseBookingSlots := releaseBookingSlotsHandler.NewHandler(calendarSvc, log)
	blockedRanges := blockedRangesHandler.NewHandler(calendarSvc, log)
	releaseExpired := releaseExpiredHandler.NewHandler(releaseExpiredUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Сетка слотов на день
	api.HandleFunc("/slots", getDaySlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (резервирование цепочки слотов)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Вебхук внешней формы с данными клиента
	api.HandleFunc("/bookings/{bookingId}/form-data", attachFormData.Handle).Methods(http.MethodPost)

	// Доступ клиента к своей записи по reference token
	api.HandleFunc("/bookings/by-token/{token}", getBooking.HandleByToken).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Список бронирований с фильтрами
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Подтверждение бронирования после оплаты
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования (слоты остаются занятыми)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Возврат слотов отмененного бронирования в продажу
	protected.HandleFunc("/bookings/{bookingId}/release-slots", releaseBookingSlots.Handle).Methods(http.MethodPost)

	// --- Управление календарем ---
	// Создание и удаление слотов
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// Закрытые даты
	protected.HandleFunc("/blocked-ranges", blockedRanges.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-ranges", blockedRanges.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/blocked-ranges/{rangeId}", blockedRanges.HandleDeactivate).Methods(http.MethodDelete)

	// --- Служебные операции ---
	// Ручной запуск освобождения просроченных бронирований
	internal := r.PathPrefix("/internal").Subrouter()
	internal.Use(middleware.Auth)
	internal.HandleFunc("/release-expired", releaseExpired.Handle).Methods(http.MethodPost)

	// Фоновый sweeper просроченных черновиков
	stopSweeperCh := make(chan struct{})
	if cfg.Sweeper.Enabled {
		go runSweeper(releaseExpiredUseCase, time.Duration(cfg.Sweeper.IntervalMinutes)*time.Minute, stopSweeperCh, log)
		log.Info("Expired bookings sweeper started (interval=%dm, max_age=%dm)",
			cfg.Sweeper.IntervalMinutes, cfg.Sweeper.MaxAgeMinutes)
	}

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

	// Останавливаем sweeper
	if cfg.Sweeper.Enabled {
		close(stopSweeperCh)
		log.Info("Sweeper stopped")
	}

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

// runSweeper периодически освобождает просроченные черновики бронирований
func runSweeper(uc *releaseExpiredUC.UseCase, interval time.Duration, stopCh <-chan struct{}, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			released, err := uc.Execute(context.Background())
			if err != nil {
				log.Error("Sweeper: failed to release expired bookings: %v", err)
				continue
			}
			if released > 0 {
				log.Info("Sweeper: released %d expired booking(s)", released)
			}
		case <-stopCh:
			return
		}
	}
}

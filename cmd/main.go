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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/list_reservations"
	setConfirmedHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/set_confirmed"
	updateReservationHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/update_reservation"
	whatsappWebhookHandler "github.com/pointbreak-gaming/PB-BookingService/internal/api/handlers/whatsapp_webhook"
	"github.com/pointbreak-gaming/PB-BookingService/internal/api/middleware"
	"github.com/pointbreak-gaming/PB-BookingService/internal/config"
	"github.com/pointbreak-gaming/PB-BookingService/internal/infra/sessionstore"
	reservationRepo "github.com/pointbreak-gaming/PB-BookingService/internal/infra/storage/reservation"
	whatsappClient "github.com/pointbreak-gaming/PB-BookingService/internal/integrations/whatsapp"
	"github.com/pointbreak-gaming/PB-BookingService/internal/schedule"
	conversationService "github.com/pointbreak-gaming/PB-BookingService/internal/service/conversation"
	reservationsService "github.com/pointbreak-gaming/PB-BookingService/internal/service/reservations"
	createReservationUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/get_availability"
	updateReservationUC "github.com/pointbreak-gaming/PB-BookingService/internal/usecase/update_reservation"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/logger"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/metrics"
	"github.com/pointbreak-gaming/PB-BookingService/pkg/types"
)

func main() {
	// Подхватываем .env для локальной разработки (секреты WhatsApp и админки)
	_ = godotenv.Load()

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

	log.Info("Starting PB-BookingService...")
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

	// Подключаемся к Redis (сессии WhatsApp-диалогов)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Календарь зала: часовой пояс, рабочие часы, окно бронирования
	clock, err := schedule.NewFixedZoneClock(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}

	hours := schedule.BusinessHours{
		Weekday: toSegments(cfg.Hours.Weekday),
		Weekend: toSegments(cfg.Hours.Weekend),
	}
	calendar := schedule.NewCalendar(hours, clock, cfg.Booking.WindowDays)
	validator := schedule.NewValidator(calendar, cfg.Booking.TVCapacity)
	log.Info("Calendar initialized (timezone=%s, window=%d days, tv_capacity=%d)",
		cfg.Booking.Timezone, cfg.Booking.WindowDays, cfg.Booking.TVCapacity)

	// Инициализируем репозиторий
	reservationRepository := reservationRepo.NewRepository(db)

	// Инициализируем сервисы и use cases
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		calendar,
		cfg.Booking.TVCapacity,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		calendar,
		validator,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		calendar,
		validator,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, false, log)
	adminCreateReservation := createReservationHandler.NewHandler(createReservationUseCase, true, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	setConfirmed := setConfirmedHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сайт и вебхук WhatsApp)
	// ============================================================

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования (сайт)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// WhatsApp-канал (если включен)
	if cfg.WhatsApp.Enabled {
		waClient := whatsappClient.NewClient(
			cfg.WhatsApp.APIBaseURL,
			cfg.WhatsApp.PhoneNumberID,
			cfg.WhatsApp.AccessToken,
			time.Duration(cfg.WhatsApp.Timeout)*time.Second,
			log,
		)
		sessionStore := sessionstore.New(redisClient, time.Duration(cfg.Redis.SessionTTL)*time.Minute)
		conversationSvc := conversationService.NewService(
			sessionStore,
			waClient,
			getAvailabilityUseCase,
			createReservationUseCase,
			calendar,
			log,
		)
		whatsappWebhook := whatsappWebhookHandler.NewHandler(conversationSvc, cfg.WhatsApp.VerifyToken, log)

		api.HandleFunc("/whatsapp/webhook", whatsappWebhook.HandleVerify).Methods(http.MethodGet)
		api.HandleFunc("/whatsapp/webhook", whatsappWebhook.HandleMessage).Methods(http.MethodPost)
		log.Info("WhatsApp webhook enabled (phone_number_id=%s)", cfg.WhatsApp.PhoneNumberID)
	}

	// ============================================================
	// PROTECTED ROUTES (админка, требуют токен)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth(cfg.Admin.Token))

	// Walk-in бронирование с правами админки (origin=admin, override)
	protected.HandleFunc("/reservations", adminCreateReservation.Handle).Methods(http.MethodPost)

	// Лист дня и поиск бронирований
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Карточка бронирования
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Редактирование бронирования
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Мягкая отмена / восстановление
	protected.HandleFunc("/reservations/{reservationId}/confirmed", setConfirmed.Handle).Methods(http.MethodPatch)

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

// toSegments конвертирует сегменты рабочих часов из конфига
func toSegments(segments []config.HoursSegment) []schedule.Segment {
	out := make([]schedule.Segment, len(segments))
	for i, s := range segments {
		out[i] = schedule.Segment{
			Open:  types.TimeString(s.Open),
			Close: types.TimeString(s.Close),
		}
	}
	return out
}

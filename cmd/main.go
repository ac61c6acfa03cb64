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
	"github.com/redis/go-redis/v9"

	cancelReservationHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/cancel_reservation"
	createCanteenHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/create_canteen"
	createReservationHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/create_reservation"
	getAllCanteensStatusHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/get_all_canteens_status"
	getCanteenStatusHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/get_canteen_status"
	getCanteensHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/get_canteens"
	getStudentHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/get_student"
	getStudentReservationsHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/get_student_reservations"
	registerStudentHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/register_student"
	updateCanteenHandler "github.com/m04kA/Canteen-BookingService/internal/api/handlers/update_canteen"
	"github.com/m04kA/Canteen-BookingService/internal/api/middleware"
	"github.com/m04kA/Canteen-BookingService/internal/config"
	canteenRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/canteen"
	occupancyRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/occupancy"
	reservationRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/reservation"
	studentRepo "github.com/m04kA/Canteen-BookingService/internal/infra/storage/student"
	canteensService "github.com/m04kA/Canteen-BookingService/internal/service/canteens"
	reservationsService "github.com/m04kA/Canteen-BookingService/internal/service/reservations"
	studentsService "github.com/m04kA/Canteen-BookingService/internal/service/students"
	cancelReservationUC "github.com/m04kA/Canteen-BookingService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/Canteen-BookingService/internal/usecase/create_reservation"
	getCanteenStatusUC "github.com/m04kA/Canteen-BookingService/internal/usecase/get_canteen_status"
	"github.com/m04kA/Canteen-BookingService/pkg/logger"
	"github.com/m04kA/Canteen-BookingService/pkg/metrics"
	"github.com/m04kA/Canteen-BookingService/pkg/redistx"
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

	log.Info("Starting Canteen-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  time.Duration(cfg.Redis.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Redis.OpTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Redis.OpTimeout) * time.Second,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.DialTimeout)*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping Redis: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to Redis (addr=%s, db=%d)", cfg.Redis.Addr(), cfg.Redis.DB)

	// Менеджер оптимистичных транзакций (WATCH/MULTI/EXEC)
	txMgr := redistx.NewManager(rdb, cfg.Redis.TxMaxRetries)

	// Инициализируем репозитории
	canteenRepository := canteenRepo.NewRepository(rdb)
	studentRepository := studentRepo.NewRepository(rdb)
	reservationRepository := reservationRepo.NewRepository(rdb)
	occupancyRepository := occupancyRepo.NewRepository(rdb)

	// Инициализируем сервисы
	studentSvc := studentsService.New(studentRepository, studentsService.RealTimeProvider{}, log)
	canteenSvc := canteensService.New(canteenRepository, studentRepository, canteensService.RealTimeProvider{}, log)
	reservationSvc := reservationsService.New(reservationRepository, log)

	// Инициализируем use cases
	// Контрактные интерфейсы метрик остаются nil при выключенных метриках
	var createMetrics createReservationUC.Metrics
	var cancelMetrics cancelReservationUC.Metrics
	if cfg.Metrics.Enabled {
		createMetrics = metricsCollector
		cancelMetrics = metricsCollector
	}

	createReservationUseCase := createReservationUC.NewUseCase(
		canteenRepository,
		studentRepository,
		reservationRepository,
		occupancyRepository,
		txMgr,
		createMetrics,
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationRepository,
		occupancyRepository,
		txMgr,
		cancelMetrics,
		log,
	)

	getCanteenStatusUseCase := getCanteenStatusUC.NewUseCase(
		canteenRepository,
		occupancyRepository,
		log,
	)

	// Инициализируем handlers
	registerStudent := registerStudentHandler.NewHandler(studentSvc, log)
	getStudent := getStudentHandler.NewHandler(studentSvc, log)
	getCanteens := getCanteensHandler.NewHandler(canteenSvc, log)
	createCanteen := createCanteenHandler.NewHandler(canteenSvc, log)
	updateCanteen := updateCanteenHandler.NewHandler(canteenSvc, log)
	getCanteenStatus := getCanteenStatusHandler.NewHandler(getCanteenStatusUseCase, log)
	getAllCanteensStatus := getAllCanteensStatusHandler.NewHandler(getCanteenStatusUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getStudentReservations := getStudentReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация студента
	api.HandleFunc("/students", registerStudent.Handle).Methods(http.MethodPost)

	// Список столовых
	api.HandleFunc("/canteens", getCanteens.Handle).Methods(http.MethodGet)

	// Доступность слотов всех столовых
	api.HandleFunc("/canteens/status", getAllCanteensStatus.Handle).Methods(http.MethodGet)

	// Доступность слотов одной столовой
	api.HandleFunc("/canteens/{canteenId}/status", getCanteenStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Student-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Столовые (только администраторы) ---
	protected.HandleFunc("/canteens", createCanteen.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/canteens/{canteenId}", updateCanteen.Handle).Methods(http.MethodPut)

	// --- Студенты ---
	protected.HandleFunc("/students/{studentId}", getStudent.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/students/{studentId}/reservations", getStudentReservations.Handle).Methods(http.MethodGet)

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

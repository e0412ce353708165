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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addTableHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/add_table"
	cancelReservationHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/create_reservation"
	deleteAccountHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/delete_account"
	deleteReservationHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/delete_reservation"
	deleteRestaurantHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/delete_restaurant"
	deleteTableHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/delete_table"
	forgotPasswordHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/forgot_password"
	getAccountHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/get_account"
	getAvailableSlotsHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/get_reservation"
	getRestaurantHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/get_restaurant"
	getTableHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/get_table"
	listReservationsHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/list_reservations"
	listRestaurantsHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/list_restaurants"
	listTablesHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/list_tables"
	loginHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/login"
	registerRestaurantHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/register_restaurant"
	resetPasswordHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/reset_password"
	signupHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/signup"
	updateAccountHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/update_account"
	updatePasswordHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/update_password"
	updateReservationHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/update_reservation"
	updateRestaurantHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/update_restaurant"
	updateTableHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/update_table"
	verifyEmailHandler "github.com/m04kA/RSV-ReservationService/internal/api/handlers/verify_email"
	"github.com/m04kA/RSV-ReservationService/internal/api/middleware"
	"github.com/m04kA/RSV-ReservationService/internal/config"
	"github.com/m04kA/RSV-ReservationService/internal/infra/mailer"
	reservationRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/restaurant"
	userRepo "github.com/m04kA/RSV-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/RSV-ReservationService/internal/infra/tokenstore"
	accountsService "github.com/m04kA/RSV-ReservationService/internal/service/accounts"
	reservationsService "github.com/m04kA/RSV-ReservationService/internal/service/reservations"
	restaurantsService "github.com/m04kA/RSV-ReservationService/internal/service/restaurants"
	createReservationUC "github.com/m04kA/RSV-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/RSV-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/RSV-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RSV-ReservationService/pkg/logger"
	"github.com/m04kA/RSV-ReservationService/pkg/metrics"
	"github.com/m04kA/RSV-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/RSV-ReservationService/pkg/txmanager"
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

	log.Info("Starting RSV-ReservationService...")
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

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	tokenStore := tokenstore.New(redisClient, time.Duration(cfg.Redis.TokenTTLMinutes)*time.Minute)
	mailSender := mailer.New(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.BaseURL,
	)

	schedulingCfg := cfg.Scheduling.ToDomain()
	log.Info("Scheduling config: interval=%dmin, dining=%dmin, advance=%dmin, range=%dmin, policy=%s",
		schedulingCfg.SlotIntervalMinutes, schedulingCfg.DiningDurationMinutes,
		schedulingCfg.MinAdvanceMinutes, schedulingCfg.SuggestedRangeMinutes, schedulingCfg.CapacityPolicy)

	var (
		reservationRepository *reservationRepo.Repository
		restaurantRepository  *restaurantRepo.Repository
		userRepository        *userRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	accountsSvc := accountsService.NewService(
		userRepository,
		tokenStore,
		mailSender,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	restaurantsSvc := restaurantsService.NewService(
		restaurantRepository,
		userRepository,
		txMgr,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		restaurantRepository,
		txMgr,
		schedulingCfg,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		schedulingCfg,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		restaurantRepository,
		txMgr,
		schedulingCfg,
		log,
	)

	signup := signupHandler.NewHandler(accountsSvc, log)
	verifyEmail := verifyEmailHandler.NewHandler(accountsSvc, log)
	login := loginHandler.NewHandler(accountsSvc, log)
	forgotPassword := forgotPasswordHandler.NewHandler(accountsSvc, log)
	resetPassword := resetPasswordHandler.NewHandler(accountsSvc, log)
	getAccount := getAccountHandler.NewHandler(accountsSvc, log)
	updateAccount := updateAccountHandler.NewHandler(accountsSvc, log)
	updatePassword := updatePasswordHandler.NewHandler(accountsSvc, log)
	deleteAccount := deleteAccountHandler.NewHandler(accountsSvc, log)

	registerRestaurant := registerRestaurantHandler.NewHandler(restaurantsSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantsSvc, log)
	listRestaurants := listRestaurantsHandler.NewHandler(restaurantsSvc, log)
	updateRestaurant := updateRestaurantHandler.NewHandler(restaurantsSvc, log)
	deleteRestaurant := deleteRestaurantHandler.NewHandler(restaurantsSvc, log)
	addTable := addTableHandler.NewHandler(restaurantsSvc, log)
	listTables := listTablesHandler.NewHandler(restaurantsSvc, log)
	getTable := getTableHandler.NewHandler(restaurantsSvc, log)
	updateTable := updateTableHandler.NewHandler(restaurantsSvc, log)
	deleteTable := deleteTableHandler.NewHandler(restaurantsSvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)

	auth := middleware.NewAuth(accountsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		metricsMw := middleware.NewMetrics(metricsCollector, cfg.Metrics.ServiceName)
		r.Use(metricsMw.Middleware)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes

	api.HandleFunc("/accounts/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/accounts/verify-email", verifyEmail.Handle).Methods(http.MethodGet)
	api.HandleFunc("/accounts/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/accounts/forgot-password", forgotPassword.Handle).Methods(http.MethodPost)
	api.HandleFunc("/accounts/reset-password", resetPassword.Handle).Methods(http.MethodPost)

	api.HandleFunc("/restaurants", listRestaurants.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id}/tables", listTables.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id}/tables/{tableId}", getTable.Handle).Methods(http.MethodGet)

	// Availability and booking stay public so guests can reserve a table
	// with only their contact details.
	api.HandleFunc("/restaurants/{id}/availability", getAvailableSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/restaurants/{id}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Protected routes

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Middleware)

	protected.HandleFunc("/accounts", getAccount.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/accounts", updateAccount.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/accounts", deleteAccount.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/accounts/update-password", updatePassword.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/restaurants", registerRestaurant.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{id}", updateRestaurant.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{id}", deleteRestaurant.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/restaurants/{id}/tables", addTable.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{id}/tables/{tableId}", updateTable.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{id}/tables/{tableId}", deleteTable.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)

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

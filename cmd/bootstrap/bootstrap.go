package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/issamkebdani780/Doctor-BackEnd/config"
	deliveryHttp "github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/handler"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/middleware"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/infrastructure/cache"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/infrastructure/database"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/repository"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/service"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/usecase"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/jwt"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/response"
	"github.com/issamkebdani780/Doctor-BackEnd/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App)
	app := &App{Config: cfg, log: log}
	log.Info("Configuration loaded successfully")

	response.ExposeErrors(!cfg.App.IsProduction())

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the standard logrus logger; LOG_LEVEL falls back to info
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	sessionStore := service.NewRedisSessionStore(redisClient)

	// Repositories
	doctorRepo := repository.NewDoctorRepository()
	cabinetRepo := repository.NewCabinetRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, doctorRepo, cabinetRepo, jwtService, sessionStore)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo)
	settingUsecase := usecase.NewSettingUsecase(db, log, doctorRepo, cabinetRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	settingHandler := handler.NewSettingHandler(settingUsecase, customValidator)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(db, log, jwtService, sessionStore, doctorRepo)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware := middleware.NewMetricsMiddleware()

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	metricsMiddleware.RegisterDBStats(sqlDB, cfg.DB.Name)

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		appointmentHandler,
		settingHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		metricsMiddleware,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		app.log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.log.Info("Server shutdown complete")
}

// Close closes the database and redis connections
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		_ = app.RedisClient.Close()
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/healthcompanion/api/internal/ai"
	"github.com/healthcompanion/api/internal/config"
	"github.com/healthcompanion/api/internal/handler"
	aihandler "github.com/healthcompanion/api/internal/handler/ai"
	authhandler "github.com/healthcompanion/api/internal/handler/auth"
	doctorhandler "github.com/healthcompanion/api/internal/handler/doctor"
	patienthandler "github.com/healthcompanion/api/internal/handler/patient"
	pharmacyhandler "github.com/healthcompanion/api/internal/handler/pharmacy"
	socialhandler "github.com/healthcompanion/api/internal/handler/social"
	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/repository/postgres"
	"github.com/healthcompanion/api/internal/router"
	advisoryService "github.com/healthcompanion/api/internal/service/advisory"
	authService "github.com/healthcompanion/api/internal/service/auth"
	doctorService "github.com/healthcompanion/api/internal/service/doctor"
	patientService "github.com/healthcompanion/api/internal/service/patient"
	pharmacyService "github.com/healthcompanion/api/internal/service/pharmacy"
	prescriptionService "github.com/healthcompanion/api/internal/service/prescription"
	socialService "github.com/healthcompanion/api/internal/service/social"
	pkgauth "github.com/healthcompanion/api/pkg/auth"
	"github.com/healthcompanion/api/pkg/logger"
	"github.com/healthcompanion/api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logLevel := logger.InfoLevel
	if cfg.App.Debug {
		logLevel = logger.DebugLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:      logLevel,
		TimeFormat: time.RFC3339,
		Pretty:     cfg.App.Debug,
	})
	log := *appLogger.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLogger.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		appLogger.Fatal(err, "failed to create database schema")
	}

	if err := postgres.SeedInsurancePlans(context.Background(), db); err != nil {
		appLogger.Fatal(err, "failed to seed insurance plans")
	}

	// Redis is optional; the medicine explanation cache degrades to direct
	// AI calls without it.
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			appLogger.Warn("invalid redis URL, explanation cache disabled", "error", err.Error())
		} else {
			redisClient = redis.NewClient(opts)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				appLogger.Warn("redis unreachable, explanation cache disabled", "error", err.Error())
				redisClient = nil
			}
		}
	}

	// Repositories
	base := postgres.NewBaseRepository(db)
	userRepo := postgres.NewUserRepository(base)
	patientRepo := postgres.NewPatientRepository(base)
	doctorRepo := postgres.NewDoctorRepository(base)
	pharmacyRepo := postgres.NewPharmacyRepository(base)
	medicineRepo := postgres.NewMedicineRepository(base)
	prescriptionRepo := postgres.NewPrescriptionRepository(base)
	postRepo := postgres.NewPostRepository(base)
	insuranceRepo := postgres.NewInsuranceRepository(base)

	// AI collaborator
	geminiClient := ai.NewClient(cfg.Gemini, log)
	assistant := ai.NewAssistant(geminiClient, log)

	// Services
	jwtSvc := pkgauth.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	hasher := security.NewBcryptHasher(0)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	patientSvc := patientService.NewService(patientRepo, doctorRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	pharmacySvc := pharmacyService.NewService(medicineRepo, pharmacyRepo, assistant, redisClient, log)
	socialSvc := socialService.NewService(postRepo)
	advisorySvc := advisoryService.NewService(patientRepo, insuranceRepo, assistant)
	prescriptionSvc := prescriptionService.NewService(
		prescriptionRepo,
		patientRepo,
		ai.NewStubExtractor(),
		assistant,
		cfg.Upload.Dir,
		cfg.Upload.MaxSizeMB<<20,
		log,
	)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler(db)
	authHandler := authhandler.NewHandler(authSvc)
	patientHandler := patienthandler.NewHandler(patientSvc, advisorySvc)
	doctorHandler := doctorhandler.NewHandler(doctorSvc)
	pharmacyHandler := pharmacyhandler.NewHandler(pharmacySvc)
	socialHandler := socialhandler.NewHandler(socialSvc)
	aiHandler := aihandler.NewHandler(prescriptionSvc, assistant)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		authHandler,
		patientHandler,
		doctorHandler,
		pharmacyHandler,
		socialHandler,
		aiHandler,
		h,
		log,
		router.Config{
			RateLimit:     rate.Limit(cfg.RateLimit.RPS),
			RateBurst:     cfg.RateLimit.Burst,
			CORSConfig:    corsConfig,
			MetricsPrefix: "healthapi",
			MaxUploadSize: cfg.Upload.MaxSizeMB << 20,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port, "app", cfg.App.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal(err, "server forced to shutdown")
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLogger.Error(err, "failed to close redis client")
		}
	}

	appLogger.Info("server exited properly")
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/config"
	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/handler"
	"github.com/frogcrew/api/internal/jobs"
	"github.com/frogcrew/api/internal/logger"
	"github.com/frogcrew/api/internal/middleware"
	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/repository"
	"github.com/frogcrew/api/internal/service"
	"github.com/frogcrew/api/internal/telemetry"
	"github.com/frogcrew/api/pkg/jwt"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	zapLogger, log, syncLogger := logger.New(cfg.IsProduction())
	defer func() { _ = syncLogger() }()
	slog.SetDefault(log)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Tracing
	shutdownTracing := telemetry.ShutdownFunc(telemetry.Noop)
	tracingService := ""
	if cfg.Telemetry.TracingEnabled {
		shutdownTracing, err = telemetry.Setup(nil)
		if err != nil {
			slog.Error("failed to set up tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		tracingService = cfg.Telemetry.ServiceName
	}

	// Initialize database connection
	db, err := database.Open(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogQueries:      cfg.Database.LogQueries,
	}, log)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(model.All()...); err != nil {
		slog.Error("failed to migrate database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("connected to database", slog.String("driver", cfg.Database.Driver))

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:         cfg.JWT.Secret,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	scheduleRepo := repository.NewScheduleRepository(db)
	gameRepo := repository.NewGameRepository(db)
	crewRepo := repository.NewCrewScheduleRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)

	// Live schedule and crew updates
	eventHub := service.NewEventHub(0)

	// Initialize services
	gameScheduleService := service.NewGameScheduleService(db, scheduleRepo, gameRepo).WithEvents(eventHub)
	crewScheduleService := service.NewCrewScheduleService(service.CrewScheduleServiceConfig{
		Tx:           db,
		Crews:        crewRepo,
		Games:        gameRepo,
		Members:      memberRepo,
		Availability: availabilityRepo,
		Templates:    templateRepo,
		Events:       eventHub,
	})
	templateService := service.NewTemplateService(db, templateRepo)
	memberService := service.NewMemberService(db, memberRepo, 0)
	availabilityService := service.NewAvailabilityService(db, availabilityRepo, memberRepo, gameRepo)
	invitationService := service.NewInvitationService(db, invitationRepo, memberRepo)
	authService := service.NewAuthService(memberRepo, jwtService)

	seeder := service.NewSeederService(service.SeederServiceConfig{
		Tx:        db,
		Members:   memberRepo,
		Schedules: scheduleRepo,
		Crews:     crewRepo,
		Templates: templateRepo,
		Password:  cfg.Seed.AdminPassword,
	})

	// Seed demo data into an empty database
	if cfg.Seed.OnStartup {
		seedCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		result, err := seeder.Seed(seedCtx)
		cancel()
		if err != nil {
			slog.Error("failed to seed database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if !result.Skipped {
			slog.Info("seeded database", slog.Int("records", result.Created), slog.Int64("duration_ms", result.Duration))
		}
	}

	var seedHandler *handler.AdminSeederHandler
	if cfg.Seed.AdminPassword != "" {
		seedHandler = handler.NewAdminSeederHandler(seeder)
	}

	// Background jobs
	invitationExpiry := jobs.NewInvitationExpiry(invitationService, cfg.Invitation.TTL, cfg.Invitation.PurgeInterval)
	invitationExpiry.Start()
	defer invitationExpiry.Stop()

	// Middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   cfg.RateLimit.Rate,
			Window: cfg.RateLimit.Window,
			Burst:  cfg.RateLimit.Burst,
		})
		defer rateLimiter.Stop()
	}

	router := handler.NewRouter(handler.RouterConfig{
		Logger:         zapLogger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		TracingService: tracingService,
		Auth:           authService,
		RateLimiter:    rateLimiter,
		Metrics:        middleware.NewMetrics(),
		Health:         handler.NewHealthHandler(db),
		Login:          handler.NewAuthHandler(authService),
		GameSchedules:  handler.NewGameScheduleHandler(gameScheduleService),
		CrewSchedules:  handler.NewCrewScheduleHandler(crewScheduleService),
		Templates:      handler.NewTemplateHandler(templateService),
		Members:        handler.NewMemberHandler(memberService),
		Availability:   handler.NewAvailabilityHandler(availabilityService),
		Invitations:    handler.NewInvitationHandler(invitationService),
		Seeder:         seedHandler,
		Events:         handler.NewEventsHandler(eventHub),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	// Open event streams would otherwise hold Shutdown until its deadline
	server.RegisterOnShutdown(eventHub.Close)

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(ctx); err != nil {
		slog.Error("failed to flush traces", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/frogcrew/api/internal/middleware"
	"github.com/frogcrew/api/internal/model"
)

// RouterConfig holds everything NewRouter mounts
type RouterConfig struct {
	Logger         *zap.Logger
	AllowedOrigins []string

	// TracingService names spans; tracing middleware is skipped when empty
	TracingService string

	Auth        middleware.AuthService
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	Metrics     *middleware.Metrics     // nil disables /metrics

	Health        *HealthHandler
	Login         *AuthHandler
	GameSchedules *GameScheduleHandler
	CrewSchedules *CrewScheduleHandler
	Templates     *TemplateHandler
	Members       *MemberHandler
	Availability  *AvailabilityHandler
	Invitations   *InvitationHandler
	Seeder        *AdminSeederHandler // nil disables /api/admin/seed
	Events        *EventsHandler      // nil disables /api/events
}

// NewRouter builds the gin engine with middleware and every API route
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		WriteError(c, model.NewNotFoundError("route "+c.Request.Method+" "+c.Request.URL.Path))
	})

	r.GET("/health", cfg.Health.Health)

	// Public routes are limited per client IP. Authenticated routes are
	// limited per member, so the limiter runs after Auth there.
	limit := func(g *gin.RouterGroup) {
		if cfg.RateLimiter != nil {
			g.Use(middleware.RateLimit(cfg.RateLimiter))
		}
	}

	api := r.Group("/api")

	public := api.Group("")
	limit(public)
	{
		public.POST("/auth/login", cfg.Login.Login)

		// Scheduling endpoints used by the public broadcast calendar
		public.POST("/gameSchedule", cfg.GameSchedules.CreateSchedule)
		public.POST("/gameSchedule/:scheduleId/games", cfg.GameSchedules.AddGames)
		public.GET("/gameSchedule/games", cfg.GameSchedules.GetAllGames)
		public.POST("/crewSchedule/:id", cfg.CrewSchedules.CreateCrewSchedule)
		public.DELETE("/template/:templateId", cfg.Templates.DeleteTemplate)
	}

	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.Auth))
	limit(authed)
	{
		authed.GET("/gameSchedule", cfg.GameSchedules.ListSchedules)
		authed.GET("/gameSchedule/:scheduleId", cfg.GameSchedules.GetSchedule)
		authed.DELETE("/gameSchedule/:scheduleId", cfg.GameSchedules.DeleteSchedule)
		authed.GET("/gameSchedule/games/:gameId", cfg.GameSchedules.GetGame)
		authed.PUT("/gameSchedule/games/:gameId", cfg.GameSchedules.UpdateGame)
		authed.DELETE("/gameSchedule/games/:gameId", cfg.GameSchedules.DeleteGame)

		authed.GET("/crewSchedule/:id", cfg.CrewSchedules.ListCrewSchedules)
		authed.POST("/crewSchedule/:id/assignments", cfg.CrewSchedules.AddAssignments)
		authed.POST("/crewSchedule/:id/template/:templateId", cfg.CrewSchedules.ApplyTemplate)
		authed.DELETE("/crewSchedule/schedule/:crewScheduleId", cfg.CrewSchedules.DeleteCrewSchedule)
		authed.GET("/crewList/:gameId", cfg.CrewSchedules.GetCrewList)
		authed.GET("/crewedUser/:gameId/:position", cfg.CrewSchedules.AvailableCrew)

		authed.GET("/template", cfg.Templates.ListTemplates)
		authed.GET("/template/:templateId", cfg.Templates.GetTemplate)

		authed.GET("/crewMember", cfg.Members.ListMembers)
		authed.GET("/crewMember/:memberId", cfg.Members.GetMember)

		authed.POST("/availability", cfg.Availability.Submit)
		authed.GET("/availability/:gameId", cfg.Availability.ListForGame)

		if cfg.Events != nil {
			authed.GET("/events", cfg.Events.Stream)
		}
	}

	admin := authed.Group("")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/template", cfg.Templates.CreateTemplate)
		admin.POST("/crewMember", cfg.Members.CreateMember)
		admin.PUT("/crewMember/:memberId", cfg.Members.UpdateMember)
		admin.DELETE("/crewMember/:memberId", cfg.Members.DeleteMember)
		admin.POST("/invite", cfg.Invitations.Invite)
		if cfg.Seeder != nil {
			admin.POST("/admin/seed", cfg.Seeder.Seed)
		}
	}

	return r
}

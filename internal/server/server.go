package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/auth"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/config"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/gym"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/notification"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/revenue"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/schedule"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/user"
)

type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	db           *sqlx.DB
	config       *config.Config
	notification *notification.Service
}

func New(db *sqlx.DB, cfg *config.Config, notificationService *notification.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	scheduleRepo := schedule.NewRepository(db)
	gymRepo := gym.NewRepository(db)
	userRepo := user.NewRepository(db)
	membershipRepo := membership.NewRepository(db)
	entitlements := membership.NewEntitlementService(membershipRepo, scheduleRepo)

	scheduleService := schedule.NewService(
		scheduleRepo, gymRepo, userRepo, entitlements, notificationService, cfg.DefaultSlotCapacity)

	scheduleHandler := schedule.NewHandler(scheduleService)
	gymHandler := gym.NewHandler(db, cfg.DefaultSlotCapacity)
	revenueHandler := revenue.NewHandler(revenue.NewRepository(db))

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.POST("/schedules", scheduleHandler.SubmitSchedule)
		protected.GET("/schedules", scheduleHandler.ListMySchedules)
		protected.GET("/gyms", gymHandler.ListGyms)
		protected.GET("/gyms/:gymID/availability", gymHandler.SlotAvailability)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.GET("/gyms/:gymID/schedules", scheduleHandler.ListGymSchedules)
		admin.GET("/gyms/:gymID/revenue", revenueHandler.GymRevenue)
		admin.GET("/notifications/queue", NotificationQueue(notificationService))
	}

	return &Server{
		router:       router,
		db:           db,
		config:       cfg,
		notification: notificationService,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

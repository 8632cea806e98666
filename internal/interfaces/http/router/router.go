package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quantivo/backend/internal/infrastructure/auth"
	"github.com/quantivo/backend/internal/infrastructure/logger"
	"github.com/quantivo/backend/internal/interfaces/http/handler"
	"github.com/quantivo/backend/internal/interfaces/http/middleware"
)

// Dependencies holds everything the HTTP router needs to wire routes.
type Dependencies struct {
	AuthHandler   *handler.AuthHandler
	ItemHandler   *handler.ItemHandler
	OrderHandler  *handler.OrderHandler
	ReportHandler *handler.ReportHandler
	SystemHandler *handler.SystemHandler

	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Logger         *zap.Logger

	CORS        middleware.CORSConfig
	MaxBodySize int64

	// APILimiter throttles authenticated traffic; AuthLimiter guards the
	// credential endpoints with a tighter budget. Either may be nil.
	APILimiter  *middleware.RateLimiter
	AuthLimiter *middleware.RateLimiter
}

// Setup attaches middleware and all API routes to the engine.
func Setup(engine *gin.Engine, deps Dependencies) {
	middleware.SetupValidator()

	maxBody := deps.MaxBodySize
	if maxBody <= 0 {
		maxBody = middleware.DefaultBodyLimit
	}

	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORSWithConfig(deps.CORS))
	engine.Use(middleware.Secure())
	engine.Use(middleware.BodyLimit(maxBody))
	engine.Use(logger.GinMiddleware(deps.Logger))
	engine.Use(logger.Recovery(deps.Logger))

	engine.GET("/health", deps.SystemHandler.Health)

	jwtCfg := middleware.DefaultJWTConfig(deps.JWTService)
	jwtCfg.TokenBlacklist = deps.TokenBlacklist
	jwtCfg.Logger = deps.Logger

	api := engine.Group("/api/v1")
	// The limiter runs first so unauthenticated floods are throttled
	// before any token work.
	if deps.APILimiter != nil {
		api.Use(middleware.RateLimit(deps.APILimiter))
	}
	api.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	registerAuthRoutes(api, deps)
	registerItemRoutes(api, deps.ItemHandler)
	registerOrderRoutes(api, deps.OrderHandler)
	registerReportRoutes(api, deps.ReportHandler)
}

func registerAuthRoutes(api *gin.RouterGroup, deps Dependencies) {
	authGroup := api.Group("/auth")

	// Credential endpoints sit behind the stricter limiter; they are on
	// the JWT skip list so the limiter is their only gate.
	public := authGroup.Group("")
	if deps.AuthLimiter != nil {
		public.Use(middleware.AuthRateLimit(deps.AuthLimiter))
	}
	public.POST("/register", deps.AuthHandler.Register)
	public.POST("/login", deps.AuthHandler.Login)
	public.POST("/refresh", deps.AuthHandler.RefreshToken)

	authGroup.POST("/logout", deps.AuthHandler.Logout)
	authGroup.GET("/me", deps.AuthHandler.Me)
}

func registerItemRoutes(api *gin.RouterGroup, h *handler.ItemHandler) {
	items := api.Group("/items")
	items.POST("", h.Create)
	items.GET("", h.List)
	items.GET("/:id", h.Get)
	items.PUT("/:id", h.Update)
	items.DELETE("/:id", h.Delete)
}

func registerOrderRoutes(api *gin.RouterGroup, h *handler.OrderHandler) {
	orders := api.Group("/orders")
	orders.POST("", h.Create)
	orders.GET("", h.List)
	orders.GET("/:id", h.Get)
}

func registerReportRoutes(api *gin.RouterGroup, h *handler.ReportHandler) {
	reports := api.Group("/reports")
	reports.GET("/summary", h.Summary)
	reports.GET("/chart", h.Chart)
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/handler"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Notice       *handler.NoticeHandler
	Bulletin     *handler.BulletinHandler
	Material     *handler.MaterialHandler
	Contact      *handler.ContactHandler
	AdminMessage *handler.AdminMessageHandler
	Dashboard    *handler.DashboardHandler
	Setting      *handler.SettingHandler
	Bot          *handler.BotHandler
	WS           *handler.WSHandler
	System       *handler.SystemHandler
}

// Limiters holds the per-route-group rate limiters.
type Limiters struct {
	Contact *middleware.RateLimiter
	Bot     *middleware.RateLimiter
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	tokens middleware.TokenValidator,
	handlers *Handlers,
	limiters *Limiters,
	cfg *config.Config,
	log zerolog.Logger,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Retry-After"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())
	router.Use(response.AccessLog(log))

	router.Use(middleware.Brotli())

	router.GET("/health", handlers.System.Health)
	router.GET("/ready", handlers.System.Ready)

	// ─── 0. Public Site Content (No Auth) ──────────────────────────────
	publicAPI := router.Group("/api/v1/public")
	publicAPI.Use(middleware.CacheControl(300))
	{
		publicAPI.GET("/settings", handlers.Setting.GetPublicSettings)
		publicAPI.GET("/gallery", handlers.Setting.GetGallery)
	}

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(middleware.NoStore())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
		auth.GET("/me", middleware.RequireJWT(tokens), handlers.Auth.Me)
	}

	// ─── 2. Content Pages (Identity Optional) ──────────────────────────
	// Every request carries the caller, when known, down to the row-level
	// policies in the database.
	api := router.Group("/api/v1")
	api.Use(middleware.OptionalJWT(tokens), middleware.NoStore())
	{
		api.GET("/notices", handlers.Notice.List)
		api.GET("/bulletin", handlers.Bulletin.List)
		api.GET("/materials", handlers.Material.List)
		api.POST("/materials/:id/open", handlers.Material.Open)
		api.POST("/contacts", limiters.Contact.Middleware(), handlers.Contact.Submit)

		api.GET("/admin/messages", handlers.AdminMessage.List)
		api.GET("/admin/dashboard", handlers.Dashboard.GetDashboardData)
	}

	// ─── 3. Bot (Rate Limited) ─────────────────────────────────────────
	bot := router.Group("/api/v1/bot")
	bot.Use(middleware.NoStore())
	{
		bot.POST("/sessions", limiters.Bot.Middleware(), handlers.Bot.StartSession)
		bot.GET("/sessions/:id", handlers.Bot.GetSession)
		bot.POST("/sessions/:id/messages", limiters.Bot.Middleware(), handlers.Bot.Send)
	}

	// ─── 4. WebSocket Group ────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.OptionalJWT(tokens))
	{
		ws.GET("/bot", handlers.WS.BotStream)
	}

	return router
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/ietdavv/iet-portal/internal/chat"
	"github.com/ietdavv/iet-portal/internal/config"
	"github.com/ietdavv/iet-portal/internal/database"
	"github.com/ietdavv/iet-portal/internal/handler"
	"github.com/ietdavv/iet-portal/internal/logger"
	"github.com/ietdavv/iet-portal/internal/middleware"
	"github.com/ietdavv/iet-portal/internal/notify"
	"github.com/ietdavv/iet-portal/internal/repository"
	"github.com/ietdavv/iet-portal/internal/router"
	"github.com/ietdavv/iet-portal/internal/service"
	"github.com/ietdavv/iet-portal/internal/validator"
	"github.com/ietdavv/iet-portal/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting IET portal backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	loc, err := time.LoadLocation(cfg.SiteTimezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.SiteTimezone).Msg("Unknown timezone, using UTC")
		loc = time.UTC
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	noticeRepo := repository.NewNoticeRepository(pool)
	bulletinRepo := repository.NewBulletinRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Contact Notifications ─────────────────────────────────────────
	var sender notify.Sender
	if cfg.ResendAPIKey != "" {
		sender = notify.NewResendSender(cfg.ResendAPIKey, cfg.ContactNotifyFrom, cfg.ContactNotifyTo, log)
	} else {
		log.Warn().Msg("RESEND_API_KEY not set, contact notifications are logged only")
		sender = notify.NewNoopSender(log)
	}
	notifyWorker := worker.NewContactNotifyWorker(rdb, sender, log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, roleRepo, log)
	roleGate := service.NewRoleGate(roleRepo, log)
	noticeService := service.NewNoticeService(noticeRepo, loc, log)
	bulletinService := service.NewBulletinService(bulletinRepo, log)
	materialService := service.NewMaterialService(materialRepo, log)
	contactService := service.NewContactService(contactRepo, notifyWorker, log)
	adminMessageService := service.NewAdminMessageService(roleGate, contactRepo, log)
	dashboardService := service.NewDashboardService(roleGate, dashboardRepo, log)
	settingService := service.NewSettingService(settingRepo, rdb, log)
	relay := chat.NewFunctionRelay(cfg.BotFunctionURL, cfg.BotFunctionKey, cfg.BotTimeout)
	botService := service.NewBotService(chat.NewRedisStore(rdb, cfg.BotSessionTTL, cfg.BotTimeout), relay, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Notice:       handler.NewNoticeHandler(noticeService),
		Bulletin:     handler.NewBulletinHandler(bulletinService),
		Material:     handler.NewMaterialHandler(materialService),
		Contact:      handler.NewContactHandler(contactService),
		AdminMessage: handler.NewAdminMessageHandler(adminMessageService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Setting:      handler.NewSettingHandler(settingService),
		Bot:          handler.NewBotHandler(botService),
		WS:           handler.NewWSHandler(botService, log, cfg.AllowedOrigins),
		System:       handler.NewSystemHandler(pool, rdb, log),
	}

	limiters := &router.Limiters{
		Contact: middleware.NewRateLimiter(cfg.ContactRatePerMinute, time.Minute),
		Bot:     middleware.NewRateLimiter(cfg.BotRatePerMinute, time.Minute),
	}
	defer limiters.Contact.Stop()
	defer limiters.Bot.Stop()

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	var workers sync.WaitGroup

	workers.Add(1)
	go func() {
		defer workers.Done()
		notifyWorker.Start(workerCtx)
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, limiters, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests. Bot replies can take up to the
	// relay timeout, so give in-flight requests a few seconds.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for the queue to drain.
	workerCancel()
	workers.Wait()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

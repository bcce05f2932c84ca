package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ietdavv/iet-portal/internal/response"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const readinessTimeout = 2 * time.Second

// SystemHandler reports process health and dependency reachability.
type SystemHandler struct {
	pool      *pgxpool.Pool
	rdb       *redis.Client
	startTime time.Time
	log       zerolog.Logger
}

func NewSystemHandler(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		pool:      pool,
		rdb:       rdb,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type healthStatus struct {
	Status     string            `json:"status"`
	Uptime     string            `json:"uptime"`
	GoVersion  string            `json:"go_version"`
	Goroutines int               `json:"goroutines"`
	Checks     map[string]string `json:"checks,omitempty"`
}

// Health godoc
// GET /health
// Liveness: answers as long as the process serves requests.
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, h.status("ok", nil))
}

// Ready godoc
// GET /ready
// Readiness: pings PostgreSQL and Redis.
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"postgres": "ok", "redis": "ok"}
	healthy := true

	if err := h.pool.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("postgres ping failed")
		checks["postgres"] = "unreachable"
		healthy = false
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		h.log.Warn().Err(err).Msg("redis ping failed")
		checks["redis"] = "unreachable"
		healthy = false
	}

	if !healthy {
		response.FailWithData(c, http.StatusServiceUnavailable, response.ErrInternal, h.status("degraded", checks))
		return
	}
	response.Success(c, http.StatusOK, h.status("ok", checks))
}

func (h *SystemHandler) status(s string, checks map[string]string) healthStatus {
	return healthStatus{
		Status:     s,
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		Checks:     checks,
	}
}

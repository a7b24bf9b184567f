package handler

import (
	"context"
	"time"

	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache domain.Cache
}

// NewHealthHandler builds the health check. cache may be nil.
func NewHealthHandler(db Pinger, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Reports database and cache reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Checks: map[string]string{}}
	status := fiber.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		logger.Get().Warn("Health: database ping failed", zap.Error(err))
		resp.Checks["database"] = "down"
		resp.Status = "unavailable"
		status = fiber.StatusServiceUnavailable
	} else {
		resp.Checks["database"] = "up"
	}

	if h.cache != nil {
		// The cache is optional, so a failure degrades but does not fail the check.
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health: cache ping failed", zap.Error(err))
			resp.Checks["cache"] = "down"
			if status == fiber.StatusOK {
				resp.Status = "degraded"
			}
		} else {
			resp.Checks["cache"] = "up"
		}
	}

	return c.Status(status).JSON(resp)
}

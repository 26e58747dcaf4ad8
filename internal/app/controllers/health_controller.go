package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/interconnect/backend/internal/app/models/dto"
	"github.com/interconnect/backend/internal/middleware"
	"github.com/interconnect/backend/internal/pkg/apperrors"
)

// HealthController reports whether the store is reachable
type HealthController struct {
	driver string
	ping   func(ctx context.Context) error
}

// NewHealthController creates a new HealthController. ping may be nil for
// stores that are always reachable.
func NewHealthController(driver string, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{driver: driver, ping: ping}
}

// Health answers liveness probes
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.ping != nil {
		if err := c.ping(ctx.Request.Context()); err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewStoreError("database ping failed", err))
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: c.driver})
}

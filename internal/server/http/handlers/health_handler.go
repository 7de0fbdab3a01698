package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/server/http/dto"
)

// HealthHandler reports liveness of the storage backend.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler creates HealthHandler instance.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/server/http/dto"
)

// DeliveryHandler serves downloads and manages links.
type DeliveryHandler struct {
	facade DeliveryFacade
}

// NewDeliveryHandler creates DeliveryHandler instance.
func NewDeliveryHandler(facade DeliveryFacade) *DeliveryHandler {
	return &DeliveryHandler{facade: facade}
}

// Redeem handles GET /api/downloads/:key.
func (h *DeliveryHandler) Redeem(c *gin.Context) {
	redemption, err := h.facade.Redeem(c.Request.Context(), c.Param("key"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err)
		return
	}

	link := redemption.Link
	c.JSON(http.StatusOK, dto.RedemptionResponse{
		OrderID:       link.OrderID,
		Resource:      redemption.Log.Resource,
		DownloadCount: link.DownloadCount,
		Remaining:     link.Remaining(),
		ExpiresAt:     link.ExpiresAt,
	})
}

// Links handles GET /api/admin/links.
func (h *DeliveryHandler) Links(c *gin.Context) {
	links, err := h.facade.Links(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if links == nil {
		links = []model.DownloadLink{}
	}
	c.JSON(http.StatusOK, links)
}

// Create handles POST /api/admin/orders/:id/links.
func (h *DeliveryHandler) Create(c *gin.Context) {
	link, err := h.facade.CreateLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Deactivate handles POST /api/admin/links/:id/deactivate.
func (h *DeliveryHandler) Deactivate(c *gin.Context) {
	link, err := h.facade.DeactivateLink(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Logs handles GET /api/admin/logs.
func (h *DeliveryHandler) Logs(c *gin.Context) {
	logs, err := h.facade.AccessLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if logs == nil {
		logs = []model.AccessLog{}
	}
	c.JSON(http.StatusOK, logs)
}

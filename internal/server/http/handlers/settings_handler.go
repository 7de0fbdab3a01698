package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/server/http/dto"
)

// SettingsHandler exposes payment settings to the admin.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler creates SettingsHandler instance.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// PayPal handles GET /api/admin/settings/paypal.
func (h *SettingsHandler) PayPal(c *gin.Context) {
	settings, err := h.facade.PayPalSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdatePayPal handles PUT /api/admin/settings/paypal.
func (h *SettingsHandler) UpdatePayPal(c *gin.Context) {
	var req dto.PayPalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := h.facade.UpdatePayPalSettings(c.Request.Context(), req.Settings())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/server/http/dto"
	"github.com/tradsolution/storefront/internal/server/http/middleware"
)

// AuthHandler processes admin login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.facade.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Logout handles POST /api/admin/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

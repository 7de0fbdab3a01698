package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/server/http/dto"
	"github.com/tradsolution/storefront/internal/server/http/middleware"
	"github.com/tradsolution/storefront/internal/usecase"
)

// CatalogHandler serves the public catalog and the root view.
type CatalogHandler struct {
	catalog CatalogFacade
	auth    AuthFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(catalog CatalogFacade, auth AuthFacade) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, auth: auth}
}

// Root handles GET /. The portal query parameter selects the admin screens.
func (h *CatalogHandler) Root(c *gin.Context) {
	view := h.auth.View(c.Query("portal"), middleware.Token(c))
	resp := dto.ViewResponse{View: string(view)}
	if view == usecase.ViewHome {
		resp.Landing = h.catalog.Landing()
	}
	c.JSON(http.StatusOK, resp)
}

// Products handles GET /api/products.
func (h *CatalogHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Products())
}

// Product handles GET /api/products/:id.
func (h *CatalogHandler) Product(c *gin.Context) {
	product, err := h.catalog.Product(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Landing handles GET /api/landing.
func (h *CatalogHandler) Landing(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Landing())
}

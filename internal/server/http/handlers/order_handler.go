package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/server/http/dto"
	"github.com/tradsolution/storefront/internal/usecase"
)

// OrderHandler handles checkout and admin order management.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.facade.Checkout(c.Request.Context(), req.ProductID, req.Name, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// List handles GET /api/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Create handles POST /api/admin/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ProductID:     req.ProductID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Status:        model.OrderStatus(req.Status),
		Address:       req.Address,
		Country:       req.Country,
		CreatedAt:     req.CreatedAt,
		AccessTime:    req.AccessTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// Update handles PATCH /api/admin/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Stats handles GET /api/admin/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

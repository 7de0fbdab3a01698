package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/server/http/dto"
)

const pdfContentType = "application/pdf"

// InvoiceHandler handles invoice editing and rendering.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler creates InvoiceHandler instance.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// List handles GET /api/admin/invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.facade.Invoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if invoices == nil {
		invoices = []model.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// ForOrder handles GET /api/admin/orders/:id/invoice. A draft is returned when
// the order has no saved invoice yet.
func (h *InvoiceHandler) ForOrder(c *gin.Context) {
	invoice, err := h.facade.InvoiceForOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Generate handles POST /api/admin/orders/:id/invoice.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	invoice, err := h.facade.GenerateInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// Save handles PUT /api/admin/invoices/:id.
func (h *InvoiceHandler) Save(c *gin.Context) {
	var req dto.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	invoice, err := h.facade.SaveInvoice(c.Request.Context(), req.Invoice(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Audit handles GET /api/admin/invoices/:id/audit.
func (h *InvoiceHandler) Audit(c *gin.Context) {
	invoice, err := h.facade.InvoiceAudit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// PDF handles GET /api/admin/invoices/:id/pdf.
func (h *InvoiceHandler) PDF(c *gin.Context) {
	doc, err := h.facade.InvoicePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, pdfContentType, doc.Content)
}

package handler

import (
	"net/http"

	"facturas/internal/document"
	"facturas/internal/service"
	"facturas/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
	renderer       *document.InvoiceRenderer
}

func NewInvoiceHandler(invoiceService service.InvoiceService, renderer *document.InvoiceRenderer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, renderer: renderer}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.POST("", h.CreateInvoice)
		invoices.DELETE("/:id", h.DeleteInvoice)
		invoices.GET("/:id/pdf", h.DownloadPDF)
	}
}

// ListInvoices returns all invoices by date ascending plus running totals
// @Summary      List invoices with totals
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.invoiceService.GetInvoicesWithTotals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// CreateInvoice creates an invoice, deriving its total from base and VAT rate
// @Summary      Create invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateInvoiceRequest  true  "Invoice payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// DeleteInvoice deletes an invoice; an absent id is still a success
// @Summary      Delete invoice
// @Tags         invoices
// @Produce      json
// @Param        id  path  int  true  "Invoice ID"
// @Success      200  {object}  response.Response
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// DownloadPDF renders and serves factura_<numero>.pdf for an invoice
// @Summary      Download invoice PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  int  true  "Invoice ID"
// @Success      200  {file}    file
// @Failure      404  {object}  response.Response
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	path, err := h.renderer.Render(*invoice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.FileAttachment(path, document.FileName(invoice.Number))
}

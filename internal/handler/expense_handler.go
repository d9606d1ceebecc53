package handler

import (
	"net/http"
	"path/filepath"

	"facturas/internal/service"
	"facturas/pkg/response"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
}

func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) RegisterRoutes(router *gin.RouterGroup) {
	expenses := router.Group("/api/expenses")
	{
		expenses.GET("", h.ListExpenses)
		expenses.POST("", h.CreateExpense)
		expenses.DELETE("/:id", h.DeleteExpense)
		expenses.GET("/:id/receipt", h.DownloadReceipt)
	}
}

// ListExpenses returns all expenses by date ascending plus running totals
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	list, err := h.expenseService.GetExpensesWithTotals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, list))
}

// CreateExpense creates an expense from a multipart form, optionally storing
// an attached receipt file
// @Summary      Create expense
// @Tags         expenses
// @Accept       multipart/form-data
// @Produce      json
// @Param        invoice_number  formData  string  true   "Originating invoice number"
// @Param        supplier_id     formData  int     true   "Supplier ID"
// @Param        date            formData  string  true   "Date (YYYY-MM-DD)"
// @Param        taxable_base    formData  string  true   "Taxable base"
// @Param        vat_rate        formData  string  true   "VAT rate (percentage)"
// @Param        description     formData  string  false  "Description"
// @Param        receipt         formData  file    false  "Receipt file"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	req := service.CreateExpenseRequest{
		InvoiceNumber: c.PostForm("invoice_number"),
		Date:          c.PostForm("date"),
		TaxableBase:   c.PostForm("taxable_base"),
		VATRate:       c.PostForm("vat_rate"),
		Description:   c.PostForm("description"),
	}

	for field, value := range map[string]string{
		"invoice_number": req.InvoiceNumber,
		"supplier_id":    c.PostForm("supplier_id"),
		"date":           req.Date,
		"taxable_base":   req.TaxableBase,
		"vat_rate":       req.VATRate,
	} {
		if value == "" {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Missing required field: "+field))
			return
		}
	}

	supplierID, err := parseID(c.PostForm("supplier_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid supplier_id"))
		return
	}
	req.SupplierID = supplierID

	if fh, err := c.FormFile("receipt"); err == nil && fh != nil {
		f, openErr := fh.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable receipt file"))
			return
		}
		defer f.Close()
		req.Receipt = &service.ReceiptUpload{Filename: fh.Filename, Data: f}
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, expense))
}

// DeleteExpense deletes an expense and its stored receipt file
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": id}))
}

// DownloadReceipt serves the stored receipt file for an expense
func (h *ExpenseHandler) DownloadReceipt(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid id"))
		return
	}

	path, err := h.expenseService.ReceiptPath(c.Request.Context(), id)
	if err != nil {
		status := errorStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

package handler

import (
	"net/http"

	"facturas/internal/service"
	"facturas/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("/summary", h.Summary)
		reports.GET("/export", h.DownloadExport)
	}
}

// Summary returns all-time income, expenses, and profit
// @Summary      Income/expense summary
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// DownloadExport writes the EXPEDIDAS/RECIBIDAS workbook and serves it
// @Summary      Download annual tax export
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/export [get]
func (h *ReportHandler) DownloadExport(c *gin.Context) {
	path, err := h.reportService.WriteAnnualExport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.FileAttachment(path, service.ExportFileName)
}

package handlers

import (
	"net/http"
	"time"

	"shop-backoffice-backend/internal/services/reporting"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *reporting.Service
}

func NewReportHandler(service *reporting.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) SalesPerformance(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	// Default to the current month.
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	metrics, err := h.service.SalesPerformance(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales_people": metrics, "from": start, "to": end})
}

func (h *ReportHandler) ExportInvoices(c *gin.Context) {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date range"})
		return
	}

	f, err := h.service.ExportInvoicesExcel(from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+reporting.ExportFilename(time.Now()))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		respondError(c, err)
	}
}

package reports

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-registration-backend/utils"
)

type Handler struct {
	service ReportService
}

func NewHandler(svc ReportService) *Handler {
	return &Handler{service: svc}
}

// GetRegistrationsReport handles GET /api/reports/registrations.
// format=json answers with the rows, any other format downloads a file.
// @Summary Export registrations
// @Tags Reports
// @Produce json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,text/csv,application/pdf
// @Param format query string false "excel | csv | pdf | json" default(excel)
// @Param includePersonalInfo query bool false "Nome, CPF, Telefone" default(true)
// @Param includeEventDetails query bool false "Evento, Data" default(true)
// @Param includePaymentInfo query bool false "Status, Status Pagamento, Valor" default(true)
// @Param onlyConfirmed query bool false "only confirmado registrations" default(false)
// @Param eventId query string false "Event ID"
// @Param dateRange query string false "all | daily | weekly | monthly | yearly | custom" default(all)
// @Param startDate query string false "YYYY-MM-DD, custom range only"
// @Param endDate query string false "YYYY-MM-DD, custom range only"
// @Success 200 {object} Report
// @Router /api/reports/registrations [get]
func (h *Handler) GetRegistrationsReport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	if strings.EqualFold(req.Format, FormatJSON) {
		report, err := h.service.GetReport(c.Request.Context(), req)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
		return
	}

	data, filename, mime, err := h.service.ExportReport(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, mime, data)
}

// GetDashboardStats handles GET /api/dashboard/stats.
// @Summary Dashboard counters
// @Tags Reports
// @Produce json
// @Success 200 {object} DashboardStats
// @Router /api/dashboard/stats [get]
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

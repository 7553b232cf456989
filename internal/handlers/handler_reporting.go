package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the aggregate report routes under /items.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	items := rg.Group("/items")
	{
		items.GET("/years", h.getYearsRange)
		items.GET("/overview", h.getMonthlyOverview)
	}
}

// getYearsRange godoc
// @Summary Get the due date years range
// @Description Reports the earliest and latest years for which items exist; an empty store yields the current year
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.YearsRangeResponse
// @Failure 500 {object} ErrorResponse "Failed to compute years range"
// @Router /items/years [get]
func (h *reportingHandler) getYearsRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	yearsRange, err := h.reportingService.YearsRange(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute years range", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToYearsRangeResponse(yearsRange))
}

// getMonthlyOverview godoc
// @Summary Get a monthly overview
// @Description Summarizes income, expenses and savings for a year and month
// @Tags reporting
// @Produce  json
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to compute overview"
// @Router /items/overview [get]
func (h *reportingHandler) getMonthlyOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, []string{"year"}, "year must be an integer")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		respondError(c, http.StatusBadRequest, kindValidation, []string{"month"}, "month must be an integer")
		return
	}

	overview, err := h.reportingService.MonthlyOverview(c.Request.Context(), year, month)
	if err != nil {
		logger.Warn("Failed to compute overview", slog.Int("year", year), slog.Int("month", month), slog.String("error", err.Error()))
		respondServiceError(c, err, "month")
		return
	}

	c.JSON(http.StatusOK, dto.ToOverviewResponse(overview))
}

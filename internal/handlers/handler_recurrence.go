package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
)

// recurrenceHandler handles HTTP requests related to recurring item series.
type recurrenceHandler struct {
	recurrenceService portssvc.RecurrenceSvcFacade
}

func newRecurrenceHandler(rs portssvc.RecurrenceSvcFacade) *recurrenceHandler {
	return &recurrenceHandler{recurrenceService: rs}
}

// RegisterRecurrenceRoutes registers routes related to recurring series.
// Series edits and deletes address an item of the series, not the series
// itself: the item acts as the anchor the change propagates from.
func RegisterRecurrenceRoutes(rg *gin.RouterGroup, recurrenceService portssvc.RecurrenceSvcFacade) {
	h := newRecurrenceHandler(recurrenceService)

	recurrences := rg.Group("/recurrences")
	{
		recurrences.POST("", h.createSeries)
		recurrences.GET("/:seriesID", h.getSeries)
		recurrences.PUT("/items/:itemID", h.editSeries)
		recurrences.DELETE("/items/:itemID", h.deleteFuture)
	}
}

// createSeries godoc
// @Summary Create a recurring series
// @Description Expands a recurrence into N monthly items sharing a series ID, persisted atomically
// @Tags recurrences
// @Accept  json
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   recurrence body dto.CreateRecurrenceRequest true "Series details"
// @Success 201 {array} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Label not found"
// @Failure 500 {object} ErrorResponse "Failed to create series"
// @Router /recurrences [post]
func (h *recurrenceHandler) createSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSeries", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	loc := middleware.GetTimezoneFromCtx(c)
	items, err := h.recurrenceService.CreateSeries(c.Request.Context(), req, loc)
	if err != nil {
		logger.Warn("Failed to create series", slog.String("error", err.Error()))
		respondServiceError(c, err, "labelID")
		return
	}

	logger.Info("Series created successfully", slog.Int("occurrences", len(items)))
	c.JSON(http.StatusCreated, dto.ToItemResponses(items, loc))
}

// getSeries godoc
// @Summary Get a recurring series
// @Description Retrieves all items of a series ordered by due date ascending
// @Tags recurrences
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   seriesID path string true "Series ID"
// @Success 200 {array} dto.ItemResponse
// @Failure 404 {object} ErrorResponse "Series not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve series"
// @Router /recurrences/{seriesID} [get]
func (h *recurrenceHandler) getSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	seriesID := c.Param("seriesID")

	items, err := h.recurrenceService.GetSeries(c.Request.Context(), seriesID)
	if err != nil {
		logger.Warn("Failed to get series", slog.String("series_id", seriesID), slog.String("error", err.Error()))
		respondServiceError(c, err, "seriesID")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items, middleware.GetTimezoneFromCtx(c)))
}

// editSeries godoc
// @Summary Edit a series from an anchor item
// @Description Applies overrides to the anchor item and propagates them to every item of its series due on or after the anchor's original due date
// @Tags recurrences
// @Accept  json
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   itemID path string true "Anchor item ID"
// @Param   overrides body dto.EditRecurringItemRequest true "Fields to override"
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input or item not part of a series"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to edit series"
// @Router /recurrences/items/{itemID} [put]
func (h *recurrenceHandler) editSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.EditRecurringItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditSeries", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	loc := middleware.GetTimezoneFromCtx(c)
	items, err := h.recurrenceService.EditSeries(c.Request.Context(), itemID, req, loc)
	if err != nil {
		logger.Warn("Failed to edit series", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondServiceError(c, err, "itemID")
		return
	}

	logger.Info("Series edited successfully", slog.String("anchor_item_id", itemID), slog.Int("items_updated", len(items)))
	c.JSON(http.StatusOK, dto.ToItemResponses(items, loc))
}

// deleteFuture godoc
// @Summary Delete the future of a series
// @Description Removes every item of the series strictly after the anchor item and renumbers the surviving countdown
// @Tags recurrences
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   itemID path string true "Anchor item ID"
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Item not part of a series"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete future items"
// @Router /recurrences/items/{itemID} [delete]
func (h *recurrenceHandler) deleteFuture(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	items, err := h.recurrenceService.DeleteFuture(c.Request.Context(), itemID)
	if err != nil {
		logger.Warn("Failed to delete future items", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondServiceError(c, err, "itemID")
		return
	}

	logger.Info("Future items deleted successfully", slog.String("anchor_item_id", itemID), slog.Int("items_remaining", len(items)))
	c.JSON(http.StatusOK, dto.ToItemResponses(items, middleware.GetTimezoneFromCtx(c)))
}

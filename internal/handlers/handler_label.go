package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
)

// labelHandler handles HTTP requests related to labels.
type labelHandler struct {
	labelService portssvc.LabelSvcFacade
}

func newLabelHandler(ls portssvc.LabelSvcFacade) *labelHandler {
	return &labelHandler{labelService: ls}
}

// RegisterLabelRoutes registers routes related to labels.
func RegisterLabelRoutes(rg *gin.RouterGroup, labelService portssvc.LabelSvcFacade) {
	h := newLabelHandler(labelService)

	labels := rg.Group("/labels")
	{
		labels.POST("", h.createLabel)
		labels.GET("", h.listLabels)
		labels.GET("/:labelID", h.getLabelByID)
		labels.PUT("/:labelID", h.updateLabel)
		labels.DELETE("/:labelID", h.deleteLabel)
	}
}

// createLabel godoc
// @Summary Create a new label
// @Description Adds a new label; names are unique
// @Tags labels
// @Accept  json
// @Produce  json
// @Param   label body dto.CreateLabelRequest true "Label details"
// @Success 201 {object} dto.LabelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Label name already exists"
// @Failure 500 {object} ErrorResponse "Failed to create label"
// @Router /labels [post]
func (h *labelHandler) createLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateLabel", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	label, err := h.labelService.CreateLabel(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create label", slog.String("error", err.Error()))
		respondServiceError(c, err, "name")
		return
	}

	logger.Info("Label created successfully", slog.String("label_id", label.LabelID))
	c.JSON(http.StatusCreated, dto.ToLabelResponse(label))
}

// listLabels godoc
// @Summary List all labels
// @Description Retrieves all labels ordered by name
// @Tags labels
// @Produce  json
// @Success 200 {array} dto.LabelResponse
// @Failure 500 {object} ErrorResponse "Failed to list labels"
// @Router /labels [get]
func (h *labelHandler) listLabels(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	labels, err := h.labelService.ListLabels(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list labels", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponses(labels))
}

// getLabelByID godoc
// @Summary Get a label by ID
// @Description Retrieves details for a specific label
// @Tags labels
// @Produce  json
// @Param   labelID path string true "Label ID"
// @Success 200 {object} dto.LabelResponse
// @Failure 404 {object} ErrorResponse "Label not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve label"
// @Router /labels/{labelID} [get]
func (h *labelHandler) getLabelByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	labelID := c.Param("labelID")

	label, err := h.labelService.GetLabelByID(c.Request.Context(), labelID)
	if err != nil {
		logger.Warn("Failed to get label", slog.String("label_id", labelID), slog.String("error", err.Error()))
		respondServiceError(c, err, "labelID")
		return
	}

	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// updateLabel godoc
// @Summary Update a label
// @Description Applies field overrides to an existing label
// @Tags labels
// @Accept  json
// @Produce  json
// @Param   labelID path string true "Label ID"
// @Param   label body dto.UpdateLabelRequest true "Fields to update"
// @Success 200 {object} dto.LabelResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Label not found"
// @Failure 409 {object} ErrorResponse "Label name already exists"
// @Failure 500 {object} ErrorResponse "Failed to update label"
// @Router /labels/{labelID} [put]
func (h *labelHandler) updateLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	labelID := c.Param("labelID")

	var req dto.UpdateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLabel", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	label, err := h.labelService.UpdateLabel(c.Request.Context(), labelID, req)
	if err != nil {
		logger.Warn("Failed to update label", slog.String("label_id", labelID), slog.String("error", err.Error()))
		respondServiceError(c, err, "labelID")
		return
	}

	logger.Info("Label updated successfully", slog.String("label_id", labelID))
	c.JSON(http.StatusOK, dto.ToLabelResponse(label))
}

// deleteLabel godoc
// @Summary Delete a label
// @Description Removes a label; refused while items still reference it
// @Tags labels
// @Produce  json
// @Param   labelID path string true "Label ID"
// @Success 204 "Label deleted"
// @Failure 404 {object} ErrorResponse "Label not found"
// @Failure 409 {object} ErrorResponse "Label is referenced by items"
// @Failure 500 {object} ErrorResponse "Failed to delete label"
// @Router /labels/{labelID} [delete]
func (h *labelHandler) deleteLabel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	labelID := c.Param("labelID")

	if err := h.labelService.DeleteLabel(c.Request.Context(), labelID); err != nil {
		logger.Warn("Failed to delete label", slog.String("label_id", labelID), slog.String("error", err.Error()))
		respondServiceError(c, err, "labelID")
		return
	}

	logger.Info("Label deleted successfully", slog.String("label_id", labelID))
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/granabox/granabox-api/internal/core/domain"
	portssvc "github.com/granabox/granabox-api/internal/core/ports/services"
	"github.com/granabox/granabox-api/internal/dto"
	"github.com/granabox/granabox-api/internal/middleware"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// itemHandler handles HTTP requests related to items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers routes related to individual items. The
// static /items/date path must coexist with /items/:itemID; Gin resolves
// static segments before parameters.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/date", h.listItemsByMonth)
		items.GET("/:itemID", h.getItemByID)
		items.PUT("/:itemID", h.updateItem)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

// createItem godoc
// @Summary Create a one-off item
// @Description Adds a new item; due status is computed in the caller's timezone
// @Tags items
// @Accept  json
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Label not found"
// @Failure 500 {object} ErrorResponse "Failed to create item"
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateItem", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	loc := middleware.GetTimezoneFromCtx(c)
	item, err := h.itemService.CreateItem(c.Request.Context(), req, loc)
	if err != nil {
		logger.Warn("Failed to create item", slog.String("error", err.Error()))
		respondServiceError(c, err, "labelID")
		return
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item, loc))
}

// listItems godoc
// @Summary List items
// @Description Retrieves a page of items ordered by due date descending
// @Tags items
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   limit query int false "Page size, defaults to 20, capped at 100"
// @Param   nextToken query string false "Opaque pagination cursor"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 500 {object} ErrorResponse "Failed to list items"
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultListLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			respondError(c, http.StatusBadRequest, kindValidation, []string{"limit"}, "limit must be a positive integer")
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	var nextToken *string
	if tokenStr := c.Query("nextToken"); tokenStr != "" {
		nextToken = &tokenStr
	}

	loc := middleware.GetTimezoneFromCtx(c)
	items, token, err := h.itemService.ListItems(c.Request.Context(), limit, nextToken)
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()))
		respondServiceError(c, err, "nextToken")
		return
	}

	c.JSON(http.StatusOK, dto.ListItemsResponse{
		Items:     dto.ToItemResponses(items, loc),
		NextToken: token,
	})
}

// listItemsByMonth godoc
// @Summary List items due in a month
// @Description Retrieves items whose due date falls within a year and month, optionally filtered by kind
// @Tags items
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   year query int true "Year"
// @Param   month query int true "Month (1-12)"
// @Param   kind query string false "Item kind filter" Enums(PAYABLE, PAID, INCOME)
// @Success 200 {array} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Failed to list items"
// @Router /items/date [get]
func (h *itemHandler) listItemsByMonth(c *gin.Context) {
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

	var kind *domain.ItemKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := domain.ItemKind(kindStr)
		if !domain.ValidKind(k) {
			respondError(c, http.StatusBadRequest, kindValidation, []string{"kind"}, "kind must be one of PAYABLE, PAID, INCOME")
			return
		}
		kind = &k
	}

	loc := middleware.GetTimezoneFromCtx(c)
	items, err := h.itemService.ListItemsByMonth(c.Request.Context(), year, month, kind)
	if err != nil {
		logger.Warn("Failed to list items by month", slog.Int("year", year), slog.Int("month", month), slog.String("error", err.Error()))
		respondServiceError(c, err, "month")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items, loc))
}

// getItemByID godoc
// @Summary Get an item by ID
// @Description Retrieves details for a specific item
// @Tags items
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve item"
// @Router /items/{itemID} [get]
func (h *itemHandler) getItemByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	item, err := h.itemService.GetItemByID(c.Request.Context(), itemID)
	if err != nil {
		logger.Warn("Failed to get item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondServiceError(c, err, "itemID")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item, middleware.GetTimezoneFromCtx(c)))
}

// updateItem godoc
// @Summary Update an item
// @Description Applies field overrides to a single item and recomputes its due status
// @Tags items
// @Accept  json
// @Produce  json
// @Param   TimeZone header string false "IANA timezone, defaults to UTC"
// @Param   itemID path string true "Item ID"
// @Param   item body dto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to update item"
// @Router /items/{itemID} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateItem", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, kindValidation, []string{"body"}, "Invalid request format: "+err.Error())
		return
	}

	loc := middleware.GetTimezoneFromCtx(c)
	item, err := h.itemService.UpdateItem(c.Request.Context(), itemID, req, loc)
	if err != nil {
		logger.Warn("Failed to update item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondServiceError(c, err, "itemID")
		return
	}

	logger.Info("Item updated successfully", slog.String("item_id", itemID))
	c.JSON(http.StatusOK, dto.ToItemResponse(item, loc))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Removes a single item
// @Tags items
// @Produce  json
// @Param   itemID path string true "Item ID"
// @Success 204 "Item deleted"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete item"
// @Router /items/{itemID} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID := c.Param("itemID")

	if err := h.itemService.DeleteItem(c.Request.Context(), itemID); err != nil {
		logger.Warn("Failed to delete item", slog.String("item_id", itemID), slog.String("error", err.Error()))
		respondServiceError(c, err, "itemID")
		return
	}

	logger.Info("Item deleted successfully", slog.String("item_id", itemID))
	c.Status(http.StatusNoContent)
}

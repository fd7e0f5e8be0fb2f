package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/application/service"
	"github.com/narmadatraders/billing-api/internal/domain/enum"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/request"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/response"
)

// ItemHandler handles billing-row HTTP requests
type ItemHandler struct {
	sessionService *service.SessionService
}

// NewItemHandler creates a new item handler
func NewItemHandler(sessionService *service.SessionService) *ItemHandler {
	return &ItemHandler{sessionService: sessionService}
}

// Insert handles appending a blank row
// @Summary Insert Item
// @Description Append a blank billing row and request focus on its name field
// @Tags items
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} response.APIResponse
// @Router /sessions/{id}/items [post]
func (h *ItemHandler) Insert(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	item, err := h.sessionService.InsertItem(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added successfully", item)
}

// Update handles setting one field of a row
// @Summary Update Item Field
// @Description Set one field of a billing row and re-derive dependent fields
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param itemID path int true "Item ID"
// @Param request body request.UpdateItemFieldRequest true "Field update"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/items/{itemID} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	itemID, ok := ItemID(c)
	if !ok {
		return
	}

	var req request.UpdateItemFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	field, err := enum.ParseItemField(req.Field)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// A stale row id is a silent no-op: the snapshot comes back unchanged.
	session, err := h.sessionService.UpdateItemField(id, itemID, field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", session)
}

// Remove handles deleting a row (or clearing the sole remaining row)
// @Summary Remove Item
// @Description Delete a billing row; the sole remaining row is cleared in place
// @Tags items
// @Produce json
// @Param id path string true "Session ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/items/{itemID} [delete]
func (h *ItemHandler) Remove(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	itemID, ok := ItemID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.RemoveItem(id, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed successfully", session)
}

// Commit handles a field commit and returns the next focus target
// @Summary Commit Field
// @Description Run the focus sequencer after a field commit
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param itemID path int true "Item ID"
// @Param request body request.CommitFieldRequest true "Committed field"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/items/{itemID}/commit [post]
func (h *ItemHandler) Commit(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}
	itemID, ok := ItemID(c)
	if !ok {
		return
	}

	var req request.CommitFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	field, err := enum.ParseItemField(req.Field)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	target, err := h.sessionService.CommitField(id, itemID, field)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Field committed", target)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/application/service"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/request"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/response"
)

// SessionHandler handles editing-session HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Create handles starting a new editing session
// @Summary Create Session
// @Description Start a new editing session with one blank row
// @Tags sessions
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	session := h.sessionService.Create()
	response.Created(c, "Session created successfully", session)
}

// Get handles reading a session snapshot
// @Summary Get Session
// @Description Get the ordered row list, header fields and total state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Get(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session retrieved successfully", session)
}

// Delete handles discarding a session
// @Summary Delete Session
// @Description Discard a session and all its unsaved data
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateHeader handles setting the bill header fields
// @Summary Update Header
// @Description Set the customer and haste names on a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request.UpdateHeaderRequest true "Header data"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/header [put]
func (h *SessionHandler) UpdateHeader(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	var req request.UpdateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	session, err := h.sessionService.UpdateHeader(id, req.CustomerName, req.HasteName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Header updated successfully", session)
}

// RecalculateTotal handles an explicit grand-total aggregation request
// @Summary Recalculate Total
// @Description Reduce the row list into the grand total and mark it valid
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/total [post]
func (h *SessionHandler) RecalculateTotal(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	session, err := h.sessionService.RecalculateTotal(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Grand total recalculated", session)
}

// ClaimFocus handles claiming the pending focus request
// @Summary Claim Focus
// @Description Return and clear the deferred focus target, if any
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.APIResponse
// @Router /sessions/{id}/focus [get]
func (h *SessionHandler) ClaimFocus(c *gin.Context) {
	id, ok := SessionID(c)
	if !ok {
		return
	}

	target, err := h.sessionService.ClaimPendingFocus(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pending focus claimed", target)
}

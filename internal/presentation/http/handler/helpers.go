package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/narmadatraders/billing-api/internal/presentation/http/dto/response"
)

// SessionID parses the session id path parameter, responding with 400 when
// invalid.
func SessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}

// ItemID parses the row id path parameter, responding with 400 when invalid
func ItemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("itemID"))
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid item ID")
		return 0, false
	}
	return id, true
}

package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnesstracker/internal"
	"github.com/yourname/wellnesstracker/internal/response"
)

// HandleError logs the failure with its correlation ID and writes the
// message the client will render.
func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var resp *internal.AppError
	switch status {
	case 400:
		resp = response.BadRequest(msg)
	case 401:
		resp = response.Unauthorized(msg)
	case 404:
		resp = response.NotFound(msg)
	case 409:
		resp = response.Conflict(msg)
	case 500:
		resp = response.InternalError(msg)
	default:
		resp = response.NewAppError(status, msg)
	}
	c.JSON(status, resp)
}

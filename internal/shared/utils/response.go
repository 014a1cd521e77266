package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// ErrorInfo represents error information in API responses
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorBody wraps ErrorInfo for JSON serialization
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Error: ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{
			Error: ErrorInfo{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	// For non-AppError, do not expose internal details
	c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: ErrorInfo{
			Type:    string(errors.ErrorTypeInternal),
			Message: "Internal server error occurred",
		},
	})
}

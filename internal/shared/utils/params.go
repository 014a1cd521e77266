package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// ParseUintParam parses and validates a numeric ID from a URL path
// parameter. entityName is used in error messages (e.g. "ticket").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// ParseUintQuery parses a numeric query parameter, returning zero when absent.
func ParseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}

// ParseBoolQuery parses a boolean query parameter, treating absence and
// malformed values as false.
func ParseBoolQuery(c *gin.Context, name string) bool {
	raw := c.Query(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crowdfund/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter. entityName is
// used in error messages (e.g. "deposit", "organization").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(v), nil
}

// ParseUintQuery parses a positive integer query parameter.
func ParseUintQuery(c *gin.Context, queryName, entityName string) (uint, error) {
	raw := c.Query(queryName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(v), nil
}

package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"branchline/internal/shared/constants"
)

// Pagination holds parsed limit/offset parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// ValidatePagination normalizes limit/offset values. Limit defaults to
// DefaultListLimit when not positive and is capped at MaxListLimit; a
// negative offset becomes 0.
func ValidatePagination(limit, offset int) Pagination {
	if limit < 1 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}

// ParsePagination parses limit/offset query parameters from the Gin context,
// applying defaults and caps.
func ParsePagination(c *gin.Context) Pagination {
	limit := parseQueryInt(c, "limit", constants.DefaultListLimit)
	offset := parseQueryInt(c, "offset", 0)
	return ValidatePagination(limit, offset)
}

// ParseBoolFilter parses an optional boolean query parameter. Returns nil
// when the parameter is absent or malformed.
func ParseBoolFilter(c *gin.Context, key string) *bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}

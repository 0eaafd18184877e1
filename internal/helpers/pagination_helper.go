package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationParams holds the parsed pagination parameters
type PaginationParams struct {
	Limit  int32
	Offset int32
	Page   int32
}

// ParsePaginationParams parses and validates pagination parameters from gin context
// Supports page-based pagination (?page=1&limit=10) with safe defaults.
func ParsePaginationParams(c *gin.Context) (PaginationParams, error) {
	const maxLimit int32 = 100
	const defaultLimit int32 = 10
	const defaultPage int32 = 1

	params := PaginationParams{
		Limit: defaultLimit,
		Page:  defaultPage,
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		parsedLimit, err := SafeParseInt32(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid limit parameter: %w", err)
		}
		if parsedLimit > 0 {
			if parsedLimit > maxLimit {
				params.Limit = maxLimit
			} else {
				params.Limit = parsedLimit
			}
		}
	}

	if pageStr := c.Query("page"); pageStr != "" {
		parsedPage, err := SafeParseInt32(pageStr)
		if err != nil {
			return params, fmt.Errorf("invalid page parameter: %w", err)
		}
		if parsedPage > 0 {
			params.Page = parsedPage
		}
	}

	// Compute the offset in int64 so large page numbers cannot overflow
	// into a negative value. A clamped offset past the data set simply
	// yields an empty page.
	offset := int64(params.Page-1) * int64(params.Limit)
	if offset > math.MaxInt32 {
		offset = math.MaxInt32
	}
	params.Offset = int32(offset)

	return params, nil
}

// TotalPages computes the page count for a total item count and page size.
func TotalPages(total int64, limit int32) int32 {
	if limit <= 0 {
		return 0
	}
	return int32((total + int64(limit) - 1) / int64(limit))
}

// SafeParseInt32 parses a string into an int32, guarding against overflow.
func SafeParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

package utils

import (
	"strconv"

	"github.com/Ani07-05/brickdash/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams is the page window a list handler passes down to
// its repository query.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse echoes the requested window back to the client
// alongside the total row count for the filter.
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads page and limit from the query string.
// Missing or out-of-range values fall back to the defaults instead of
// failing the request, so stale bookmarked order lists keep loading.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < constants.MinPageSize {
		page = constants.MinPageSize
	}

	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListParams represents pagination parameters
type ListParams struct {
	Page       int
	Limit      int
	Pagination bool
}

// GetListParams extracts pagination parameters from request
func GetListParams(c echo.Context) ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if limit <= 0 {
		limit = 50 // Default page size
	}

	pagination := true
	if raw := c.QueryParam("pagination"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			pagination = parsed
		}
	}

	return ListParams{
		Page:       page,
		Limit:      limit,
		Pagination: pagination,
	}
}

// Window returns the slice bounds for one page over total records. With
// pagination disabled the whole collection is the window.
func (p ListParams) Window(total int) (start, end int) {
	if !p.Pagination {
		return 0, total
	}

	start = (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}

	end = start + p.Limit
	if end > total {
		end = total
	}

	return start, end
}

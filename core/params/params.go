package params

import (
	"strconv"

	"roadwise/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries pagination and free-text search from the query string.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
}

// FromEcho extracts query params with sane bounds.
func FromEcho(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
		Search:     c.QueryParam("search"),
	}

	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && n > 0 {
		if n > constants.MaxPageSize {
			n = constants.MaxPageSize
		}
		p.PageSize = n
	}
	return p
}

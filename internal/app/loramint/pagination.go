package loramint

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPerPage int = 20
	MaxPerPage     int = 100
)

// Pagination is a normalized page request. Page is at least 1 and PerPage within [1, MaxPerPage].
type Pagination struct {
	Page    int
	PerPage int
	Offset  int
}

type PaginationResponse struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// NewPagination expects page and perPage to be normalized already.
func NewPagination(page, perPage int) Pagination {
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
	}
}

func (p Pagination) Response(total int64) PaginationResponse {
	totalPages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	return PaginationResponse{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
	}
}

// PaginationFromParams reads page and per_page from query parameters. Missing or unparsable
// values fall back to the defaults, out of range values are clamped.
func PaginationFromParams(params map[string][]string, defaultPerPage, maxPerPage int) Pagination {
	if maxPerPage < 1 || maxPerPage > MaxPerPage {
		maxPerPage = MaxPerPage
	}
	defaultPerPage = clamp(defaultPerPage, 1, maxPerPage)

	page := intParam(params, "page", 1)
	if page < 1 {
		page = 1
	}

	perPage := clamp(intParam(params, "per_page", defaultPerPage), 1, maxPerPage)

	// keeps (page-1)*perPage from overflowing into a negative offset
	page = min(page, math.MaxInt/perPage)

	return NewPagination(page, perPage)
}

func intParam(params map[string][]string, key string, defaultValue int) int {
	v, ok := params[key]
	if !ok || len(v) == 0 {
		return defaultValue
	}

	i, err := strconv.Atoi(strings.TrimSpace(v[0]))
	if err != nil {
		return defaultValue
	}

	return i
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

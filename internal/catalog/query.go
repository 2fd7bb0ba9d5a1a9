// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"proplib/internal/models"
)

const (
	// DefaultLimit is the page size used when the caller doesn't ask for one.
	DefaultLimit = 60
	// MaxLimit caps the page size a single query may request.
	MaxLimit = 200
	// CategoryAll is the sentinel category value that matches every record.
	CategoryAll = "all"
)

// Params describes a filtered, paginated catalog query. Zero values mean
// "no filter"; Limit and Offset are clamped rather than rejected, so any
// Params value yields a well-formed result.
type Params struct {
	Category string
	Tags     []string
	Search   string
	Limit    int
	Offset   int
}

// Result is one page of a catalog query plus its pagination metadata.
// Total counts every match before the window is applied.
type Result struct {
	Components []models.Component `json:"components"`
	Total      int                `json:"total"`
	HasMore    bool               `json:"hasMore"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// Query filters records by category, tag set, and free-text search, then
// applies the pagination window. It never fails: empty input, empty
// filters, and out-of-range windows all degrade to empty or clamped
// results. The three filters combine as a logical AND.
func Query(records []models.Component, params Params) Result {
	limit := clamp(params.Limit, 1, MaxLimit)
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	filtered := records

	if params.Category != "" && params.Category != CategoryAll {
		filtered = filterFunc(filtered, func(c *models.Component) bool {
			return string(c.Category) == params.Category
		})
	}

	if len(params.Tags) > 0 {
		filtered = filterFunc(filtered, func(c *models.Component) bool {
			for _, tag := range params.Tags {
				if !c.HasTag(tag) {
					return false
				}
			}
			return true
		})
	}

	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		filtered = filterFunc(filtered, func(c *models.Component) bool {
			haystack := strings.ToLower(c.Name + " " + c.Description + " " + strings.Join(c.Tags, " "))
			return strings.Contains(haystack, search)
		})
	}

	total := len(filtered)

	// Window the filtered set. An offset past the end is an empty page,
	// not an error.
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	components := make([]models.Component, end-start)
	copy(components, filtered[start:end])

	return Result{
		Components: components,
		Total:      total,
		HasMore:    total > offset+limit,
		Limit:      limit,
		Offset:     offset,
	}
}

// filterFunc returns the records for which keep returns true.
func filterFunc(records []models.Component, keep func(*models.Component) bool) []models.Component {
	var result []models.Component
	for i := range records {
		if keep(&records[i]) {
			result = append(result, records[i])
		}
	}
	return result
}

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

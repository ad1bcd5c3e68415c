package query

import "fmt"

// BuildPagination renders a LIMIT/OFFSET fragment. A zero or negative limit
// disables pagination and returns the empty string; this escape hatch applies
// uniformly to every entity, callers decide whether to expose it. Offsets are
// zero-based; the HTTP layer converts 1-based page numbers with
// offset = (page-1) * pageSize.
func BuildPagination(limit, offset int) string {
	if limit <= 0 {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
}

// Offset converts a 1-based page number and page size to a zero-based row
// offset.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	return (page - 1) * pageSize
}

// Package repository defines the interfaces for the persistence layer.
package repository

const (
	defaultPage     = 1
	defaultPageSize = 25
	maxPageSize     = 200
)

// PageRequest carries paging and search parameters for list queries.
type PageRequest struct {
	Page     int
	PageSize int
	Search   string
}

// Normalize clamps the request to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	return p
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of results together with the total row count, matching
// the platform's paged wire envelope.
type Page[T any] struct {
	Items       []T
	TotalCount  int64
	CurrentPage int
	PageSize    int
}

// TotalPages derives the page count from the total and page size.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	pages := int(p.TotalCount) / p.PageSize
	if int(p.TotalCount)%p.PageSize != 0 {
		pages++
	}

	return pages
}

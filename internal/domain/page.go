// Package domain contains core business types and interfaces.
//
// This file defines the paging types shared by the repository, service
// and presentation layers.
package domain

import (
	"math"
	"strings"
)

// =============================================================================
// Page Metadata
// =============================================================================

// PageMetadata describes one page of a larger result set.
//
// Number is 0-based, matching the offset arithmetic used by the
// repository. Use CurrentPage for the 1-based value shown to people.
type PageMetadata struct {
	Size          int   `json:"size"`          // Requested page size
	Number        int   `json:"number"`        // 0-based page index
	TotalElements int64 `json:"totalElements"` // Total rows across all pages
	TotalPages    int   `json:"totalPages"`    // ceil(TotalElements / Size)
}

// NewPageMetadata builds metadata for the given page and total row count.
// A zero or negative size yields zero total pages.
func NewPageMetadata(size, number int, totalElements int64) PageMetadata {
	meta := PageMetadata{
		Size:          size,
		Number:        number,
		TotalElements: totalElements,
	}
	if size > 0 && totalElements > 0 {
		pages := totalElements / int64(size)
		if totalElements%int64(size) > 0 {
			pages++
		}
		meta.TotalPages = int(pages)
	}
	return meta
}

// CurrentPage returns the 1-based page number.
func (m PageMetadata) CurrentPage() int {
	return m.Number + 1
}

// HasPrevious returns true if a page exists before this one.
func (m PageMetadata) HasPrevious() bool {
	return m.Number > 0 && m.TotalPages > 0
}

// HasNext returns true if a page exists after this one.
func (m PageMetadata) HasNext() bool {
	return m.Number+1 < m.TotalPages
}

// First returns the 1-based ordinal of the first element on this page,
// or 0 when the page holds no elements.
func (m PageMetadata) First() int64 {
	if m.Size <= 0 || m.Number < 0 || m.Number >= m.TotalPages {
		return 0
	}
	return int64(m.Number)*int64(m.Size) + 1
}

// Last returns the 1-based ordinal of the last element on this page,
// or 0 when the page holds no elements.
func (m PageMetadata) Last() int64 {
	first := m.First()
	if first == 0 {
		return 0
	}
	return min(first+int64(m.Size)-1, m.TotalElements)
}

// =============================================================================
// Page Requests
// =============================================================================

// Sortable fields. The values double as the public query parameter names.
const (
	SortByID    = "id"
	SortByName  = "name"
	SortByEmail = "email"
)

// Sort describes the ordering of a paged query.
type Sort struct {
	Field string // One of the SortBy* constants
	Desc  bool   // Descending when true
}

// String renders the sort in query-parameter form, e.g. "name,desc".
func (s Sort) String() string {
	if s.Field == "" {
		return ""
	}
	if s.Desc {
		return s.Field + ",desc"
	}
	return s.Field + ",asc"
}

// ParseSort parses a "field[,direction]" expression.
//
// An empty string yields the default ordering (by ID, ascending).
// Unknown fields or directions return an EINVALID error.
func ParseSort(raw string) (Sort, error) {
	const op = "sort.parse"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Sort{Field: SortByID}, nil
	}

	field, dir, _ := strings.Cut(raw, ",")
	field = strings.ToLower(strings.TrimSpace(field))
	dir = strings.ToLower(strings.TrimSpace(dir))

	switch field {
	case SortByID, SortByName, SortByEmail:
	default:
		return Sort{}, Errorf(EINVALID, op, "cannot sort by %q", field)
	}

	switch dir {
	case "", "asc":
		return Sort{Field: field}, nil
	case "desc":
		return Sort{Field: field, Desc: true}, nil
	default:
		return Sort{}, Errorf(EINVALID, op, "sort direction must be asc or desc, got %q", dir)
	}
}

// PageRequest asks for one page of a listing.
type PageRequest struct {
	Page int  // 0-based page index
	Size int  // Page size, already clamped by the caller
	Sort Sort // Ordering
}

// MaxPage returns the highest 0-based page whose offset still fits in an
// int32 SQL parameter.
func (p PageRequest) MaxPage() int {
	if p.Size <= 0 {
		return 0
	}
	return math.MaxInt32 / p.Size
}

// InRange reports whether Offset can be passed to the database as-is.
func (p PageRequest) InRange() bool {
	return p.Page <= p.MaxPage()
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	return p.Page * p.Size
}

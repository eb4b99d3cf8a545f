// Package pagewindow computes the page-number strip shown under paginated
// lists.
//
// A strip always shows the first page, the last page and a small window
// around the current page. Ranges further away collapse into ellipsis
// items. The package holds no state and does no formatting; callers render
// the returned items however they like.
package pagewindow

import "github.com/DukeRupert/pagestrip/internal/domain"

const (
	// CenterPages is the width of the window kept around the current page
	// when both ends of the strip are collapsed.
	CenterPages = 3

	// EllipsisThreshold is the minimum gap between an edge and the nearest
	// shown page before that gap collapses into an ellipsis.
	EllipsisThreshold = 2
)

// fullStripLimit is the largest page count listed without any ellipsis.
const fullStripLimit = CenterPages + 2*EllipsisThreshold

// PageItem is a single strip entry.
//
// For an ellipsis, Number is the page adjacent to the collapsed range on
// the side nearer the visible window. Renderers may use it as a jump target
// or ignore it.
type PageItem struct {
	Number   int  `json:"pageNumber"`
	Ellipsis bool `json:"ellipsis"`
}

// Compute returns the strip for a 1-based currentPage out of totalPages.
//
// currentPage is not validated; out-of-range values still produce a
// deterministic strip. A totalPages of zero yields an empty slice.
func Compute(currentPage, totalPages int) []PageItem {
	if totalPages <= fullStripLimit {
		return full(totalPages)
	}

	windowStart := max(currentPage-1, 1)
	windowEnd := min(currentPage+1, totalPages)

	showLeft := windowStart > EllipsisThreshold
	showRight := windowEnd < totalPages-EllipsisThreshold

	switch {
	case !showLeft && showRight:
		return collapseRight(totalPages)
	case showLeft && !showRight:
		return collapseLeft(totalPages)
	case showLeft && showRight:
		return collapseBoth(windowStart, windowEnd, totalPages)
	default:
		// Unreachable with the current constants for in-range pages.
		return full(totalPages)
	}
}

// FromMetadata computes the strip for a page returned by the paging layer.
// The metadata page number is 0-based.
func FromMetadata(meta *domain.PageMetadata) ([]PageItem, error) {
	if meta == nil {
		return nil, domain.Invalid("pagewindow.from_metadata", "page metadata is required")
	}
	return Compute(meta.Number+1, meta.TotalPages), nil
}

// collapseRight lists the leading block, then one ellipsis, then the last page.
func collapseRight(lastPage int) []PageItem {
	end := CenterPages + EllipsisThreshold

	items := make([]PageItem, 0, end+2)
	items = appendRange(items, 1, end)
	items = append(items, PageItem{Number: end + 1, Ellipsis: true})
	return append(items, PageItem{Number: lastPage})
}

// collapseLeft lists the first page, then one ellipsis, then the trailing block.
func collapseLeft(lastPage int) []PageItem {
	start := lastPage - CenterPages - 1

	items := make([]PageItem, 0, lastPage-start+3)
	items = append(items, PageItem{Number: 1})
	items = append(items, PageItem{Number: start - 1, Ellipsis: true})
	return appendRange(items, start, lastPage)
}

// collapseBoth keeps the window around the current page between two ellipses.
func collapseBoth(windowStart, windowEnd, lastPage int) []PageItem {
	items := make([]PageItem, 0, windowEnd-windowStart+5)
	items = append(items, PageItem{Number: 1})
	items = append(items, PageItem{Number: windowStart - 1, Ellipsis: true})
	items = appendRange(items, windowStart, windowEnd)
	items = append(items, PageItem{Number: windowEnd + 1, Ellipsis: true})
	return append(items, PageItem{Number: lastPage})
}

func full(lastPage int) []PageItem {
	return appendRange(make([]PageItem, 0, max(lastPage, 0)), 1, lastPage)
}

// appendRange appends numbered items start..end inclusive.
func appendRange(items []PageItem, start, end int) []PageItem {
	for n := start; n <= end; n++ {
		items = append(items, PageItem{Number: n})
	}
	return items
}

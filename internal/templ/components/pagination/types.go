// Package pagination provides shared pagination components for list pages.
package pagination

import (
	"net/url"
	"strconv"

	"github.com/DukeRupert/pagestrip/internal/domain"
	"github.com/DukeRupert/pagestrip/internal/pagewindow"
)

// Data contains pagination information for display.
type Data struct {
	CurrentPage int
	TotalPages  int
	PerPage     int
	Total       int64
	First       int64 // 1-based ordinal of the first row shown, 0 if none
	Last        int64 // 1-based ordinal of the last row shown, 0 if none
	HasPrevious bool
	HasNext     bool
	PrevPage    int
	NextPage    int
	Items       []pagewindow.PageItem
}

// Config allows customization of pagination behavior.
type Config struct {
	BaseURL  string     // e.g., "/users"
	Query    url.Values // Extra query parameters preserved on every link (size, sort)
	TargetID string     // htmx target, e.g., "user-list"
	UseHtmx  bool       // Enable htmx partial loading
	PushURL  bool       // Update browser URL with hx-push-url
}

// NewData builds display data from page metadata returned by the service.
func NewData(meta *domain.PageMetadata) (Data, error) {
	items, err := pagewindow.FromMetadata(meta)
	if err != nil {
		return Data{}, err
	}

	current := meta.CurrentPage()
	return Data{
		CurrentPage: current,
		TotalPages:  meta.TotalPages,
		PerPage:     meta.Size,
		Total:       meta.TotalElements,
		First:       meta.First(),
		Last:        meta.Last(),
		HasPrevious: meta.HasPrevious(),
		HasNext:     meta.HasNext(),
		PrevPage:    min(current-1, meta.TotalPages),
		NextPage:    current + 1,
		Items:       items,
	}, nil
}

// Visible returns true if the strip has anything worth rendering.
func (d Data) Visible() bool {
	return d.TotalPages > 1
}

// PageURL returns the link for a 1-based page, keeping cfg.Query intact.
func (c Config) PageURL(page int) string {
	q := url.Values{}
	for k, v := range c.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	return c.BaseURL + "?" + q.Encode()
}

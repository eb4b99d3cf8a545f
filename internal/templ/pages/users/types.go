package users

import (
	"github.com/DukeRupert/pagestrip/internal/domain"
	"github.com/DukeRupert/pagestrip/internal/templ/components/pagination"
)

// ContentID is the element swapped by htmx when paging.
const ContentID = "user-list"

// DisplayUser contains user data formatted for display
type DisplayUser struct {
	ID      int64
	Name    string
	Email   string
	Created string
}

// SortLink is a clickable column header.
type SortLink struct {
	Label  string
	Href   string
	Active bool
	Desc   bool
}

// ListPageData contains data for the users list page
type ListPageData struct {
	Users      []DisplayUser
	Columns    []SortLink
	Sort       domain.Sort
	Pagination pagination.Data
	Config     pagination.Config
}

// Package handler contains HTTP handlers for the users directory.
//
// This file implements the paged user listing, as an HTML page and as JSON.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DukeRupert/pagestrip/internal/domain"
	"github.com/DukeRupert/pagestrip/internal/metrics"
	"github.com/DukeRupert/pagestrip/internal/pagewindow"
	"github.com/DukeRupert/pagestrip/internal/service"
	"github.com/DukeRupert/pagestrip/internal/templ/components/pagination"
	"github.com/DukeRupert/pagestrip/internal/templ/pages/users"
)

// =============================================================================
// Handler Configuration
// =============================================================================

// UserHandlerConfig holds listing limits.
type UserHandlerConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// UserHandler handles user directory requests.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
	cfg         UserHandlerConfig
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	userService service.UserService,
	logger *slog.Logger,
	cfg UserHandlerConfig,
) *UserHandler {
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = 20
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	return &UserHandler{
		userService: userService,
		logger:      logger,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the user routes on the provided ServeMux.
//
// Routes registered:
// - GET /users     -> Index
// - GET /api/users -> IndexJSON
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /users", h.Index)
	mux.HandleFunc("GET /api/users", h.IndexJSON)
}

// =============================================================================
// Query Parsing
// =============================================================================

// listQuery is a parsed listing request plus the parameters to keep on links.
type listQuery struct {
	request domain.PageRequest
	keep    url.Values // size and sort, when the request set them
}

// parseListQuery reads page (1-based), size and sort from the query string.
// Bad page numbers fall back to 1 and sizes are clamped. An unknown sort or
// a page whose offset cannot reach the database is an error.
func (h *UserHandler) parseListQuery(r *http.Request) (listQuery, error) {
	q := r.URL.Query()
	lq := listQuery{keep: url.Values{}}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	size := h.cfg.DefaultPageSize
	if raw := q.Get("size"); raw != "" {
		if s, err := strconv.Atoi(raw); err == nil && s > 0 {
			size = min(s, h.cfg.MaxPageSize)
		}
		if size != h.cfg.DefaultPageSize {
			lq.keep.Set("size", strconv.Itoa(size))
		}
	}

	if !(domain.PageRequest{Page: page - 1, Size: size}).InRange() {
		return lq, domain.Errorf(domain.EINVALID, "user.list_query", "page %d is out of range", page)
	}

	sort, err := domain.ParseSort(q.Get("sort"))
	if err != nil {
		return lq, err
	}
	if q.Get("sort") != "" {
		lq.keep.Set("sort", sort.String())
	}

	lq.request = domain.PageRequest{
		Page: page - 1,
		Size: size,
		Sort: sort,
	}
	return lq, nil
}

// =============================================================================
// GET /users - HTML listing
// =============================================================================

// Index renders the user directory. htmx requests get only the list fragment.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	lq, err := h.parseListQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	result, err := h.userService.List(r.Context(), lq.request)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	pageData, err := pagination.NewData(&result.Page)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	h.observe(pageData.Items, lq.request.Size)

	cfg := pagination.Config{
		BaseURL:  r.URL.Path,
		Query:    lq.keep,
		TargetID: users.ContentID,
		UseHtmx:  true,
		PushURL:  true,
	}

	data := users.ListPageData{
		Users:      toDisplayUsers(result.Users),
		Columns:    sortColumns(cfg, lq.request.Sort),
		Sort:       lq.request.Sort,
		Pagination: pageData,
		Config:     cfg,
	}

	component := users.IndexPage(data)
	format := "html"
	if r.Header.Get("HX-Request") == "true" {
		component = users.Content(data)
		format = "fragment"
	}
	metrics.UserPagesServed.WithLabelValues(format).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render users index", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// =============================================================================
// GET /api/users - JSON listing
// =============================================================================

// UserListResponse is the JSON body of GET /api/users.
type UserListResponse struct {
	Content   []domain.User         `json:"content"`
	Page      domain.PageMetadata   `json:"page"`
	PageItems []pagewindow.PageItem `json:"pageItems"`
}

// IndexJSON returns one page of users with paging metadata and strip items.
func (h *UserHandler) IndexJSON(w http.ResponseWriter, r *http.Request) {
	lq, err := h.parseListQuery(r)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	result, err := h.userService.List(r.Context(), lq.request)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	items, err := pagewindow.FromMetadata(&result.Page)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	h.observe(items, lq.request.Size)
	metrics.UserPagesServed.WithLabelValues("json").Inc()

	resp := UserListResponse{
		Content:   result.Users,
		Page:      result.Page,
		PageItems: items,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to encode users response", "error", err)
	}
}

// =============================================================================
// Helper Functions
// =============================================================================

func (h *UserHandler) observe(items []pagewindow.PageItem, size int) {
	metrics.PaginationStrips.WithLabelValues(string(pagewindow.LayoutOf(items))).Inc()
	metrics.UserPageSize.Observe(float64(size))
}

// toDisplayUsers converts domain users to display rows.
func toDisplayUsers(list []domain.User) []users.DisplayUser {
	rows := make([]users.DisplayUser, len(list))
	for i, u := range list {
		created := ""
		if !u.CreatedAt.IsZero() {
			created = u.CreatedAt.Format("Jan 2, 2006")
		}
		rows[i] = users.DisplayUser{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Created: created,
		}
	}
	return rows
}

// sortColumns builds the column header links. Clicking the active column
// flips its direction; any other column sorts ascending. Links go back to
// the first page.
func sortColumns(cfg pagination.Config, current domain.Sort) []users.SortLink {
	columns := []struct {
		field string
		label string
	}{
		{domain.SortByID, "ID"},
		{domain.SortByName, "Name"},
		{domain.SortByEmail, "Email"},
	}

	links := make([]users.SortLink, 0, len(columns))
	for _, col := range columns {
		active := current.Field == col.field
		next := domain.Sort{Field: col.field, Desc: active && !current.Desc}

		q := url.Values{}
		if size := cfg.Query.Get("size"); size != "" {
			q.Set("size", size)
		}
		q.Set("sort", next.String())

		links = append(links, users.SortLink{
			Label:  col.label,
			Href:   cfg.BaseURL + "?" + q.Encode(),
			Active: active,
			Desc:   active && current.Desc,
		})
	}
	return links
}

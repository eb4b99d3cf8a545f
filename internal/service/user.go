// Package service contains the business logic layer.
//
// This file implements the paged user directory.
package service

import (
	"context"
	"log/slog"

	"github.com/DukeRupert/pagestrip/internal/domain"
	"github.com/DukeRupert/pagestrip/internal/repository"
)

// =============================================================================
// Interface Definition
// =============================================================================

// UserService defines the interface for user directory operations.
type UserService interface {
	// List returns one page of users with its paging metadata.
	// Pages past the end come back empty with correct totals.
	// Returns domain.EINVALID for a non-positive page size.
	List(ctx context.Context, req domain.PageRequest) (*domain.UserPage, error)
}

// UserQuerier is the subset of repository.Queries the service needs.
type UserQuerier interface {
	CountUsers(ctx context.Context) (int64, error)
	ListUsers(ctx context.Context, arg repository.ListUsersParams) ([]repository.User, error)
}

// =============================================================================
// Implementation
// =============================================================================

type userService struct {
	queries UserQuerier
	logger  *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(queries UserQuerier, logger *slog.Logger) UserService {
	return &userService{
		queries: queries,
		logger:  logger,
	}
}

// List retrieves a page of users.
func (s *userService) List(ctx context.Context, req domain.PageRequest) (*domain.UserPage, error) {
	const op = "user.list"

	if req.Size < 1 {
		return nil, domain.Invalid(op, "page size must be at least 1")
	}
	if req.Page < 0 {
		req.Page = 0
	}

	total, err := s.queries.CountUsers(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count users")
	}

	page := &domain.UserPage{
		Users: []domain.User{},
		Page:  domain.NewPageMetadata(req.Size, req.Page, total),
	}

	// Nothing to fetch past the last row
	if !req.InRange() || int64(req.Offset()) >= total {
		s.logger.Debug("page beyond end of users",
			"page", req.Page,
			"size", req.Size,
			"total", total,
		)
		return page, nil
	}

	rows, err := s.queries.ListUsers(ctx, repository.ListUsersParams{
		Limit:   int32(req.Size),
		Offset:  int32(req.Offset()),
		OrderBy: req.Sort.Field,
		Desc:    req.Sort.Desc,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list users")
	}

	for _, row := range rows {
		page.Users = append(page.Users, rowToUser(row))
	}

	return page, nil
}

// rowToUser converts a repository row to a domain User.
func rowToUser(row repository.User) domain.User {
	user := domain.User{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
	}
	if row.CreatedAt.Valid {
		user.CreatedAt = row.CreatedAt.Time
	}
	return user
}

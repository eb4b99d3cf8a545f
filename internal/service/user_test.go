package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DukeRupert/pagestrip/internal/domain"
	"github.com/DukeRupert/pagestrip/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier serves users from memory.
type fakeQuerier struct {
	users    []repository.User
	countErr error
	listErr  error

	listCalls int
	lastList  repository.ListUsersParams
}

func (f *fakeQuerier) CountUsers(ctx context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.users)), nil
}

func (f *fakeQuerier) ListUsers(ctx context.Context, arg repository.ListUsersParams) ([]repository.User, error) {
	f.listCalls++
	f.lastList = arg
	if f.listErr != nil {
		return nil, f.listErr
	}
	start := min(int(arg.Offset), len(f.users))
	end := min(start+int(arg.Limit), len(f.users))
	return f.users[start:end], nil
}

func newFakeQuerier(n int) *fakeQuerier {
	f := &fakeQuerier{}
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		f.users = append(f.users, repository.User{
			ID:        int64(i),
			Name:      "User",
			Email:     "user@example.com",
			CreatedAt: sql.NullTime{Time: created, Valid: true},
		})
	}
	return f
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserService_List(t *testing.T) {
	q := newFakeQuerier(45)
	svc := NewUserService(q, testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{
		Page: 1,
		Size: 20,
		Sort: domain.Sort{Field: domain.SortByName, Desc: true},
	})
	require.NoError(t, err)

	assert.Len(t, page.Users, 20)
	assert.Equal(t, int64(21), page.Users[0].ID)
	assert.False(t, page.Users[0].CreatedAt.IsZero())
	assert.Equal(t, domain.PageMetadata{Size: 20, Number: 1, TotalElements: 45, TotalPages: 3}, page.Page)

	assert.Equal(t, repository.ListUsersParams{Limit: 20, Offset: 20, OrderBy: "name", Desc: true}, q.lastList)
}

func TestUserService_List_LastPartialPage(t *testing.T) {
	svc := NewUserService(newFakeQuerier(45), testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{Page: 2, Size: 20})
	require.NoError(t, err)

	assert.Len(t, page.Users, 5)
	assert.False(t, page.Page.HasNext())
}

func TestUserService_List_BeyondLastPage(t *testing.T) {
	q := newFakeQuerier(45)
	svc := NewUserService(q, testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{Page: 9, Size: 20})
	require.NoError(t, err)

	assert.True(t, page.IsEmpty())
	assert.NotNil(t, page.Users)
	assert.Equal(t, 3, page.Page.TotalPages)
	assert.Equal(t, 9, page.Page.Number)
	assert.Equal(t, 0, q.listCalls, "should not query past the end")
}

func TestUserService_List_EmptyDirectory(t *testing.T) {
	svc := NewUserService(newFakeQuerier(0), testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{Page: 0, Size: 20})
	require.NoError(t, err)

	assert.True(t, page.IsEmpty())
	assert.Equal(t, 0, page.Page.TotalPages)
}

func TestUserService_List_NegativePageClamped(t *testing.T) {
	svc := NewUserService(newFakeQuerier(5), testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{Page: -3, Size: 2})
	require.NoError(t, err)

	assert.Equal(t, 0, page.Page.Number)
	assert.Len(t, page.Users, 2)
}

func TestUserService_List_Errors(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name     string
		querier  *fakeQuerier
		req      domain.PageRequest
		wantCode string
	}{
		{
			name:     "zero size",
			querier:  newFakeQuerier(5),
			req:      domain.PageRequest{Size: 0},
			wantCode: domain.EINVALID,
		},
		{
			name:     "count fails",
			querier:  &fakeQuerier{countErr: dbErr},
			req:      domain.PageRequest{Size: 10},
			wantCode: domain.EINTERNAL,
		},
		{
			name:     "list fails",
			querier:  &fakeQuerier{users: newFakeQuerier(5).users, listErr: dbErr},
			req:      domain.PageRequest{Size: 10},
			wantCode: domain.EINTERNAL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(tt.querier, testLogger())

			page, err := svc.List(context.Background(), tt.req)
			require.Error(t, err)
			assert.Nil(t, page)
			assert.Equal(t, tt.wantCode, domain.ErrorCode(err))
			if tt.wantCode == domain.EINTERNAL {
				assert.ErrorIs(t, err, dbErr)
				assert.Equal(t, "user.list", domain.ErrorOp(err))
			}
		})
	}
}

func TestUserService_List_PageBeyondOffsetLimit(t *testing.T) {
	q := newFakeQuerier(100)
	svc := NewUserService(q, testLogger())

	page, err := svc.List(context.Background(), domain.PageRequest{Page: 1 << 60, Size: 16})
	require.NoError(t, err)

	assert.Equal(t, 0, q.listCalls)
	assert.Empty(t, page.Users)
	assert.Equal(t, 1<<60, page.Page.Number)
	assert.Equal(t, 7, page.Page.TotalPages)
	assert.Zero(t, page.Page.First())
	assert.Zero(t, page.Page.Last())
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// User is a row of the users table.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt sql.NullTime
}

// orderColumns maps public sort fields to SQL columns. Only values from this
// map are ever interpolated into a query.
var orderColumns = map[string]string{
	"id":    "id",
	"name":  "name",
	"email": "email",
}

const countUsers = `-- name: CountUsers :one
SELECT count(*) FROM users
`

// CountUsers returns the total number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

// ListUsersParams selects one page of users.
type ListUsersParams struct {
	Limit   int32
	Offset  int32
	OrderBy string // "id", "name" or "email"; anything else orders by id
	Desc    bool
}

const listUsers = `-- name: ListUsers :many
SELECT id, name, email, created_at
FROM users
ORDER BY %s %s, id %s
LIMIT $1 OFFSET $2
`

// listUsersQuery builds the ordered listing query. The id tiebreak keeps
// page boundaries stable when the sort column has duplicates.
func listUsersQuery(orderBy string, desc bool) string {
	column, ok := orderColumns[orderBy]
	if !ok {
		column = "id"
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf(listUsers, column, dir, dir)
}

// ListUsers returns one page of users in the requested order.
func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsersQuery(arg.OrderBy, arg.Desc), arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

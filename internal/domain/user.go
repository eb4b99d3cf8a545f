// Package domain contains core business types and interfaces.
//
// This file defines the User domain type and its paged listing.
package domain

import "time"

// User is a directory entry.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPage is one page of users together with its paging metadata.
type UserPage struct {
	Users []User
	Page  PageMetadata
}

// IsEmpty returns true if the page holds no users.
func (p *UserPage) IsEmpty() bool {
	return len(p.Users) == 0
}

package models

import "time"

// Repository is a named collection of papers with a single owner.
// Deleting a repository cascades to its papers and their versions.
type Repository struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerEmail  string    `json:"ownerEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// User is the session identity returned by the auth endpoints.
// The backend never echoes the password back.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

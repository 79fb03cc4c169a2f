package domain

import "context"

type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by its normalized email address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateStreaks writes the materialized streak counters computed by the
	// background worker.
	UpdateStreaks(ctx context.Context, id string, current, longest int) error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tracker/internal/domain/entity"
	"tracker/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create persists a new user. Returns ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

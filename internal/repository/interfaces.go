// Package repository defines data access interfaces for Hunter Codex.
// These interfaces abstract database operations, allowing for different
// implementations (PostgreSQL, SQLite, in-memory for testing) while keeping
// the service layer clean.
package repository

import (
	"context"

	"github.com/prn-tf/hunter-codex/internal/domain"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create creates a new user. Returns ErrDuplicate if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByUsername retrieves a user by username. Returns ErrNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// ItemRepository defines the interface for item data access.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by ID. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Item, error)

	// List returns all items in the store's natural order.
	List(ctx context.Context) ([]*domain.Item, error)

	// Update applies a partial replacement of item fields.
	// Returns the updated item, or ErrNotFound if no record matches.
	Update(ctx context.Context, id string, patch domain.ItemPatch) (*domain.Item, error)

	// Delete removes an item by ID. Returns ErrNotFound if no record matches.
	Delete(ctx context.Context, id string) error
}

package postgres

import (
	"context"
	"fmt"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// itemRepository implements repository.ItemRepository for PostgreSQL.
type itemRepository struct {
	db *DB
}

// NewItemRepository creates a new PostgreSQL item repository.
func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new item.
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `
		SELECT id, name, category, created_at
		FROM items
		WHERE id = $1
	`

	item := &domain.Item{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	return item, nil
}

// List returns all items in insertion order.
func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, name, category, created_at
		FROM items
		ORDER BY created_at
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Update applies a partial replacement of item fields.
func (r *itemRepository) Update(ctx context.Context, id string, patch domain.ItemPatch) (*domain.Item, error) {
	query := `
		UPDATE items
		SET name = COALESCE($2, name), category = COALESCE($3, category)
		WHERE id = $1
		RETURNING id, name, category, created_at
	`

	item := &domain.Item{}
	err := r.db.Pool.QueryRow(ctx, query, id, patch.Name, patch.Category).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes an item by ID.
func (r *itemRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure itemRepository implements repository.ItemRepository.
var _ repository.ItemRepository = (*itemRepository)(nil)

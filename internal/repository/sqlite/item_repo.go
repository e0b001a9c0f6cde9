package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// itemRepository implements repository.ItemRepository for SQLite.
type itemRepository struct {
	db *DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

// Create persists a new item.
func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (id, name, category, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.Category,
		item.CreatedAt.Format(time.RFC3339Nano),
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
		WHERE id = ?
	`

	item := &domain.Item{}
	var createdAt string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&createdAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	item.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	return item, nil
}

// List returns all items in insertion order.
func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT id, name, category, created_at
		FROM items
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		var createdAt string

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Category,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}

		item.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
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
		SET name = COALESCE(?, name), category = COALESCE(?, category)
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, patch.Name, patch.Category, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes an item by ID.
func (r *itemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Ensure itemRepository implements repository.ItemRepository.
var _ repository.ItemRepository = (*itemRepository)(nil)

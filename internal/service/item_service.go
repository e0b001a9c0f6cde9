package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// ItemService handles catalog item operations. The repository it receives is
// normally the caching decorator, so cache coherence is enforced below this
// layer without the service knowing about keys or TTLs.
type ItemService struct {
	itemRepo repository.ItemRepository
	logger   zerolog.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, logger zerolog.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger.With().Str("service", "item").Logger(),
	}
}

// CreateItemInput contains the fields for a new item.
type CreateItemInput struct {
	Name     string
	Category string
}

// Create persists a new item and returns it with its assigned ID.
func (s *ItemService) Create(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	item := domain.NewItem(input.Name, input.Category)
	item.ID = uuid.NewString()

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create item")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	s.logger.Info().
		Str("item_id", item.ID).
		Str("name", item.Name).
		Str("category", item.Category).
		Msg("item created")

	return item, nil
}

// Get retrieves a single item by ID.
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error().Err(err).Str("item_id", id).Msg("failed to get item")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}
	return item, nil
}

// List returns all items in the store's natural order.
func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list items")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}
	return items, nil
}

// UpdateItemInput describes a partial replacement of item fields.
type UpdateItemInput struct {
	ID    string
	Patch domain.ItemPatch
}

// Update applies a partial replacement and returns the updated item.
func (s *ItemService) Update(ctx context.Context, input UpdateItemInput) (*domain.Item, error) {
	item, err := s.itemRepo.Update(ctx, input.ID, input.Patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error().Err(err).Str("item_id", input.ID).Msg("failed to update item")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	s.logger.Info().Str("item_id", item.ID).Msg("item updated")
	return item, nil
}

// Delete removes an item by ID.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		s.logger.Error().Err(err).Str("item_id", id).Msg("failed to delete item")
		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return nil
}

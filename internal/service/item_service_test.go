package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// mockItemRepo is an in-memory ItemRepository for tests.
type mockItemRepo struct {
	items map[string]*domain.Item
	order []string
	err   error
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[string]*domain.Item)}
}

func (m *mockItemRepo) Create(_ context.Context, item *domain.Item) error {
	if m.err != nil {
		return m.err
	}
	m.items[item.ID] = item
	m.order = append(m.order, item.ID)
	return nil
}

func (m *mockItemRepo) GetByID(_ context.Context, id string) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (m *mockItemRepo) List(_ context.Context) ([]*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	items := make([]*domain.Item, 0, len(m.order))
	for _, id := range m.order {
		items = append(items, m.items[id])
	}
	return items, nil
}

func (m *mockItemRepo) Update(_ context.Context, id string, patch domain.ItemPatch) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(item)
	return item, nil
}

func (m *mockItemRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestItemService_Create(t *testing.T) {
	repo := newMockItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	item, err := svc.Create(context.Background(), CreateItemInput{Name: "Potion", Category: "consumable"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Potion", item.Name)
	assert.Equal(t, "consumable", item.Category)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestItemService_Get(t *testing.T) {
	repo := newMockItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), CreateItemInput{Name: "Potion", Category: "consumable"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc := NewItemService(newMockItemRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_List(t *testing.T) {
	repo := newMockItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), CreateItemInput{Name: "Potion", Category: "consumable"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateItemInput{Name: "Poke Ball", Category: "gear"})
	require.NoError(t, err)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Potion", items[0].Name)
	assert.Equal(t, "Poke Ball", items[1].Name)
}

func TestItemService_Update(t *testing.T) {
	repo := newMockItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), CreateItemInput{Name: "Potion", Category: "consumable"})
	require.NoError(t, err)

	name := "Super Potion"
	updated, err := svc.Update(context.Background(), UpdateItemInput{
		ID:    created.ID,
		Patch: domain.ItemPatch{Name: &name},
	})
	require.NoError(t, err)
	assert.Equal(t, "Super Potion", updated.Name)
	// Absent patch fields are left unchanged.
	assert.Equal(t, "consumable", updated.Category)
}

func TestItemService_Update_NotFound(t *testing.T) {
	svc := NewItemService(newMockItemRepo(), zerolog.Nop())

	name := "Super Potion"
	_, err := svc.Update(context.Background(), UpdateItemInput{
		ID:    "missing",
		Patch: domain.ItemPatch{Name: &name},
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_Delete(t *testing.T) {
	repo := newMockItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), CreateItemInput{Name: "Potion", Category: "consumable"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_Delete_NotFound(t *testing.T) {
	svc := NewItemService(newMockItemRepo(), zerolog.Nop())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_StoreError(t *testing.T) {
	repo := newMockItemRepo()
	repo.err = assert.AnError
	svc := NewItemService(repo, zerolog.Nop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternalError)
}

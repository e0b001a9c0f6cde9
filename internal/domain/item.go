package domain

import "time"

// Item is a single catalog entry. Items have no owner: any authenticated
// user may read or mutate any item.
type Item struct {
	// ID is the opaque unique identifier.
	ID string `json:"id"`

	// Name is a required, non-empty display name.
	Name string `json:"name"`

	// Category is a required, non-empty grouping label.
	Category string `json:"category"`

	// CreatedAt defaults to the creation time.
	CreatedAt time.Time `json:"created_at"`
}

// NewItem creates an Item with a fresh creation timestamp.
// The ID is assigned by the caller before persisting.
func NewItem(name, category string) *Item {
	return &Item{
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}

// ItemPatch describes a partial replacement of item fields.
// Nil fields are left unchanged.
type ItemPatch struct {
	Name     *string
	Category *string
}

// Apply copies the non-nil patch fields onto the item.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil
}

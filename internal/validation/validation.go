// Package validation defines the request validation rules applied at the API
// boundary. Validation runs before any store or cache access; failures are
// reported per-field so clients can surface them against the right input.
package validation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/prn-tf/hunter-codex/internal/domain"
)

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks registration format rules: username 3+ characters of
// alphanumerics/underscore, password at least 6 characters.
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 0).Error("username must be at least 3 characters"),
			validation.Match(domain.UsernamePattern).Error("username may only contain letters, numbers, and underscores"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 0).Error("password must be at least 6 characters"),
		),
	)
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks presence only; format rules are not re-checked at login.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// CreateItemRequest is the payload for POST /api/items.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Validate checks that both item fields are present and non-empty.
func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
	)
}

// UpdateItemRequest is the payload for PUT /api/items/{id}.
// Absent fields are left unchanged; provided fields must be non-empty.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
}

// Validate rejects provided-but-empty fields.
func (r UpdateItemRequest) Validate() error {
	errs := validation.Errors{}
	if r.Name != nil && *r.Name == "" {
		errs["name"] = errors.New("name must not be empty")
	}
	if r.Category != nil && *r.Category == "" {
		errs["category"] = errors.New("category must not be empty")
	}
	return errs.Filter()
}

// Patch converts the request into a domain patch.
func (r UpdateItemRequest) Patch() domain.ItemPatch {
	return domain.ItemPatch{
		Name:     r.Name,
		Category: r.Category,
	}
}

// Fields flattens a validation error into per-field messages for the
// HTTP 400 response body. Returns nil if err is not a validation error.
func Fields(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for name, ferr := range verrs {
		fields[name] = ferr.Error()
	}
	return fields
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/service"
	"github.com/prn-tf/hunter-codex/internal/validation"
)

// ItemHandler handles CRUD requests for catalog items.
// All routes registered here sit behind the auth middleware.
type ItemHandler struct {
	itemService *service.ItemService
	logger      zerolog.Logger
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *service.ItemService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With().Str("handler", "item").Logger(),
	}
}

// RegisterRoutes registers the item routes.
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

func (h *ItemHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validation.Fields(err))
		return
	}

	item, err := h.itemService.Create(r.Context(), service.CreateItemInput{
		Name:     req.Name,
		Category: req.Category,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("item creation failed")
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("item listing failed")
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	if items == nil {
		items = []*domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error().Err(err).Str("item_id", id).Msg("item lookup failed")
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req validation.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeValidationErrors(w, validation.Fields(err))
		return
	}

	item, err := h.itemService.Update(r.Context(), service.UpdateItemInput{
		ID:    id,
		Patch: req.Patch(),
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error().Err(err).Str("item_id", id).Msg("item update failed")
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			writeMessage(w, http.StatusNotFound, "item not found")
			return
		}
		h.logger.Error().Err(err).Str("item_id", id).Msg("item deletion failed")
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "item deleted")
}

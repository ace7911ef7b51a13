// internal/handler/catalog.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nimbushr/catalog/internal/domain"
	"github.com/nimbushr/catalog/internal/middleware"
	"github.com/nimbushr/catalog/internal/model"
	"github.com/nimbushr/catalog/internal/service"
)

type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// mutationData is the refreshed projection returned by every write.
type mutationData struct {
	ConfigType model.ConfigType   `json:"configType"`
	Items      []service.ItemView `json:"items"`
}

// scopeFromRequest reads the optional scope_id query parameter. Absent means
// the global catalog.
func scopeFromRequest(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("scope_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// actorFromRequest resolves the acting user's id from the token claims.
func actorFromRequest(r *http.Request) *uuid.UUID {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return nil
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}
	return &id
}

// GetAll returns every config type mapped to its active items
func (h *CatalogHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	views, err := h.service.GetAll(r.Context(), scopeID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	data := make(map[model.ConfigType][]service.ItemView, len(views))
	for ct, view := range views {
		data[ct] = view.Items
	}

	respondWithData(w, http.StatusOK, "System configuration retrieved", data)
}

// GetByType returns the active items of one catalog
func (h *CatalogHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	view, err := h.service.GetByType(r.Context(), chi.URLParam(r, "type"), scopeID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, "Configuration retrieved", view)
}

// AddItemRequest represents the request body for appending a catalog item
type AddItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// AddItem appends an item to a catalog
func (h *CatalogHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	view, err := h.service.AddItem(r.Context(), service.AddItemInput{
		ConfigType:  chi.URLParam(r, "type"),
		ScopeID:     scopeID,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		ActorID:     actorFromRequest(r),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, "Item added",
		mutationData{ConfigType: view.ConfigType, Items: view.Items})
}

// UpdateItemRequest represents the partial-patch body for editing an item.
// Omitted fields stay unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateItem applies a partial patch to one item
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID", err.Error())
		return
	}

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	view, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "type"), scopeID, itemID, service.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    req.IsActive,
	}, actorFromRequest(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, "Item updated",
		mutationData{ConfigType: view.ConfigType, Items: view.Items})
}

// RemoveItem hard-deletes one item, unless live user records reference it
func (h *CatalogHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID", err.Error())
		return
	}

	view, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "type"), scopeID, itemID, actorFromRequest(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, "Item removed",
		mutationData{ConfigType: view.ConfigType, Items: view.Items})
}

// ReorderRequest represents the request body for reordering a catalog
type ReorderRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// ReorderItems assigns display order by list position. Unknown ids are
// skipped.
func (h *CatalogHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	scopeID, err := scopeFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid scope ID", err.Error())
		return
	}

	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemIDs == nil {
		respondWithError(w, http.StatusBadRequest, "Malformed reorder payload", domain.ErrMalformedReorder.Error())
		return
	}

	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		itemIDs = append(itemIDs, id)
	}

	view, err := h.service.ReorderItems(r.Context(), chi.URLParam(r, "type"), scopeID, itemIDs, actorFromRequest(r))
	if err != nil {
		h.handleError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, "Items reordered",
		mutationData{ConfigType: view.ConfigType, Items: view.Items})
}

// handleError handles common error cases
func (h *CatalogHandler) handleError(w http.ResponseWriter, err error) {
	var inUse *domain.ItemInUseError

	switch {
	case errors.As(err, &inUse):
		respondWithJSON(w, http.StatusBadRequest, Response{
			Message:    "Item is in use and cannot be deleted",
			Error:      inUse.Error(),
			UsageCount: &inUse.UsageCount,
		})
	case errors.Is(err, domain.ErrInvalidConfigType):
		respondWithError(w, http.StatusBadRequest, "Invalid config type", err.Error())
	case errors.Is(err, domain.ErrEmptyItemName):
		respondWithError(w, http.StatusBadRequest, "Item name is required", err.Error())
	case errors.Is(err, domain.ErrDuplicateItemName):
		respondWithError(w, http.StatusBadRequest, "Duplicate item name", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, domain.ErrCatalogNotFound):
		respondWithError(w, http.StatusNotFound, "Catalog not found", err.Error())
	case errors.Is(err, domain.ErrItemNotFound):
		respondWithError(w, http.StatusNotFound, "Item not found", err.Error())
	case errors.Is(err, domain.ErrMalformedReorder):
		respondWithError(w, http.StatusBadRequest, "Malformed reorder payload", err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

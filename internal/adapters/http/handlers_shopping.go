package http

import (
	"net/http"

	"github.com/flavorvault/recipe-service/internal/application"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listShopping(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "list_shopping")
		return
	}
	entries, err := h.service.ListShopping(r.Context(), sid)
	if err != nil {
		writeMappedError(r.Context(), w, "list_shopping", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"entries": entries,
		"count":   len(entries),
	})
}

func (h *Handler) addShoppingEntry(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "add_shopping_entry")
		return
	}
	var req application.ShoppingEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_shopping_entry", err)
		return
	}

	entry, err := h.service.AddShoppingEntry(r.Context(), sid, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_shopping_entry", err)
		return
	}
	writeSuccess(w, http.StatusCreated, entry)
}

func (h *Handler) updateShoppingEntry(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "update_shopping_entry")
		return
	}
	entryID, err := uuid.Parse(chi.URLParam(r, "entry_id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	var req application.ShoppingEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_shopping_entry", err)
		return
	}

	entry, err := h.service.UpdateShoppingEntry(r.Context(), sid, entryID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_shopping_entry", err)
		return
	}
	writeSuccess(w, http.StatusOK, entry)
}

func (h *Handler) removeShoppingEntry(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionIDFromContext(r.Context())
	if !ok {
		writeMissingSessionError(r.Context(), w, "remove_shopping_entry")
		return
	}
	entryID, err := uuid.Parse(chi.URLParam(r, "entry_id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}

	if err := h.service.RemoveShoppingEntry(r.Context(), sid, entryID); err != nil {
		writeMappedError(r.Context(), w, "remove_shopping_entry", err)
		return
	}
	writeMessage(w, http.StatusOK, "Entry removed")
}

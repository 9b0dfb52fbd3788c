package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	recipes := h.catalog.Filter(query, category)
	writeSuccess(w, http.StatusOK, map[string]any{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recipe_id")
	recipe, ok := h.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
		return
	}
	writeSuccess(w, http.StatusOK, recipe)
}

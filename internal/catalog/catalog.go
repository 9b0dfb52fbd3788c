// Package catalog holds the static recipe list and its filtering.
// Recipes are fixed at build time; there is deliberately no storage behind
// this package.
package catalog

import (
	"strings"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// Catalog is an ordered, read-only recipe collection.
type Catalog struct {
	recipes []domain.Recipe
	byID    map[string]domain.Recipe
}

// New builds a catalog from the given recipes, preserving order.
func New(recipes []domain.Recipe) *Catalog {
	byID := make(map[string]domain.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	return &Catalog{recipes: recipes, byID: byID}
}

// Default returns the built-in recipe catalog.
func Default() *Catalog {
	return New(defaultRecipes)
}

// All returns every recipe in catalog order.
func (c *Catalog) All() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// Get looks up a recipe by id.
func (c *Catalog) Get(id string) (domain.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Filter returns recipes matching the query and category.
// The query matches case-insensitively against name and ingredients; empty
// arguments match everything.
func (c *Catalog) Filter(query, category string) []domain.Recipe {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	out := make([]domain.Recipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		if category != "" && strings.ToLower(r.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Name), query) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}

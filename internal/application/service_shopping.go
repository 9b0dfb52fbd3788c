package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flavorvault/recipe-service/internal/domain"
)

// ListShopping returns the session's shopping list in insertion order.
func (s *Service) ListShopping(ctx context.Context, sessionID uuid.UUID) ([]domain.ShoppingListEntry, error) {
	state, err := s.RequireVerified(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.ShoppingListEntry, len(state.ShoppingList))
	copy(entries, state.ShoppingList)
	return entries, nil
}

// AddShoppingEntry appends an entry under a generated id.
// Identity keying means two entries may share a name; edits and deletes
// address the id, never the value.
func (s *Service) AddShoppingEntry(ctx context.Context, sessionID uuid.UUID, req ShoppingEntryRequest) (domain.ShoppingListEntry, error) {
	state, err := s.RequireVerified(ctx, sessionID)
	if err != nil {
		return domain.ShoppingListEntry{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShoppingListEntry{}, fmt.Errorf("%w: entry name is required", domain.ErrInvalidInput)
	}

	entry := domain.ShoppingListEntry{
		ID:       uuid.New(),
		Name:     name,
		Quantity: strings.TrimSpace(req.Quantity),
		Unit:     strings.TrimSpace(req.Unit),
		Notes:    strings.TrimSpace(req.Notes),
	}
	state.ShoppingList = append(state.ShoppingList, entry)
	if err := s.saveSession(ctx, sessionID, state); err != nil {
		return domain.ShoppingListEntry{}, err
	}
	return entry, nil
}

// UpdateShoppingEntry replaces the fields of an existing entry in place.
func (s *Service) UpdateShoppingEntry(ctx context.Context, sessionID uuid.UUID, entryID uuid.UUID, req ShoppingEntryRequest) (domain.ShoppingListEntry, error) {
	state, err := s.RequireVerified(ctx, sessionID)
	if err != nil {
		return domain.ShoppingListEntry{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShoppingListEntry{}, fmt.Errorf("%w: entry name is required", domain.ErrInvalidInput)
	}

	for i := range state.ShoppingList {
		if state.ShoppingList[i].ID != entryID {
			continue
		}
		state.ShoppingList[i].Name = name
		state.ShoppingList[i].Quantity = strings.TrimSpace(req.Quantity)
		state.ShoppingList[i].Unit = strings.TrimSpace(req.Unit)
		state.ShoppingList[i].Notes = strings.TrimSpace(req.Notes)
		if err := s.saveSession(ctx, sessionID, state); err != nil {
			return domain.ShoppingListEntry{}, err
		}
		return state.ShoppingList[i], nil
	}
	return domain.ShoppingListEntry{}, domain.ErrNotFound
}

// RemoveShoppingEntry deletes an entry by id.
func (s *Service) RemoveShoppingEntry(ctx context.Context, sessionID uuid.UUID, entryID uuid.UUID) error {
	state, err := s.RequireVerified(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range state.ShoppingList {
		if state.ShoppingList[i].ID != entryID {
			continue
		}
		state.ShoppingList = append(state.ShoppingList[:i], state.ShoppingList[i+1:]...)
		return s.saveSession(ctx, sessionID, state)
	}
	return domain.ErrNotFound
}

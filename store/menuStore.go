package store

import (
	"sync"

	"gastro-pos/helpers"
	"gastro-pos/models"
)

// MenuStore holds the carta in memory. Listing preserves insertion order.
type MenuStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMenuStore() *MenuStore {
	return &MenuStore{items: []models.MenuItem{}}
}

func (s *MenuStore) List() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *MenuStore) Get(itemID int64) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Item_id == itemID {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Add assigns a fresh id when the caller left it zero and appends the item.
func (s *MenuStore) Add(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.Item_id == 0 {
		item.Item_id = helpers.NextID()
	}
	s.items = append(s.items, item)
	return item
}

// Update replaces the item with a matching id wholesale. The id itself is
// immutable once created.
func (s *MenuStore) Update(item models.MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Item_id == item.Item_id {
			s.items[i] = item
			return true
		}
	}
	return false
}

func (s *MenuStore) Remove(itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Item_id == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

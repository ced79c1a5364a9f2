package store

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-session/models"
)

// Sortable fields of [ItemRepository.ListItems].
const (
	ItemSortID        = "id"
	ItemSortName      = "name"
	ItemSortPrice     = "price"
	ItemSortStatus    = "status"
	ItemSortCreatedAt = "createdAt"
)

var itemComparators = map[string]func(a, b models.Item) int{
	ItemSortID:        func(a, b models.Item) int { return cmp.Compare(a.ID, b.ID) },
	ItemSortName:      func(a, b models.Item) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	ItemSortPrice:     func(a, b models.Item) int { return cmp.Compare(a.Price, b.Price) },
	ItemSortStatus:    func(a, b models.Item) int { return strings.Compare(string(a.Status), string(b.Status)) },
	ItemSortCreatedAt: func(a, b models.Item) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// IsSortableItemField reports whether field can be used as a sort key.
func IsSortableItemField(field string) bool {
	_, ok := itemComparators[field]
	return ok
}

type memoryItemRepository struct {
	mu     sync.RWMutex
	items  []models.Item
	nextID int64
}

// NewMemoryItemRepository returns an empty item repository.
func NewMemoryItemRepository() ItemRepository {
	return &memoryItemRepository{nextID: 1}
}

func (m *memoryItemRepository) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = m.nextID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	item.Tags = slices.Clone(item.Tags)
	m.nextID++

	m.items = append(m.items, item)
	return item, nil
}

// ListItems filters, sorts and pages the stored items. Ties keep id order.
// A page past the end yields an empty Data slice with the correct Total.
func (m *memoryItemRepository) ListItems(_ context.Context, query models.ItemQuery) (models.Page[models.Item], error) {
	m.mu.RLock()
	matched := make([]models.Item, 0, len(m.items))
	for _, item := range m.items {
		if matchesItemQuery(item, query) {
			matched = append(matched, item)
		}
	}
	m.mu.RUnlock()

	if compare, ok := itemComparators[query.SortField]; ok {
		slices.SortStableFunc(matched, func(a, b models.Item) int {
			if query.SortDesc {
				return compare(b, a)
			}
			return compare(a, b)
		})
	}

	page := models.Page[models.Item]{
		Data:  []models.Item{},
		Total: len(matched),
		Page:  query.Page,
		Limit: query.Limit,
	}

	if query.Page < 1 || query.Limit < 1 || query.Page-1 > len(matched)/query.Limit {
		return page, nil
	}
	start := (query.Page - 1) * query.Limit
	if start >= len(matched) {
		return page, nil
	}
	end := min(start+query.Limit, len(matched))

	for _, item := range matched[start:end] {
		item.Tags = slices.Clone(item.Tags)
		page.Data = append(page.Data, item)
	}

	return page, nil
}

func matchesItemQuery(item models.Item, query models.ItemQuery) bool {
	if len(query.Status) > 0 && !slices.Contains(query.Status, item.Status) {
		return false
	}

	if len(query.Tags) > 0 && !slices.ContainsFunc(query.Tags, func(tag string) bool {
		return slices.Contains(item.Tags, tag)
	}) {
		return false
	}

	if query.Search != "" {
		search := strings.ToLower(query.Search)
		if !strings.Contains(strings.ToLower(item.Name), search) && !strings.Contains(item.Slug, search) {
			return false
		}
	}

	return true
}

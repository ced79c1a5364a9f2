package models

import "time"

// ItemStatus is the lifecycle state of an [Item].
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusDraft    ItemStatus = "draft"
	ItemStatusArchived ItemStatus = "archived"
)

// Item is the resource listed by GET /api/items.
type Item struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Status    ItemStatus `json:"status"`
	Tags      []string   `json:"tags"`
	Price     int64      `json:"price"`
	CreatedAt time.Time  `json:"created_at"`
}

// Page is the envelope returned by list endpoints.
type Page[T any] struct {
	// Data holds the items of the requested page.
	Data []T `json:"data"`

	// Total is the number of items matching the filters across all pages.
	Total int `json:"total"`

	// Page is the 1-based page number that was served.
	Page int `json:"page"`

	// Limit is the page size that was applied.
	Limit int `json:"limit"`
}

// ItemQuery is the decoded form of the GET /api/items query string.
type ItemQuery struct {
	// Page is 1-based.
	Page  int
	Limit int

	// SortField is empty for the default order by id.
	SortField string
	SortDesc  bool

	// Status and Tags match when the item has any of the listed values.
	Status []ItemStatus
	Tags   []string

	// Search is matched case-insensitively against name and slug.
	Search string
}

// NewItem is the body of POST /api/items. The slug is derived from Name.
type NewItem struct {
	Name   string     `json:"name"`
	Status ItemStatus `json:"status"`
	Tags   []string   `json:"tags"`
	Price  int64      `json:"price"`
}

package validators

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/models"
)

const (
	FieldName   = "name"
	FieldStatus = "status"
	FieldPrice  = "price"
	FieldTags   = "tags"

	FieldPage   = "page"
	FieldLimit  = "limit"
	FieldSortBy = "sortBy"
)

// MaxPageLimit is the largest page size served by GET /api/items.
const MaxPageLimit = 100

var allowedStatuses = []models.ItemStatus{
	models.ItemStatusActive,
	models.ItemStatusDraft,
	models.ItemStatusArchived,
}

// ItemValidator validates [models.NewItem] and [models.ItemQuery].
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

func (v *ItemValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch val := value.(type) {
	case models.NewItem:
		return v.validateNewItem(ctx, val, fields...)
	case *models.NewItem:
		return v.validateNewItem(ctx, *val, fields...)

	case models.ItemQuery:
		return v.validateItemQuery(ctx, val, fields...)
	case *models.ItemQuery:
		return v.validateItemQuery(ctx, *val, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateNewItem(_ context.Context, item models.NewItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStatus, FieldPrice, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldStatus:
			if !slices.Contains(allowedStatuses, item.Status) {
				return ErrInvalidStatus
			}
		case FieldPrice:
			if item.Price < 0 {
				return ErrNegativePrice
			}
		case FieldTags:
			if slices.ContainsFunc(item.Tags, func(tag string) bool { return strings.TrimSpace(tag) == "" }) {
				return ErrEmptyTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ItemValidator) validateItemQuery(_ context.Context, query models.ItemQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldLimit, FieldSortBy, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if query.Page < 1 {
				return ErrInvalidPage
			}
			// the page offset (page-1)*limit must fit in an int
			if query.Limit > 0 && query.Page > math.MaxInt/query.Limit {
				return ErrInvalidPage
			}
		case FieldLimit:
			if query.Limit < 1 || query.Limit > MaxPageLimit {
				return ErrInvalidLimit
			}
		case FieldSortBy:
			if query.SortField != "" && !store.IsSortableItemField(query.SortField) {
				return ErrUnsortableField
			}
		case FieldStatus:
			for _, status := range query.Status {
				if !slices.Contains(allowedStatuses, status) {
					return ErrInvalidStatus
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

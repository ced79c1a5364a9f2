package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/internal/validators"
	"github.com/MKhiriev/go-rest-session/models"
)

// DefaultPageLimit is the page size used when a list query has no limit.
const DefaultPageLimit = 10

type itemService struct {
	itemRepository store.ItemRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewItemService(items store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: items,
		validator:      validators.NewItemValidator(),
		logger:         logger,
	}
}

// CreateItem stores a new item with a slug derived from its name. Items are
// created as drafts unless a status is given.
func (s *itemService) CreateItem(ctx context.Context, newItem models.NewItem) (models.Item, error) {
	if newItem.Status == "" {
		newItem.Status = models.ItemStatusDraft
	}

	if err := s.validator.Validate(ctx, newItem); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	slug := utils.Slugify(newItem.Name)
	if slug == "" {
		return models.Item{}, fmt.Errorf("%w: name %q has no slug", ErrInvalidDataProvided, newItem.Name)
	}

	item, err := s.itemRepository.CreateItem(ctx, models.Item{
		Name:   newItem.Name,
		Slug:   slug,
		Status: newItem.Status,
		Tags:   newItem.Tags,
		Price:  newItem.Price,
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	return item, nil
}

// ListItems fills in page 1 and [DefaultPageLimit] when unset, validates the
// query and returns the requested page.
func (s *itemService) ListItems(ctx context.Context, query models.ItemQuery) (models.Page[models.Item], error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = DefaultPageLimit
	}

	if err := s.validator.Validate(ctx, query); err != nil {
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.itemRepository.ListItems(ctx, query)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/mock"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/validators"
	"github.com/MKhiriev/go-rest-session/models"
)

func TestItemService_CreateItem(t *testing.T) {
	svc := NewItemService(store.NewMemoryItemRepository(), logger.Nop())

	item, err := svc.CreateItem(context.Background(), models.NewItem{Name: "Cà phê sữa đá", Price: 35000})

	require.NoError(t, err)
	assert.Equal(t, "ca-phe-sua-da", item.Slug)
	assert.Equal(t, models.ItemStatusDraft, item.Status)
	assert.Equal(t, int64(1), item.ID)
}

func TestItemService_CreateItem_Invalid(t *testing.T) {
	svc := NewItemService(store.NewMemoryItemRepository(), logger.Nop())

	_, err := svc.CreateItem(context.Background(), models.NewItem{Name: "", Status: models.ItemStatusActive})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	_, err = svc.CreateItem(context.Background(), models.NewItem{Name: "!!!"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestItemService_ListItems_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, logger.Nop())

	repo.EXPECT().
		ListItems(gomock.Any(), models.ItemQuery{Page: 1, Limit: DefaultPageLimit, SortField: "price"}).
		Return(models.Page[models.Item]{Page: 1, Limit: DefaultPageLimit}, nil)

	page, err := svc.ListItems(context.Background(), models.ItemQuery{SortField: "price"})

	require.NoError(t, err)
	assert.Equal(t, DefaultPageLimit, page.Limit)
}

func TestItemService_ListItems_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewItemService(mock.NewMockItemRepository(ctrl), logger.Nop())

	_, err := svc.ListItems(context.Background(), models.ItemQuery{Limit: 1000})
	assert.ErrorIs(t, err, validators.ErrInvalidLimit)

	_, err = svc.ListItems(context.Background(), models.ItemQuery{SortField: "secret"})
	assert.ErrorIs(t, err, validators.ErrUnsortableField)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

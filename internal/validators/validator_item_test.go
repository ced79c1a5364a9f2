package validators

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-rest-session/models"
)

func TestItemValidator_NewItem(t *testing.T) {
	valid := models.NewItem{Name: "Cà phê", Status: models.ItemStatusActive, Tags: []string{"drink"}, Price: 35000}

	tests := []struct {
		name    string
		item    models.NewItem
		fields  []string
		wantErr error
	}{
		{name: "valid", item: valid},
		{name: "blank name", item: models.NewItem{Name: "  ", Status: models.ItemStatusDraft}, wantErr: ErrEmptyName},
		{name: "unknown status", item: models.NewItem{Name: "x", Status: "sold"}, wantErr: ErrInvalidStatus},
		{name: "negative price", item: models.NewItem{Name: "x", Status: models.ItemStatusDraft, Price: -1}, wantErr: ErrNegativePrice},
		{name: "empty tag", item: models.NewItem{Name: "x", Status: models.ItemStatusDraft, Tags: []string{"a", ""}}, wantErr: ErrEmptyTag},
		{name: "only the requested fields", item: models.NewItem{Name: "x", Status: "sold"}, fields: []string{FieldName}},
		{name: "unknown field", item: valid, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.item, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidator_ItemQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   models.ItemQuery
		wantErr error
	}{
		{name: "valid", query: models.ItemQuery{Page: 1, Limit: 10, SortField: "price"}},
		{name: "zero page", query: models.ItemQuery{Page: 0, Limit: 10}, wantErr: ErrInvalidPage},
		{name: "page offset overflows", query: models.ItemQuery{Page: math.MaxInt/4 + 2, Limit: 4}, wantErr: ErrInvalidPage},
		{name: "largest page that fits", query: models.ItemQuery{Page: math.MaxInt / MaxPageLimit, Limit: MaxPageLimit}},
		{name: "limit too large", query: models.ItemQuery{Page: 1, Limit: MaxPageLimit + 1}, wantErr: ErrInvalidLimit},
		{name: "zero limit", query: models.ItemQuery{Page: 1}, wantErr: ErrInvalidLimit},
		{name: "unsortable field", query: models.ItemQuery{Page: 1, Limit: 10, SortField: "secret"}, wantErr: ErrUnsortableField},
		{name: "unknown status filter", query: models.ItemQuery{Page: 1, Limit: 10, Status: []models.ItemStatus{"gone"}}, wantErr: ErrInvalidStatus},
	}

	v := NewItemValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidator_UnsupportedType(t *testing.T) {
	err := NewItemValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/models"
)

type itemRepository struct {
	db *DB
	// types decodes the text[] tags column through database/sql.
	types  *pgtype.Map
	logger *logger.Logger
}

// NewItemRepository returns an [ItemRepository] backed by the items table.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{db: db, types: pgtype.NewMap(), logger: logger}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if item.Tags == nil {
		item.Tags = []string{}
	}

	query, args, err := insertItemQuery(item)
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "itemRepository.CreateItem").Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// ListItems runs the count and the page query separately. A page past the
// end yields an empty Data slice with the correct Total.
func (r *itemRepository) ListItems(ctx context.Context, query models.ItemQuery) (models.Page[models.Item], error) {
	log := logger.FromContext(ctx)

	page := models.Page[models.Item]{
		Data:  []models.Item{},
		Page:  query.Page,
		Limit: query.Limit,
	}

	countQuery, countArgs, err := countItemsQuery(query)
	if err != nil {
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total); err != nil {
		log.Err(err).Str("func", "itemRepository.ListItems").Msg("failed to count items")
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if query.Page < 1 || query.Limit < 1 || (query.Page-1)*query.Limit >= page.Total {
		return page, nil
	}

	selectQuery, selectArgs, err := selectItemsQuery(query)
	if err != nil {
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, selectQuery, selectArgs...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListItems").Msg("failed to select items")
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.Item
		if err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Slug,
			&item.Status,
			r.types.SQLScanner(&item.Tags),
			&item.Price,
			&item.CreatedAt,
		); err != nil {
			return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		page.Data = append(page.Data, item)
	}
	if err = rows.Err(); err != nil {
		return models.Page[models.Item]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return page, nil
}

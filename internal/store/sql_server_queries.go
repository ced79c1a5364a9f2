package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-session/models"
)

const (
	usersTable           = "users"
	refreshSessionsTable = "refresh_sessions"
	itemsTable           = "items"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"user_id", "login", "name", "role", "password_hash", "created_at"}

var itemColumns = []string{"id", "name", "slug", "status", "tags", "price", "created_at"}

// itemSortColumns maps the public sort keys to ORDER BY expressions.
var itemSortColumns = map[string]string{
	ItemSortID:        "id",
	ItemSortName:      "lower(name)",
	ItemSortPrice:     "price",
	ItemSortStatus:    "status",
	ItemSortCreatedAt: "created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func insertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns("login", "name", "role", "password_hash").
		Values(user.Login, user.Name, string(user.Role), user.PasswordHash).
		Suffix("RETURNING user_id, created_at").
		ToSql()
}

func selectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func insertRefreshSessionQuery(session models.RefreshSession) (string, []any, error) {
	return psql.Insert(refreshSessionsTable).
		Columns("token_hash", "user_id", "expires_at").
		Values(session.TokenHash, session.UserID, session.ExpiresAt).
		ToSql()
}

// takeRefreshSessionQuery deletes and returns the row in one statement so
// that a refresh token can be exchanged only once.
func takeRefreshSessionQuery(tokenHash string) (string, []any, error) {
	return psql.Delete(refreshSessionsTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		Suffix("RETURNING user_id, expires_at").
		ToSql()
}

func deleteExpiredRefreshSessionsQuery(now time.Time) (string, []any, error) {
	return psql.Delete(refreshSessionsTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

func insertItemQuery(item models.Item) (string, []any, error) {
	return psql.Insert(itemsTable).
		Columns("name", "slug", "status", "tags", "price").
		Values(item.Name, item.Slug, string(item.Status), item.Tags, item.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func itemFilter(query models.ItemQuery) sq.And {
	filter := sq.And{}

	if len(query.Status) > 0 {
		statuses := make([]string, 0, len(query.Status))
		for _, status := range query.Status {
			statuses = append(statuses, string(status))
		}
		filter = append(filter, sq.Eq{"status": statuses})
	}

	if len(query.Tags) > 0 {
		filter = append(filter, sq.Expr("tags && ?", query.Tags))
	}

	if query.Search != "" {
		pattern := "%" + likeEscaper.Replace(query.Search) + "%"
		filter = append(filter, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"slug": pattern},
		})
	}

	return filter
}

func countItemsQuery(query models.ItemQuery) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(itemsTable).
		Where(itemFilter(query)).
		ToSql()
}

// selectItemsQuery orders by the requested column with id as the tie
// breaker. Unknown sort keys fall back to id order.
func selectItemsQuery(query models.ItemQuery) (string, []any, error) {
	orderBy := []string{"id ASC"}
	if column, ok := itemSortColumns[query.SortField]; ok && column != "id" {
		direction := " ASC"
		if query.SortDesc {
			direction = " DESC"
		}
		orderBy = []string{column + direction, "id ASC"}
	} else if ok && query.SortDesc {
		orderBy = []string{"id DESC"}
	}

	return psql.Select(itemColumns...).
		From(itemsTable).
		Where(itemFilter(query)).
		OrderBy(orderBy...).
		Limit(uint64(query.Limit)).
		Offset(uint64((query.Page - 1) * query.Limit)).
		ToSql()
}

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	sessionTokensTable = "session_tokens"
	// the table holds at most one row
	sessionTokensRowID = 1
)

func selectTokensQuery() (string, []any, error) {
	return sq.Select("access_token", "refresh_token").
		From(sessionTokensTable).
		Where(sq.Eq{"id": sessionTokensRowID}).
		ToSql()
}

func upsertTokensQuery(accessToken, refreshToken string) (string, []any, error) {
	return sq.Insert(sessionTokensTable).
		Columns("id", "access_token", "refresh_token", "updated_at").
		Values(sessionTokensRowID, accessToken, refreshToken, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			updated_at = excluded.updated_at`).
		ToSql()
}

func deleteTokensQuery() (string, []any, error) {
	return sq.Delete(sessionTokensTable).
		Where(sq.Eq{"id": sessionTokensRowID}).
		ToSql()
}

// Package postgres implements the category and referral-link repositories on
// top of sqlx, using squirrel for the statements whose shape depends on the
// request (filtered listings, partial updates).
package postgres

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolationErrCode = "23503"

// psql builds statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == foreignKeyViolationErrCode
}

package catalog

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation: Postgres error code 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

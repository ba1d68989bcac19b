// Package stores implements the catalog store interfaces on gorm/Postgres.
package stores

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-index conflict,
// the signal the engine uses to resolve concurrent create-if-absent races.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

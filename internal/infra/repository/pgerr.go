package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ArthurMoreiraS/OperlyService/internal/httperr"
)

const uniqueViolation = "23505"

// translateUnique turns a Postgres unique-violation into a typed Conflict.
// The partial unique indexes (appointment slot, invoice-appointment link,
// customer phone) are the authoritative guards behind the application-level
// pre-checks; losing the race surfaces as the same Conflict the pre-check
// would have produced.
func translateUnique(err error, code string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return httperr.Conflict(code)
	}
	return err
}

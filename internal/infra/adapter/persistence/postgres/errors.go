package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"knowledge-hub/internal/domain/entity"
)

// foreignKeyViolation is the PostgreSQL error code for a foreign key
// constraint failure (class 23, integrity constraint violation).
const foreignKeyViolation = "23503"

// mapConstraintErr translates store-level constraint failures into domain
// errors so handlers can distinguish client mistakes from storage failures.
// A foreign-key violation becomes entity.ErrInvalidReference; everything
// else passes through unchanged.
func mapConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", entity.ErrInvalidReference, pgErr.ConstraintName)
	}
	return err
}

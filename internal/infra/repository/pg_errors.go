package repository

import (
	"errors"

	"hotel-frontdesk/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolation = "23P01"
)

func classifyPgErr(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation, pgErrCodeExclusionViolation:
		return infra.KindConflict
	case pgErrCodeForeignKeyViolated:
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}

//go:build unit

package repository

import (
	"errors"
	"fmt"
	"testing"

	"hotel-frontdesk/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, infra.KindConflict},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, infra.KindConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"other pg error", &pgconn.PgError{Code: "57014"}, infra.KindDBFailure},
		{"wrapped pg error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"}), infra.KindConflict},
		{"non-pg error", errors.New("network down"), infra.KindDBFailure},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, classifyPgErr(c.err))
		})
	}
}

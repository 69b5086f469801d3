package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nassaupro/marketplace-api/internal/domain/catalog"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classify traduz violações de constraint do Postgres para os erros
// sentinela do domínio. O índice único é a garantia final contra a
// corrida check-then-insert dos guards.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return catalog.ErrDuplicate
		case pgForeignKeyViolation:
			return catalog.ErrIntegrity
		}
	}

	return err
}

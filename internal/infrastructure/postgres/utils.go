package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgCode devuelve el SQLSTATE de un error de PostgreSQL, o "" si no lo es.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUndefinedTable verifica si el error es 42P01 (tabla inexistente).
func isUndefinedTable(err error) bool {
	return pgCode(err) == "42P01"
}

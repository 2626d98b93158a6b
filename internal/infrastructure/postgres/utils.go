package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL usados por los repositorios.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea
// (p.ej. demo apuntando a un lead borrado).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

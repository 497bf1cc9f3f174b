package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Los índices únicos parciales (WHERE deleted_at IS NULL) son el respaldo de los
// pre-chequeos de unicidad: dos inserts en carrera pueden pasar ambos el chequeo
// y uno termina acá.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// visibilityPredicate traduce el modo de lectura a un predicado SQL sobre deleted_at.
func visibilityPredicate(v entity.Visibility) string {
	switch v {
	case entity.VisibilityLive:
		return "deleted_at IS NULL"
	case entity.VisibilityDeleted:
		return "deleted_at IS NOT NULL"
	default:
		return "TRUE"
	}
}

package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Visibility modo de lectura para entidades con borrado lógico.
type Visibility int

const (
	// VisibilityLive solo registros con DeletedAt == nil (modo por defecto).
	VisibilityLive Visibility = iota
	// VisibilityDeleted solo registros con DeletedAt != nil.
	VisibilityDeleted
	// VisibilityAll todos los registros, sin importar DeletedAt.
	VisibilityAll
)

// SoftDelete campos de borrado lógico, embebidos en cada entidad del catálogo.
// Invariante: DeletedAt == nil significa registro vivo; != nil, borrado.
type SoftDelete struct {
	DeletedAt *time.Time
}

// IsDeleted indica si el registro está borrado lógicamente.
func (s SoftDelete) IsDeleted() bool {
	return s.DeletedAt != nil
}

// Matches indica si el registro es visible bajo el modo de lectura dado.
func (s SoftDelete) Matches(v Visibility) bool {
	switch v {
	case VisibilityLive:
		return s.DeletedAt == nil
	case VisibilityDeleted:
		return s.DeletedAt != nil
	default:
		return true
	}
}

var nameFolder = cases.Fold()

// NormalizeName recorta espacios del nombre; es la forma que se persiste.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// FoldName normaliza un nombre para comparación de unicidad: trim + case fold Unicode.
// "Snacks" y "snacks " colisionan bajo esta forma.
func FoldName(name string) string {
	return nameFolder.String(strings.TrimSpace(name))
}

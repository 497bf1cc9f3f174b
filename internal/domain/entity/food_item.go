package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodItem representa un plato del menú, referenciado a su Category por ID.
// Borrar la categoría no cascada sobre sus items (decisión documentada en DESIGN.md).
// El nombre es único dentro de la categoría entre items vivos, comparado con FoldName.
type FoodItem struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal // >= 0, máximo 2 decimales
	IsAvailable bool
	ImageURL    string
	SoftDelete
	CreatedAt time.Time
	UpdatedAt time.Time
}

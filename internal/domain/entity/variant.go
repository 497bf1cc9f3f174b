package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant representa una variante o addon de un FoodItem (ej. "Grande", "Queso extra").
// Price es el precio adicional sobre el item base.
// El nombre es único dentro del item entre variantes vivas, comparado con FoldName.
type Variant struct {
	ID          string
	FoodItemID  string
	Name        string
	Price       decimal.Decimal // adicional, >= 0, máximo 2 decimales
	IsAvailable bool
	SoftDelete
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Category representa una categoría del menú (ej. "Bebidas", "Snacks").
// El nombre es único entre categorías vivas, comparado con FoldName.
type Category struct {
	ID          string
	Name        string
	Description string
	IsAvailable bool
	SoftDelete
	CreatedAt time.Time
	UpdatedAt time.Time
}

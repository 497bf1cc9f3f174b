package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Límites de nombres y descripciones del catálogo.
const (
	CategoryNameMinLen = 2
	NameMaxLen         = 50
	DescriptionMaxLen  = 255
)

var errBadPrice = errors.New("price debe ser >= 0 con máximo 2 decimales")

// validPrice acepta montos no negativos con a lo sumo 2 decimales (19.999 es inválido).
func validPrice(p decimal.Decimal) error {
	if p.IsNegative() || !p.Equal(p.Round(2)) {
		return errBadPrice
	}
	return nil
}

// ── Category ─────────────────────────────────────────────────────────────────

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

// Validate chequea longitudes después de trim.
func (r *CreateCategoryRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if len(name) < CategoryNameMinLen || len(name) > NameMaxLen {
		return errors.New("name debe tener entre 2 y 50 caracteres")
	}
	if len(strings.TrimSpace(r.Description)) > DescriptionMaxLen {
		return errors.New("description supera los 255 caracteres")
	}
	return nil
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	IsAvailable *bool   `json:"is_available"`
}

// Validate chequea los campos presentes.
func (r *UpdateCategoryRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if len(name) < CategoryNameMinLen || len(name) > NameMaxLen {
			return errors.New("name debe tener entre 2 y 50 caracteres")
		}
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) > DescriptionMaxLen {
		return errors.New("description supera los 255 caracteres")
	}
	return nil
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsAvailable bool       `json:"is_available"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CategoryListResponse salida de listados de categorías.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ── FoodItem ─────────────────────────────────────────────────────────────────

// CreateFoodItemRequest entrada para crear un item del menú.
type CreateFoodItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=50"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=255"`
	ImageURL    string          `json:"image_url" validate:"omitempty,max=500"`
}

// Validate chequea nombre, categoría y precio.
func (r *CreateFoodItemRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if len(name) < 1 || len(name) > NameMaxLen {
		return errors.New("name debe tener entre 1 y 50 caracteres")
	}
	if r.CategoryID == "" {
		return errors.New("category_id es requerido")
	}
	if len(strings.TrimSpace(r.Description)) > DescriptionMaxLen {
		return errors.New("description supera los 255 caracteres")
	}
	return validPrice(r.Price)
}

// UpdateFoodItemRequest entrada para actualizar un item (campos opcionales).
type UpdateFoodItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=50"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	IsAvailable *bool            `json:"is_available"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,max=500"`
}

// Validate chequea los campos presentes.
func (r *UpdateFoodItemRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if len(name) < 1 || len(name) > NameMaxLen {
			return errors.New("name debe tener entre 1 y 50 caracteres")
		}
	}
	if r.CategoryID != nil && *r.CategoryID == "" {
		return errors.New("category_id no puede ser vacío")
	}
	if r.Price != nil {
		if err := validPrice(*r.Price); err != nil {
			return err
		}
	}
	if r.Description != nil && len(strings.TrimSpace(*r.Description)) > DescriptionMaxLen {
		return errors.New("description supera los 255 caracteres")
	}
	return nil
}

// FoodItemResponse salida de un item del menú.
type FoodItemResponse struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	ImageURL    string          `json:"image_url,omitempty"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FoodItemListResponse salida de listados de items.
type FoodItemListResponse struct {
	Items []FoodItemResponse `json:"items"`
}

// ── Variant ──────────────────────────────────────────────────────────────────

// CreateVariantRequest entrada para crear una variante de un item.
type CreateVariantRequest struct {
	Name  string          `json:"name" validate:"required,min=1,max=50"`
	Price decimal.Decimal `json:"price"`
}

// Validate chequea nombre y precio adicional.
func (r *CreateVariantRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if len(name) < 1 || len(name) > NameMaxLen {
		return errors.New("name debe tener entre 1 y 50 caracteres")
	}
	return validPrice(r.Price)
}

// UpdateVariantRequest entrada para actualizar una variante (campos opcionales).
type UpdateVariantRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=50"`
	Price       *decimal.Decimal `json:"price"`
	IsAvailable *bool            `json:"is_available"`
}

// Validate chequea los campos presentes.
func (r *UpdateVariantRequest) Validate() error {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if len(name) < 1 || len(name) > NameMaxLen {
			return errors.New("name debe tener entre 1 y 50 caracteres")
		}
	}
	if r.Price != nil {
		if err := validPrice(*r.Price); err != nil {
			return err
		}
	}
	return nil
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID          string          `json:"id"`
	FoodItemID  string          `json:"food_item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VariantListResponse salida de listados de variantes.
type VariantListResponse struct {
	Variants []VariantResponse `json:"variants"`
}

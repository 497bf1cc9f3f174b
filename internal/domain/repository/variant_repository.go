package repository

import "github.com/jhoicas/messmate-api/internal/domain/entity"

// VariantRepository define el puerto de persistencia para Variant (DIP).
// Mismos contratos de borrado lógico que CategoryRepository.
type VariantRepository interface {
	Create(variant *entity.Variant) error
	GetByID(id string, v entity.Visibility) (*entity.Variant, error)
	// GetLiveByItemAndName busca por nombre normalizado dentro de un item (unicidad por alcance).
	GetLiveByItemAndName(foodItemID, name string) (*entity.Variant, error)
	ListByFoodItem(foodItemID string, v entity.Visibility) ([]*entity.Variant, error)
	Update(variant *entity.Variant) error
	SoftDelete(id string) error
	Restore(id string) error
}

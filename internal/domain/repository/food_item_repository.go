package repository

import "github.com/jhoicas/messmate-api/internal/domain/entity"

// FoodItemRepository define el puerto de persistencia para FoodItem (DIP).
// Mismos contratos de borrado lógico que CategoryRepository.
type FoodItemRepository interface {
	Create(item *entity.FoodItem) error
	GetByID(id string, v entity.Visibility) (*entity.FoodItem, error)
	// GetLiveByCategoryAndName busca por nombre normalizado dentro de una categoría (unicidad por alcance).
	GetLiveByCategoryAndName(categoryID, name string) (*entity.FoodItem, error)
	List(v entity.Visibility) ([]*entity.FoodItem, error)
	ListByCategory(categoryID string, v entity.Visibility) ([]*entity.FoodItem, error)
	Update(item *entity.FoodItem) error
	SoftDelete(id string) error
	Restore(id string) error
}

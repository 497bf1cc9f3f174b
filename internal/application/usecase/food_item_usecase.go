package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

// FoodItemUseCase casos de uso CRUD + borrado lógico para items del menú.
// La unicidad del nombre es por categoría, entre items vivos.
type FoodItemUseCase struct {
	repo         repository.FoodItemRepository
	categoryRepo repository.CategoryRepository
}

// NewFoodItemUseCase construye el caso de uso.
func NewFoodItemUseCase(repo repository.FoodItemRepository, categoryRepo repository.CategoryRepository) *FoodItemUseCase {
	return &FoodItemUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un item. La categoría referenciada debe existir y estar viva.
func (uc *FoodItemUseCase) Create(in dto.CreateFoodItemRequest) (*dto.FoodItemResponse, error) {
	category, err := uc.categoryRepo.GetByID(in.CategoryID, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	name := entity.NormalizeName(in.Name)
	existing, err := uc.repo.GetLiveByCategoryAndName(in.CategoryID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	item := &entity.FoodItem{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        name,
		Description: entity.NormalizeName(in.Description),
		Price:       in.Price,
		IsAvailable: true,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toFoodItemResponse(item), nil
}

// GetByID obtiene un item vivo por ID.
func (uc *FoodItemUseCase) GetByID(id string) (*dto.FoodItemResponse, error) {
	item, err := uc.repo.GetByID(id, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toFoodItemResponse(item), nil
}

// List lista items bajo el modo de visibilidad dado.
func (uc *FoodItemUseCase) List(v entity.Visibility) (*dto.FoodItemListResponse, error) {
	list, err := uc.repo.List(v)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FoodItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toFoodItemResponse(it))
	}
	return &dto.FoodItemListResponse{Items: out}, nil
}

// Update actualiza un item vivo. Si cambia la categoría, la nueva debe estar viva;
// si cambia el nombre se re-chequea la unicidad dentro de la categoría resultante.
func (uc *FoodItemUseCase) Update(id string, in dto.UpdateFoodItemRequest) (*dto.FoodItemResponse, error) {
	item, err := uc.repo.GetByID(id, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	categoryID := item.CategoryID
	if in.CategoryID != nil && *in.CategoryID != item.CategoryID {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID, entity.VisibilityLive)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		categoryID = *in.CategoryID
	}
	name := item.Name
	if in.Name != nil {
		name = entity.NormalizeName(*in.Name)
	}
	// Re-chequear unicidad si cambió el nombre o el alcance (categoría).
	if entity.FoldName(name) != entity.FoldName(item.Name) || categoryID != item.CategoryID {
		existing, err := uc.repo.GetLiveByCategoryAndName(categoryID, name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	item.CategoryID = categoryID
	item.Name = name
	if in.Description != nil {
		item.Description = entity.NormalizeName(*in.Description)
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toFoodItemResponse(item), nil
}

// Delete marca el item como borrado (no idempotente). Sus variantes no se tocan.
func (uc *FoodItemUseCase) Delete(id string) error {
	return uc.repo.SoftDelete(id)
}

// Restore revive un item borrado; rechaza con ErrDuplicate si su nombre ahora
// colisiona con un item vivo de la misma categoría.
func (uc *FoodItemUseCase) Restore(id string) (*dto.FoodItemResponse, error) {
	item, err := uc.repo.GetByID(id, entity.VisibilityAll)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.IsDeleted() {
		live, err := uc.repo.GetLiveByCategoryAndName(item.CategoryID, item.Name)
		if err != nil {
			return nil, err
		}
		if live != nil {
			return nil, domain.ErrDuplicate
		}
		if err := uc.repo.Restore(id); err != nil {
			return nil, err
		}
		item.DeletedAt = nil
	}
	return toFoodItemResponse(item), nil
}

func toFoodItemResponse(it *entity.FoodItem) *dto.FoodItemResponse {
	if it == nil {
		return nil
	}
	return &dto.FoodItemResponse{
		ID:          it.ID,
		CategoryID:  it.CategoryID,
		Name:        it.Name,
		Description: it.Description,
		Price:       it.Price,
		IsAvailable: it.IsAvailable,
		ImageURL:    it.ImageURL,
		DeletedAt:   it.DeletedAt,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

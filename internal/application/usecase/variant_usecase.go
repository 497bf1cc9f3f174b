package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

// VariantUseCase casos de uso CRUD + borrado lógico para variantes de items.
// La unicidad del nombre es por item, entre variantes vivas.
type VariantUseCase struct {
	repo     repository.VariantRepository
	itemRepo repository.FoodItemRepository
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(repo repository.VariantRepository, itemRepo repository.FoodItemRepository) *VariantUseCase {
	return &VariantUseCase{repo: repo, itemRepo: itemRepo}
}

// Create crea una variante bajo un item vivo.
func (uc *VariantUseCase) Create(foodItemID string, in dto.CreateVariantRequest) (*dto.VariantResponse, error) {
	item, err := uc.itemRepo.GetByID(foodItemID, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	name := entity.NormalizeName(in.Name)
	existing, err := uc.repo.GetLiveByItemAndName(foodItemID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	variant := &entity.Variant{
		ID:          uuid.New().String(),
		FoodItemID:  foodItemID,
		Name:        name,
		Price:       in.Price,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// ListByFoodItem lista variantes de un item bajo el modo de visibilidad dado.
// El listado público exige un item vivo; los listados administrativos (borradas,
// todas) también alcanzan variantes de items borrados.
func (uc *VariantUseCase) ListByFoodItem(foodItemID string, v entity.Visibility) (*dto.VariantListResponse, error) {
	itemVis := entity.VisibilityLive
	if v != entity.VisibilityLive {
		itemVis = entity.VisibilityAll
	}
	item, err := uc.itemRepo.GetByID(foodItemID, itemVis)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByFoodItem(foodItemID, v)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VariantResponse, 0, len(list))
	for _, va := range list {
		out = append(out, *toVariantResponse(va))
	}
	return &dto.VariantListResponse{Variants: out}, nil
}

// Update actualiza una variante viva; re-chequea unicidad si cambia el nombre.
func (uc *VariantUseCase) Update(id string, in dto.UpdateVariantRequest) (*dto.VariantResponse, error) {
	variant, err := uc.repo.GetByID(id, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := entity.NormalizeName(*in.Name)
		if entity.FoldName(name) != entity.FoldName(variant.Name) {
			existing, err := uc.repo.GetLiveByItemAndName(variant.FoodItemID, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		variant.Name = name
	}
	if in.Price != nil {
		variant.Price = *in.Price
	}
	if in.IsAvailable != nil {
		variant.IsAvailable = *in.IsAvailable
	}
	variant.UpdatedAt = time.Now()
	if err := uc.repo.Update(variant); err != nil {
		return nil, err
	}
	return toVariantResponse(variant), nil
}

// Delete marca la variante como borrada (no idempotente).
func (uc *VariantUseCase) Delete(id string) error {
	return uc.repo.SoftDelete(id)
}

// Restore revive una variante borrada; ErrDuplicate si el nombre colisiona con
// una variante viva del mismo item.
func (uc *VariantUseCase) Restore(id string) (*dto.VariantResponse, error) {
	variant, err := uc.repo.GetByID(id, entity.VisibilityAll)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	if variant.IsDeleted() {
		live, err := uc.repo.GetLiveByItemAndName(variant.FoodItemID, variant.Name)
		if err != nil {
			return nil, err
		}
		if live != nil {
			return nil, domain.ErrDuplicate
		}
		if err := uc.repo.Restore(id); err != nil {
			return nil, err
		}
		variant.DeletedAt = nil
	}
	return toVariantResponse(variant), nil
}

func toVariantResponse(v *entity.Variant) *dto.VariantResponse {
	if v == nil {
		return nil
	}
	return &dto.VariantResponse{
		ID:          v.ID,
		FoodItemID:  v.FoodItemID,
		Name:        v.Name,
		Price:       v.Price,
		IsAvailable: v.IsAvailable,
		DeletedAt:   v.DeletedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

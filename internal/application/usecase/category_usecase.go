package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD + borrado lógico para categorías del menú.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre se guarda con trim; la unicidad se chequea
// contra categorías vivas con case fold. El pre-chequeo puede perder la carrera
// con otro insert; en ese caso el índice único del repo devuelve ErrDuplicate.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := entity.NormalizeName(in.Name)
	existing, err := uc.repo.GetLiveByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: entity.NormalizeName(in.Description),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría viva por ID. ErrNotFound si no existe o está borrada.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista categorías bajo el modo de visibilidad dado, por orden de creación.
func (uc *CategoryUseCase) List(v entity.Visibility) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(v)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Categories: out}, nil
}

// Update actualiza una categoría viva; editar una borrada es ErrNotFound.
// Si cambia el nombre se re-chequea la unicidad entre vivas.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id, entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := entity.NormalizeName(*in.Name)
		if entity.FoldName(name) != entity.FoldName(category.Name) {
			existing, err := uc.repo.GetLiveByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		category.Name = name
	}
	if in.Description != nil {
		category.Description = entity.NormalizeName(*in.Description)
	}
	if in.IsAvailable != nil {
		category.IsAvailable = *in.IsAvailable
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete marca la categoría como borrada. Borrar una ya borrada es ErrNotFound
// (no idempotente por contrato). No cascada sobre los items de la categoría.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.SoftDelete(id)
}

// Restore revive una categoría borrada; sobre una viva es no-op exitoso.
// Si el nombre ahora colisiona con una categoría viva, se rechaza con ErrDuplicate.
func (uc *CategoryUseCase) Restore(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id, entity.VisibilityAll)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if category.IsDeleted() {
		live, err := uc.repo.GetLiveByName(category.Name)
		if err != nil {
			return nil, err
		}
		if live != nil {
			return nil, domain.ErrDuplicate
		}
		if err := uc.repo.Restore(id); err != nil {
			return nil, err
		}
		category.DeletedAt = nil
	}
	return toCategoryResponse(category), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsAvailable: c.IsAvailable,
		DeletedAt:   c.DeletedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

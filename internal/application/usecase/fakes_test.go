package usecase_test

import (
	"time"

	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
	_ repository.FoodItemRepository = (*fakeFoodItemRepo)(nil)
	_ repository.VariantRepository  = (*fakeVariantRepo)(nil)
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso.
// Replican los contratos de los puertos: unicidad por nombre normalizado entre
// vivos, SoftDelete solo sobre vivos, Restore con chequeo de colisión.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	if r.liveByFold(entity.FoldName(c.Name)) != nil {
		return domain.ErrDuplicate
	}
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string, v entity.Visibility) (*entity.Category, error) {
	for _, c := range r.items {
		if c.ID == id && c.Matches(v) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetLiveByName(name string) (*entity.Category, error) {
	if c := r.liveByFold(entity.FoldName(name)); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List(v entity.Visibility) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.items {
		if c.Matches(v) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for _, cur := range r.items {
		if cur.ID == c.ID && !cur.IsDeleted() {
			if dup := r.liveByFold(entity.FoldName(c.Name)); dup != nil && dup.ID != c.ID {
				return domain.ErrDuplicate
			}
			*cur = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) SoftDelete(id string) error {
	for _, c := range r.items {
		if c.ID == id && !c.IsDeleted() {
			now := time.Now()
			c.DeletedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) Restore(id string) error {
	for _, c := range r.items {
		if c.ID == id {
			if c.IsDeleted() {
				if dup := r.liveByFold(entity.FoldName(c.Name)); dup != nil {
					return domain.ErrDuplicate
				}
				c.DeletedAt = nil
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCategoryRepo) liveByFold(fold string) *entity.Category {
	for _, c := range r.items {
		if !c.IsDeleted() && entity.FoldName(c.Name) == fold {
			return c
		}
	}
	return nil
}

type fakeFoodItemRepo struct {
	items []*entity.FoodItem
}

func (r *fakeFoodItemRepo) Create(it *entity.FoodItem) error {
	if r.liveByFold(it.CategoryID, entity.FoldName(it.Name)) != nil {
		return domain.ErrDuplicate
	}
	cp := *it
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeFoodItemRepo) GetByID(id string, v entity.Visibility) (*entity.FoodItem, error) {
	for _, it := range r.items {
		if it.ID == id && it.Matches(v) {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFoodItemRepo) GetLiveByCategoryAndName(categoryID, name string) (*entity.FoodItem, error) {
	if it := r.liveByFold(categoryID, entity.FoldName(name)); it != nil {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeFoodItemRepo) List(v entity.Visibility) ([]*entity.FoodItem, error) {
	var out []*entity.FoodItem
	for _, it := range r.items {
		if it.Matches(v) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFoodItemRepo) ListByCategory(categoryID string, v entity.Visibility) ([]*entity.FoodItem, error) {
	var out []*entity.FoodItem
	for _, it := range r.items {
		if it.CategoryID == categoryID && it.Matches(v) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeFoodItemRepo) Update(it *entity.FoodItem) error {
	for _, cur := range r.items {
		if cur.ID == it.ID && !cur.IsDeleted() {
			if dup := r.liveByFold(it.CategoryID, entity.FoldName(it.Name)); dup != nil && dup.ID != it.ID {
				return domain.ErrDuplicate
			}
			*cur = *it
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeFoodItemRepo) SoftDelete(id string) error {
	for _, it := range r.items {
		if it.ID == id && !it.IsDeleted() {
			now := time.Now()
			it.DeletedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeFoodItemRepo) Restore(id string) error {
	for _, it := range r.items {
		if it.ID == id {
			if it.IsDeleted() {
				if dup := r.liveByFold(it.CategoryID, entity.FoldName(it.Name)); dup != nil {
					return domain.ErrDuplicate
				}
				it.DeletedAt = nil
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeFoodItemRepo) liveByFold(categoryID, fold string) *entity.FoodItem {
	for _, it := range r.items {
		if !it.IsDeleted() && it.CategoryID == categoryID && entity.FoldName(it.Name) == fold {
			return it
		}
	}
	return nil
}

type fakeVariantRepo struct {
	items []*entity.Variant
}

func (r *fakeVariantRepo) Create(v *entity.Variant) error {
	if r.liveByFold(v.FoodItemID, entity.FoldName(v.Name)) != nil {
		return domain.ErrDuplicate
	}
	cp := *v
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeVariantRepo) GetByID(id string, vis entity.Visibility) (*entity.Variant, error) {
	for _, v := range r.items {
		if v.ID == id && v.Matches(vis) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVariantRepo) GetLiveByItemAndName(foodItemID, name string) (*entity.Variant, error) {
	if v := r.liveByFold(foodItemID, entity.FoldName(name)); v != nil {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeVariantRepo) ListByFoodItem(foodItemID string, vis entity.Visibility) ([]*entity.Variant, error) {
	var out []*entity.Variant
	for _, v := range r.items {
		if v.FoodItemID == foodItemID && v.Matches(vis) {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeVariantRepo) Update(v *entity.Variant) error {
	for _, cur := range r.items {
		if cur.ID == v.ID && !cur.IsDeleted() {
			if dup := r.liveByFold(v.FoodItemID, entity.FoldName(v.Name)); dup != nil && dup.ID != v.ID {
				return domain.ErrDuplicate
			}
			*cur = *v
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeVariantRepo) SoftDelete(id string) error {
	for _, v := range r.items {
		if v.ID == id && !v.IsDeleted() {
			now := time.Now()
			v.DeletedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeVariantRepo) Restore(id string) error {
	for _, v := range r.items {
		if v.ID == id {
			if v.IsDeleted() {
				if dup := r.liveByFold(v.FoodItemID, entity.FoldName(v.Name)); dup != nil {
					return domain.ErrDuplicate
				}
				v.DeletedAt = nil
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeVariantRepo) liveByFold(foodItemID, fold string) *entity.Variant {
	for _, v := range r.items {
		if !v.IsDeleted() && v.FoodItemID == foodItemID && entity.FoldName(v.Name) == fold {
			return v
		}
	}
	return nil
}

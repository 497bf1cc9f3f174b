package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

var _ repository.FoodItemRepository = (*FoodItemRepo)(nil)

// FoodItemRepo implementación del puerto FoodItemRepository sobre PostgreSQL.
// Unicidad por (category_id, name_fold) entre filas vivas, vía índice único parcial.
type FoodItemRepo struct {
	pool *pgxpool.Pool
}

// NewFoodItemRepository construye el adaptador de persistencia para items del menú.
func NewFoodItemRepository(pool *pgxpool.Pool) *FoodItemRepo {
	return &FoodItemRepo{pool: pool}
}

const foodItemColumns = `id, category_id, name, description, price, is_available, image_url, deleted_at, created_at, updated_at`

// Create persiste un nuevo item vivo. ErrDuplicate si colisiona en el índice único parcial.
func (r *FoodItemRepo) Create(item *entity.FoodItem) error {
	query := `
		INSERT INTO food_items (id, category_id, name, name_fold, description, price, is_available, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, entity.FoldName(item.Name), item.Description,
		item.Price, item.IsAvailable, item.ImageURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID bajo el modo de visibilidad. (nil, nil) si no hay match.
func (r *FoodItemRepo) GetByID(id string, v entity.Visibility) (*entity.FoodItem, error) {
	query := `SELECT ` + foodItemColumns + ` FROM food_items WHERE id = $1 AND ` + visibilityPredicate(v)
	return r.getOne(query, id)
}

// GetLiveByCategoryAndName obtiene el item vivo de la categoría cuyo nombre normalizado coincide.
func (r *FoodItemRepo) GetLiveByCategoryAndName(categoryID, name string) (*entity.FoodItem, error) {
	query := `SELECT ` + foodItemColumns + ` FROM food_items WHERE category_id = $1 AND name_fold = $2 AND deleted_at IS NULL`
	var it entity.FoodItem
	err := r.pool.QueryRow(context.Background(), query, categoryID, entity.FoldName(name)).Scan(
		&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.IsAvailable,
		&it.ImageURL, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get food item by name: %w", err)
	}
	return &it, nil
}

func (r *FoodItemRepo) getOne(query string, arg any) (*entity.FoodItem, error) {
	var it entity.FoodItem
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price, &it.IsAvailable,
		&it.ImageURL, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get food item: %w", err)
	}
	return &it, nil
}

// List lista items bajo el modo de visibilidad, por orden de creación.
func (r *FoodItemRepo) List(v entity.Visibility) ([]*entity.FoodItem, error) {
	query := `SELECT ` + foodItemColumns + ` FROM food_items WHERE ` + visibilityPredicate(v) + ` ORDER BY created_at`
	return r.queryMany(query)
}

// ListByCategory lista items de una categoría bajo el modo de visibilidad.
func (r *FoodItemRepo) ListByCategory(categoryID string, v entity.Visibility) ([]*entity.FoodItem, error) {
	query := `SELECT ` + foodItemColumns + ` FROM food_items WHERE category_id = $1 AND ` + visibilityPredicate(v) + ` ORDER BY created_at`
	return r.queryMany(query, categoryID)
}

func (r *FoodItemRepo) queryMany(query string, args ...any) ([]*entity.FoodItem, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	defer rows.Close()
	var list []*entity.FoodItem
	for rows.Next() {
		var it entity.FoodItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Description, &it.Price,
			&it.IsAvailable, &it.ImageURL, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un item vivo. ErrNotFound si no hay fila viva; ErrDuplicate
// si el nuevo (categoría, nombre) colisiona.
func (r *FoodItemRepo) Update(item *entity.FoodItem) error {
	query := `
		UPDATE food_items SET category_id = $2, name = $3, name_fold = $4, description = $5,
			price = $6, is_available = $7, image_url = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, entity.FoldName(item.Name), item.Description,
		item.Price, item.IsAvailable, item.ImageURL, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update food item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca un item vivo como borrado. ErrNotFound si no hay fila viva.
func (r *FoodItemRepo) SoftDelete(id string) error {
	query := `UPDATE food_items SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete food item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore limpia deleted_at; ErrDuplicate si el nombre revive en colisión.
func (r *FoodItemRepo) Restore(id string) error {
	query := `UPDATE food_items SET deleted_at = NULL, updated_at = now() WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("restore food item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

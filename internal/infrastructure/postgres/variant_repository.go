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

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo implementación del puerto VariantRepository sobre PostgreSQL.
// Unicidad por (food_item_id, name_fold) entre filas vivas, vía índice único parcial.
type VariantRepo struct {
	pool *pgxpool.Pool
}

// NewVariantRepository construye el adaptador de persistencia para variantes.
func NewVariantRepository(pool *pgxpool.Pool) *VariantRepo {
	return &VariantRepo{pool: pool}
}

const variantColumns = `id, food_item_id, name, price, is_available, deleted_at, created_at, updated_at`

// Create persiste una nueva variante viva. ErrDuplicate si colisiona en el índice único parcial.
func (r *VariantRepo) Create(variant *entity.Variant) error {
	query := `
		INSERT INTO item_variants (id, food_item_id, name, name_fold, price, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		variant.ID, variant.FoodItemID, variant.Name, entity.FoldName(variant.Name),
		variant.Price, variant.IsAvailable, variant.CreatedAt, variant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// GetByID obtiene una variante por ID bajo el modo de visibilidad. (nil, nil) si no hay match.
func (r *VariantRepo) GetByID(id string, v entity.Visibility) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM item_variants WHERE id = $1 AND ` + visibilityPredicate(v)
	var va entity.Variant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&va.ID, &va.FoodItemID, &va.Name, &va.Price, &va.IsAvailable,
		&va.DeletedAt, &va.CreatedAt, &va.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &va, nil
}

// GetLiveByItemAndName obtiene la variante viva del item cuyo nombre normalizado coincide.
func (r *VariantRepo) GetLiveByItemAndName(foodItemID, name string) (*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM item_variants WHERE food_item_id = $1 AND name_fold = $2 AND deleted_at IS NULL`
	var va entity.Variant
	err := r.pool.QueryRow(context.Background(), query, foodItemID, entity.FoldName(name)).Scan(
		&va.ID, &va.FoodItemID, &va.Name, &va.Price, &va.IsAvailable,
		&va.DeletedAt, &va.CreatedAt, &va.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant by name: %w", err)
	}
	return &va, nil
}

// ListByFoodItem lista variantes de un item bajo el modo de visibilidad, por orden de creación.
func (r *VariantRepo) ListByFoodItem(foodItemID string, v entity.Visibility) ([]*entity.Variant, error) {
	query := `SELECT ` + variantColumns + ` FROM item_variants WHERE food_item_id = $1 AND ` + visibilityPredicate(v) + ` ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, foodItemID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variant
	for rows.Next() {
		var va entity.Variant
		if err := rows.Scan(&va.ID, &va.FoodItemID, &va.Name, &va.Price, &va.IsAvailable,
			&va.DeletedAt, &va.CreatedAt, &va.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, &va)
	}
	return list, rows.Err()
}

// Update actualiza una variante viva. ErrNotFound si no hay fila viva; ErrDuplicate
// si el nuevo nombre colisiona dentro del item.
func (r *VariantRepo) Update(variant *entity.Variant) error {
	query := `
		UPDATE item_variants SET name = $2, name_fold = $3, price = $4, is_available = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query,
		variant.ID, variant.Name, entity.FoldName(variant.Name), variant.Price,
		variant.IsAvailable, variant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update variant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca una variante viva como borrada. ErrNotFound si no hay fila viva.
func (r *VariantRepo) SoftDelete(id string) error {
	query := `UPDATE item_variants SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete variant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore limpia deleted_at; ErrDuplicate si el nombre revive en colisión.
func (r *VariantRepo) Restore(id string) error {
	query := `UPDATE item_variants SET deleted_at = NULL, updated_at = now() WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("restore variant: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// name_fold guarda la forma normalizada del nombre (entity.FoldName) y la cubre
// un índice único parcial sobre filas vivas.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

const categoryColumns = `id, name, description, is_available, deleted_at, created_at, updated_at`

// Create persiste una nueva categoría viva. ErrDuplicate si el índice único parcial rechaza el nombre.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, name_fold, description, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, entity.FoldName(category.Name), category.Description,
		category.IsAvailable, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID bajo el modo de visibilidad. (nil, nil) si no hay match.
func (r *CategoryRepo) GetByID(id string, v entity.Visibility) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND ` + visibilityPredicate(v)
	return r.getOne(query, id)
}

// GetLiveByName obtiene la categoría viva cuyo nombre normalizado coincide. (nil, nil) si no hay.
func (r *CategoryRepo) GetLiveByName(name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE name_fold = $1 AND deleted_at IS NULL`
	return r.getOne(query, entity.FoldName(name))
}

func (r *CategoryRepo) getOne(query string, arg any) (*entity.Category, error) {
	var c entity.Category
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Description, &c.IsAvailable, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List lista categorías bajo el modo de visibilidad, por orden de creación.
func (r *CategoryRepo) List(v entity.Visibility) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE ` + visibilityPredicate(v) + ` ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.IsAvailable, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría viva. ErrNotFound si no hay fila viva con ese ID;
// ErrDuplicate si el nuevo nombre colisiona en el índice único parcial.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, name_fold = $3, description = $4, is_available = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query,
		category.ID, category.Name, entity.FoldName(category.Name), category.Description,
		category.IsAvailable, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca una categoría viva como borrada. ErrNotFound si no hay fila viva
// (borrar dos veces falla, por contrato).
func (r *CategoryRepo) SoftDelete(id string) error {
	query := `UPDATE categories SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("soft delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore limpia deleted_at sin importar el estado actual (idempotente sobre vivas).
// Al revivir, la fila vuelve a entrar al índice único parcial: una colisión de
// nombre con una categoría viva responde ErrDuplicate.
func (r *CategoryRepo) Restore(id string) error {
	query := `UPDATE categories SET deleted_at = NULL, updated_at = now() WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("restore category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

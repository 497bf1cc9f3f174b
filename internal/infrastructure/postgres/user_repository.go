package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, name, profile_photo, roles, reset_token, reset_expires, created_at, updated_at`

// Create persiste un nuevo usuario. El índice único de email responde con
// ErrEmailAlreadyExists ante una carrera de registros simultáneos.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, profile_photo, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.ProfilePhoto, user.Roles,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

// GetByResetToken obtiene el usuario que posee el token de reset. (nil, nil) si no hay match.
func (r *UserRepo) GetByResetToken(token string) (*entity.User, error) {
	return r.getOne(`SELECT `+userColumns+` FROM users WHERE reset_token = $1 LIMIT 1`, token)
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.ProfilePhoto, &u.Roles,
		&u.ResetToken, &u.ResetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// SetResetToken persiste el token de reset y su expiración en una sola escritura.
func (r *UserRepo) SetResetToken(id, token string, expires time.Time) error {
	query := `
		UPDATE users SET reset_token = $2, reset_expires = $3, updated_at = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id, token, expires)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RotatePassword guarda el nuevo hash y limpia token y expiración atómicamente
// (misma fila, misma escritura: el invariante ambos-o-ninguno se mantiene).
func (r *UserRepo) RotatePassword(id, passwordHash string) error {
	query := `
		UPDATE users SET password_hash = $2, reset_token = NULL, reset_expires = NULL, updated_at = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("rotate password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

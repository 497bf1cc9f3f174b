package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

var _ repository.TokenDenylist = (*DenylistRepo)(nil)

// DenylistRepo implementación del puerto TokenDenylist sobre PostgreSQL.
// Las entradas vencidas se podan de forma perezosa en cada Deny; no hay barrido
// en background.
type DenylistRepo struct {
	pool *pgxpool.Pool
}

// NewDenylistRepository construye el adaptador de la denylist de tokens.
func NewDenylistRepository(pool *pgxpool.Pool) *DenylistRepo {
	return &DenylistRepo{pool: pool}
}

// Deny registra el token como revocado hasta expiresAt. Revocar dos veces es no-op.
func (r *DenylistRepo) Deny(token string, expiresAt time.Time) error {
	ctx := context.Background()
	if _, err := r.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < now()`); err != nil {
		return fmt.Errorf("prune revoked tokens: %w", err)
	}
	query := `
		INSERT INTO revoked_tokens (token, expires_at) VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING`
	if _, err := r.pool.Exec(ctx, query, token, expiresAt); err != nil {
		return fmt.Errorf("insert revoked token: %w", err)
	}
	return nil
}

// IsDenied indica si el token está revocado y todavía dentro de su ventana de vida.
func (r *DenylistRepo) IsDenied(token string) (bool, error) {
	var denied bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token = $1 AND expires_at > now())`,
		token,
	).Scan(&denied)
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return denied, nil
}

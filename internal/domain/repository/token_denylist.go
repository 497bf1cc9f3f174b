package repository

import "time"

// TokenDenylist define el puerto para revocar bearer tokens antes de su expiración
// natural (logout). Una entrada solo interesa hasta que el propio token expira.
type TokenDenylist interface {
	// Deny registra el token como revocado hasta expiresAt.
	Deny(token string, expiresAt time.Time) error
	// IsDenied indica si el token fue revocado y sigue dentro de su ventana de vida.
	IsDenied(token string) (bool, error)
}

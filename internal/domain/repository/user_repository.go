package repository

import (
	"time"

	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByResetToken(token string) (*entity.User, error)
	// SetResetToken persiste token y expiración juntos (invariante: ambos o ninguno).
	SetResetToken(id, token string, expires time.Time) error
	// RotatePassword guarda el nuevo hash y limpia token y expiración en la misma escritura.
	RotatePassword(id, passwordHash string) error
}

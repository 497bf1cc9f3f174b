package entity

import "time"

// Roles conocidos para User. Los strings fuera de este conjunto se aceptan como
// etiquetas personalizadas pero nunca otorgan permisos de un rol conocido.
const (
	RoleAdmin        = "admin"
	RoleManager      = "manager"
	RoleChef         = "chef"
	RoleReceptionist = "receptionist"
	RoleCustomer     = "customer"
)

// KnownRole indica si el string pertenece a la enumeración de roles conocidos.
func KnownRole(r string) bool {
	switch r {
	case RoleAdmin, RoleManager, RoleChef, RoleReceptionist, RoleCustomer:
		return true
	}
	return false
}

// User representa un usuario del sistema.
// ResetToken y ResetExpires son ambos nil o ambos no-nil: se setean juntos al
// solicitar el reset y se limpian juntos en la misma escritura al consumirlo.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	ProfilePhoto string
	Roles        []string // al menos un rol; por defecto ["customer"]
	ResetToken   *string
	ResetExpires *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingReset indica si hay un reset de contraseña pendiente (token emitido, no consumido).
func (u *User) HasPendingReset() bool {
	return u.ResetToken != nil && u.ResetExpires != nil
}

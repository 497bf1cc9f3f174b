package dto

import (
	"errors"
	"net/mail"
	"time"
)

// Límites de política de contraseñas.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 128
)

var errBadEmail = errors.New("email inválido")

func validEmail(s string) error {
	if s == "" {
		return errors.New("email es requerido")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errBadEmail
	}
	return nil
}

func validPassword(s string) error {
	if len(s) < PasswordMinLen || len(s) > PasswordMaxLen {
		return errors.New("password debe tener entre 8 y 128 caracteres")
	}
	return nil
}

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=200"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=8,max=128"`
	ProfilePhoto string   `json:"profile_photo" validate:"omitempty,max=500"`
	Roles        []string `json:"role" validate:"omitempty"`
}

// Validate chequea el request completo antes de tocar lógica de negocio.
func (r *RegisterRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name es requerido")
	}
	if err := validEmail(r.Email); err != nil {
		return err
	}
	return validPassword(r.Password)
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate chequea presencia de credenciales.
func (r *LoginRequest) Validate() error {
	if err := validEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return errors.New("password es requerido")
	}
	return nil
}

// ForgotPasswordRequest entrada para solicitar el reset de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Validate chequea el email.
func (r *ForgotPasswordRequest) Validate() error {
	return validEmail(r.Email)
}

// ResetPasswordRequest entrada para consumir el token de reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
}

// Validate chequea token y política de la nueva contraseña.
func (r *ResetPasswordRequest) Validate() error {
	if r.Token == "" {
		return errors.New("token es requerido")
	}
	return validPassword(r.NewPassword)
}

// ChangePasswordRequest entrada para cambiar la contraseña estando autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=128"`
}

// Validate chequea la contraseña actual y la política de la nueva.
func (r *ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return errors.New("currentPassword es requerido")
	}
	return validPassword(r.NewPassword)
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	ProfilePhoto string    `json:"profile_photo,omitempty"`
	Roles        []string  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthResponse salida de registro y login: token JWT + perfil público.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

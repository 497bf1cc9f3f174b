package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen a códigos HTTP.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrTokenRevoked       = errors.New("token revocado")
	ErrResetTokenExpired  = errors.New("token de reset expirado")
	ErrSamePassword       = errors.New("la nueva contraseña debe ser diferente")
	ErrMailDelivery       = errors.New("fallo al enviar el correo")
)

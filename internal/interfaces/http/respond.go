package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
)

// errJSON respuesta de error con código de aplicación.
func errJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// respondDomainError traduce errores de dominio a HTTP. Los errores esperados del
// cliente (400/404/409/401) no se loguean como error; lo inesperado se loguea con
// detalle completo y responde con mensaje genérico. dev controla si el detalle
// interno viaja en la respuesta (nunca en producción).
func respondDomainError(c *fiber.Ctx, err error, dev bool) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida")
	case errors.Is(err, domain.ErrSamePassword):
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", "la nueva contraseña debe ser diferente a la actual")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errJSON(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrDuplicate):
		return errJSON(c, fiber.StatusConflict, "DUPLICATE", "ya existe un recurso con ese nombre")
	case errors.Is(err, domain.ErrUserNotFound):
		return errJSON(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	case errors.Is(err, domain.ErrNotFound):
		return errJSON(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrUnauthorized):
		return errJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrTokenRevoked):
		return errJSON(c, fiber.StatusUnauthorized, "TOKEN_REVOKED", "token revocado")
	case errors.Is(err, domain.ErrResetTokenExpired):
		return errJSON(c, fiber.StatusUnauthorized, "RESET_EXPIRED", "el link de reset expiró")
	case errors.Is(err, domain.ErrMailDelivery):
		log.Error().Err(err).Str("path", c.Path()).Msg("fallo de entrega de correo")
		return errJSON(c, fiber.StatusInternalServerError, "MAIL", "no se pudo enviar el correo")
	default:
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
		resp := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}
		if dev {
			resp.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

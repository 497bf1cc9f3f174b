package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/internal/application/dto"
)

// UserHandler operaciones del usuario autenticado (perfil, cambio de contraseña).
type UserHandler struct {
	uc  *auth.AuthUseCase
	dev bool
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.AuthUseCase, dev bool) *UserHandler {
	return &UserHandler{uc: uc, dev: dev}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// UpdatePassword godoc
// @Summary      Cambiar la contraseña verificando la actual
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users/update-password [post]
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	if err := h.uc.ChangePassword(GetUserID(c), in); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada correctamente"})
}

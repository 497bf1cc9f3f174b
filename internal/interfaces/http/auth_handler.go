package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/internal/application/dto"
)

// AuthHandler maneja registro, login, logout y reset de contraseña.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	dev bool
}

// NewAuthHandler construye el handler de auth. dev habilita el detalle de errores internos.
func NewAuthHandler(uc *auth.AuthUseCase, dev bool) *AuthHandler {
	return &AuthHandler{uc: uc, dev: dev}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role?"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token hasta su expiración natural)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetToken(c), GetTokenExp(c)); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada correctamente"})
}

// ForgotPassword godoc
// @Summary      Solicitar reset de contraseña (envía link por correo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	if err := h.uc.RequestReset(in.Email); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "correo de reset enviado"})
}

// ResetPassword godoc
// @Summary      Consumir token de reset y rotar la contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "token recibido por correo"
// @Param        body   body  dto.ResetPasswordRequest  true  "newPassword"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	// El token viaja en la URL (es el link del correo); el body solo trae la contraseña.
	if tok := c.Params("token"); tok != "" {
		in.Token = tok
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	if err := h.uc.ConsumeReset(in.Token, in.NewPassword); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada correctamente"})
}

package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/messmate-api/internal/domain/repository"
	"github.com/jhoicas/messmate-api/pkg/jwt"
)

// Locals keys cargadas por el middleware de auth.
const (
	LocalUserID   = "user_id"
	LocalRoles    = "roles"
	LocalToken    = "token"
	LocalTokenExp = "token_exp"
)

// AuthMiddleware valida el Bearer Token JWT, rechaza tokens revocados (denylist)
// y extrae claims a c.Locals para los handlers protegidos.
func AuthMiddleware(jwtSecret string, denylist repository.TokenDenylist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return errJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return errJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return errJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		userID, roles, expiresAt, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return errJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		if denylist != nil {
			denied, err := denylist.IsDenied(tokenString)
			if err != nil {
				log.Error().Err(err).Msg("consulta a denylist de tokens")
				return errJSON(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
			}
			if denied {
				return errJSON(c, fiber.StatusUnauthorized, "TOKEN_REVOKED", "token revocado")
			}
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRoles, roles)
		c.Locals(LocalToken, tokenString)
		c.Locals(LocalTokenExp, expiresAt)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRoles devuelve el conjunto de roles del token.
func GetRoles(c *fiber.Ctx) []string {
	roles, _ := c.Locals(LocalRoles).([]string)
	return roles
}

// GetToken devuelve el token crudo presentado en el request.
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

// GetTokenExp devuelve la expiración natural del token presentado.
func GetTokenExp(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExp).(time.Time)
	return t
}

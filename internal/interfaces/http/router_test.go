package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
	apphttp "github.com/jhoicas/messmate-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles y helpers para probar las rutas de auth y usuario de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(u *entity.User) error {
	for _, cur := range r.users {
		if cur.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByResetToken(token string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) SetResetToken(id, token string, expires time.Time) error {
	for _, u := range r.users {
		if u.ID == id {
			u.ResetToken = &token
			u.ResetExpires = &expires
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) RotatePassword(id, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			u.ResetToken = nil
			u.ResetExpires = nil
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// resetToken devuelve el token de reset persistido para el email.
func (r *memUserRepo) resetToken(t *testing.T, email string) string {
	t.Helper()
	for _, u := range r.users {
		if u.Email == email {
			require.NotNil(t, u.ResetToken, "debe haber un reset pendiente")
			return *u.ResetToken
		}
	}
	t.Fatalf("usuario %s no encontrado", email)
	return ""
}

type memMailer struct{}

func (m *memMailer) Send(to, subject, htmlBody string) error { return nil }

// buildAPIApp monta el router completo con repos en memoria.
func buildAPIApp(repo *memUserRepo) *fiber.App {
	denylist := newMemDenylist()
	uc := auth.NewAuthUseCase(repo, denylist, &memMailer{}, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, "https://messmate.example.com")

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    uc,
		Denylist:  denylist,
		JWTSecret: testJWTSecret,
		AppName:   "messmate-test",
		Dev:       true,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, bearer string) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func registerViaAPI(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"name":     "Ana",
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas de reset: el token puede viajar en el body o en la URL
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_TokenEnBody(t *testing.T) {
	repo := &memUserRepo{}
	app := buildAPIApp(repo)
	registerViaAPI(t, app, "ana@example.com", "secretota123")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password",
		fiber.Map{"email": "ana@example.com"}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/reset-password", fiber.Map{
		"token":       repo.resetToken(t, "ana@example.com"),
		"newPassword": "nuevasecreta456",
	}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la ruta sin token en la URL debe aceptar el token del body")

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		fiber.Map{"email": "ana@example.com", "password": "nuevasecreta456"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResetPassword_TokenEnURL(t *testing.T) {
	repo := &memUserRepo{}
	app := buildAPIApp(repo)
	registerViaAPI(t, app, "ana@example.com", "secretota123")

	resp := doJSON(t, app, http.MethodPost, "/api/auth/forgot-password",
		fiber.Map{"email": "ana@example.com"}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost,
		"/api/auth/reset-password/"+repo.resetToken(t, "ana@example.com"),
		fiber.Map{"newPassword": "nuevasecreta456"}, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el link del correo lleva el token en la URL")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas del usuario autenticado
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuario_PerfilRequiereToken(t *testing.T) {
	repo := &memUserRepo{}
	app := buildAPIApp(repo)
	token := registerViaAPI(t, app, "ana@example.com", "secretota123")

	resp := doJSON(t, app, http.MethodGet, "/api/users/profile", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/users/profile", nil, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "ana@example.com")
	assert.NotContains(t, string(raw), "password",
		"el perfil nunca expone nada de la contraseña")
}

func TestUsuario_UpdatePassword(t *testing.T) {
	repo := &memUserRepo{}
	app := buildAPIApp(repo)
	token := registerViaAPI(t, app, "ana@example.com", "secretota123")

	resp := doJSON(t, app, http.MethodPost, "/api/users/update-password", fiber.Map{
		"currentPassword": "equivocada1",
		"newPassword":     "nuevasecreta456",
	}, token)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la contraseña actual debe verificarse")

	resp = doJSON(t, app, http.MethodPost, "/api/users/update-password", fiber.Map{
		"currentPassword": "secretota123",
		"newPassword":     "nuevasecreta456",
	}, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login",
		fiber.Map{"email": "ana@example.com", "password": "secretota123"}, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"la contraseña vieja deja de servir")
}

package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
	"github.com/jhoicas/messmate-api/pkg/jwt"
)

// Costo fijo de bcrypt para hashes de contraseña.
const bcryptCost = 10

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y reset de contraseña.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	denylist  repository.TokenDenylist
	mailer    Mailer
	jwtCfg    JWTConfig
	publicURL string
	now       func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. publicURL es la base del link de reset.
func NewAuthUseCase(userRepo repository.UserRepository, denylist repository.TokenDenylist, mailer Mailer, jwtCfg JWTConfig, publicURL string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		denylist:  denylist,
		mailer:    mailer,
		jwtCfg:    jwtCfg,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

// Register crea un usuario: hashea password con bcrypt (costo 10) y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado. Los roles no
// especificados quedan en ["customer"]; los strings fuera de la enumeración
// conocida se aceptan como etiquetas personalizadas.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{entity.RoleCustomer}
	}
	for _, r := range roles {
		if strings.TrimSpace(r) == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		ProfilePhoto: in.ProfilePhoto,
		Roles:        roles,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "usuario registrado correctamente",
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// ErrUserNotFound si el email no existe; ErrUnauthorized si el hash no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Message: "login correcto",
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

// Logout revoca el token presentado hasta su expiración natural (denylist).
// Los tokens no revocados simplemente expiran solos.
func (uc *AuthUseCase) Logout(token string, expiresAt time.Time) error {
	if expiresAt.Before(uc.now()) {
		// Ya expiró; no hay nada que revocar.
		return nil
	}
	return uc.denylist.Deny(token, expiresAt)
}

// GetProfile devuelve el perfil público del usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ChangePassword rota la contraseña del usuario autenticado verificando la actual.
// ErrUnauthorized si la actual no coincide; ErrSamePassword si la nueva es igual.
// La rotación limpia cualquier reset pendiente (misma escritura que el nuevo hash).
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	if in.NewPassword == in.CurrentPassword {
		return domain.ErrSamePassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.RotatePassword(user.ID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		ProfilePhoto: u.ProfilePhoto,
		Roles:        u.Roles,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

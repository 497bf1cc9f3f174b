package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/messmate-api/internal/domain"
)

// Ventana de validez del token de reset (chequeada al consumir, no hay barrido en background).
const resetTokenTTL = time.Hour

// resetTokenBytes produce tokens de 256 bits (hex de 64 chars).
const resetTokenBytes = 32

// RequestReset genera un token de reset de un solo uso, lo persiste junto con su
// expiración y lo envía por correo. Si el envío falla, el token queda persistido
// (reintento posible con el mismo token no expirado) y se retorna ErrMailDelivery.
func (uc *AuthUseCase) RequestReset(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generar token de reset: %w", err)
	}
	token := hex.EncodeToString(buf)
	expires := uc.now().Add(resetTokenTTL)

	if err := uc.userRepo.SetResetToken(user.ID, token, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/auth/reset-password/%s", uc.publicURL, token)
	body := fmt.Sprintf(`<h2>Restablecer contraseña</h2>
<p>Solicitaste un restablecimiento de contraseña. Hacé clic en el siguiente link:</p>
<a href="%s">%s</a>
<p>El link expira en 1 hora.</p>`, resetURL, resetURL)

	if err := uc.mailer.Send(user.Email, "Restablecer tu contraseña", body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	return nil
}

// ConsumeReset consume el token de reset exactamente una vez y rota la contraseña.
//   - ErrNotFound si ningún usuario tiene ese token (incluye tokens ya consumidos).
//   - ErrResetTokenExpired si la expiración quedó en el pasado.
//   - ErrSamePassword si la nueva contraseña coincide con la actual (comparada vía hash).
//
// En éxito limpia token y expiración en la misma escritura que guarda el nuevo hash.
// El correo de confirmación es best-effort: su fallo se loguea, nunca falla la operación.
func (uc *AuthUseCase) ConsumeReset(token, newPassword string) error {
	user, err := uc.userRepo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if user == nil || !user.HasPendingReset() {
		return domain.ErrNotFound
	}
	if uc.now().After(*user.ResetExpires) {
		return domain.ErrResetTokenExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)) == nil {
		return domain.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.RotatePassword(user.ID, string(hash)); err != nil {
		return err
	}

	body := `<h2>Contraseña actualizada</h2>
<p>Tu contraseña fue restablecida correctamente. Si no fuiste vos, contactá al administrador.</p>`
	if err := uc.mailer.Send(user.Email, "Tu contraseña fue actualizada", body); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("correo de confirmación de reset no enviado")
	}
	return nil
}

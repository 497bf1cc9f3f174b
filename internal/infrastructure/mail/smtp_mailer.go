package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación del puerto auth.Mailer sobre SMTP (gomail).
// Cada Send abre y cierra la conexión; el volumen de correo de la app
// (resets de contraseña) no justifica un daemon de envío.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo HTML. Retorna error si el transporte falla; la política
// de propagación (fallar la operación o solo loguear) es del caller.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

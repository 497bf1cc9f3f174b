package auth

// Mailer define la capacidad de envío de correo saliente como puerto inyectable
// (mockeable en tests). El contenido lo compone el use case; el transporte es
// responsabilidad del adaptador.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

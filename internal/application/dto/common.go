package dto

// MessageResponse cuerpo mínimo de toda respuesta (spec de API: siempre hay `message`).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP. Error lleva el detalle interno y solo se
// incluye fuera de producción.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

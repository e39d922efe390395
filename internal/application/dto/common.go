package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldError un error de validación de negocio.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 422: todos los errores, en el orden en que se evaluaron.
type ValidationErrorResponse struct {
	Code   string       `json:"code"`
	Errors []FieldError `json:"errors"`
}

package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens a binding error into the per-field list the API
// reports on 400. Errors that are not validator errors (malformed JSON,
// wrong types) come back as a single entry on "body".
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "url":
		return "debe ser una URL válida"
	case "len":
		return "longitud inválida (se esperan " + fe.Param() + " caracteres)"
	case "min":
		return "valor mínimo " + fe.Param()
	case "max":
		return "valor máximo " + fe.Param()
	default:
		return "valor inválido (" + fe.Tag() + ")"
	}
}

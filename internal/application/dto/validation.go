package dto

import "strings"

// ValidationError agrupa errores de campo del formulario. El caso de uso lo
// devuelve antes de tocar la base de datos; el handler lo mapea a 400 con
// Fields en el cuerpo.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "datos inválidos: " + strings.Join(parts, "; ")
}

package valueobject

import (
	"regexp"

	"github.com/tu-usuario/ventas-pro/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email es un value object inmutable: solo se construye vía NewEmail, que
// valida el formato. El valor cero ("") representa ausencia.
type Email string

// NewEmail valida el formato y construye el value object.
func NewEmail(s string) (Email, error) {
	if !emailRegex.MatchString(s) {
		return "", domain.ErrInvalidInput
	}
	return Email(s), nil
}

// String devuelve el valor crudo.
func (e Email) String() string { return string(e) }

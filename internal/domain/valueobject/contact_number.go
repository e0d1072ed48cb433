package valueobject

import (
	"regexp"

	"github.com/tu-usuario/ventas-pro/internal/domain"
)

// Formato E.164: prefijo + opcional, primer dígito 1-9, hasta 15 dígitos.
var contactNumberRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ContactNumber es un value object inmutable para números de contacto.
type ContactNumber string

// NewContactNumber valida formato E.164 y construye el value object.
func NewContactNumber(s string) (ContactNumber, error) {
	if !contactNumberRegex.MatchString(s) {
		return "", domain.ErrInvalidInput
	}
	return ContactNumber(s), nil
}

// String devuelve el valor crudo.
func (c ContactNumber) String() string { return string(c) }

package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/valueobject"
)

// Email válido se construye y conserva el valor.
func TestNewEmail_Valido(t *testing.T) {
	for _, s := range []string{"ana@tienda.co", "v.perez+ventas@example.com"} {
		em, err := valueobject.NewEmail(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, em.String())
	}
}

// Email malformado falla en construcción.
func TestNewEmail_Invalido(t *testing.T) {
	for _, s := range []string{"", "sin-arroba", "dos@@x.co", "espacio @x.co", "sin@punto"} {
		_, err := valueobject.NewEmail(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "debe rechazarse: %q", s)
	}
}

// Número de contacto en E.164 se construye.
func TestNewContactNumber_Valido(t *testing.T) {
	for _, s := range []string{"+573001234567", "573001234567", "+14155552671"} {
		cn, err := valueobject.NewContactNumber(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, cn.String())
	}
}

// Número malformado falla en construcción.
func TestNewContactNumber_Invalido(t *testing.T) {
	for _, s := range []string{"", "0300123", "abc", "+0573001234567", "+5730012345678901234"} {
		_, err := valueobject.NewContactNumber(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "debe rechazarse: %q", s)
	}
}

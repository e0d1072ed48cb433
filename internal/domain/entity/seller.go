package entity

import (
	"time"

	"github.com/tu-usuario/ventas-pro/internal/domain/valueobject"
)

// Seller representa un vendedor. Email y ContactNumber son value objects
// validados en construcción.
type Seller struct {
	ID            string
	UserID        string // dueño del registro
	Name          string
	Email         valueobject.Email
	ContactNumber valueobject.ContactNumber
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EntityID implementa repository.Entity.
func (s *Seller) EntityID() string { return s.ID }

// SetOwner implementa repository.Entity: sella el dueño del registro.
func (s *Seller) SetOwner(userID string) { s.UserID = userID }

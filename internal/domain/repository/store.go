package repository

// Entity es la capacidad mínima que exige el servicio genérico de registros:
// identidad y sellado de dueño. Cualquier entidad persistida la implementa.
type Entity interface {
	EntityID() string
	SetOwner(userID string)
}

// Store define el puerto de persistencia genérico por tipo de entidad (DIP).
// GetByID y toda mutación sobre un id ausente retornan un error que envuelve
// domain.ErrNotFound; nunca (zero, nil).
type Store[T Entity] interface {
	GetByID(id string) (T, error)
	Create(e T) (T, error)
	// Update aplica el payload sobre el registro id y devuelve el estado resultante.
	Update(id string, e T) (T, error)
	// Delete elimina el registro y devuelve su estado previo.
	Delete(id string) (T, error)
}

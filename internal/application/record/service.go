// Package record implementa el servicio genérico de registros: CRUD reutilizable
// sobre cualquier entidad persistida con identidad y dueño.
package record

import (
	"errors"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// Service es genérico sobre el tipo de entidad: no conoce su forma más allá de
// identidad + dueño. Es dueño de la política de sellado de dueño en creación y
// del chequeo de existencia previo a update/delete.
type Service[T repository.Entity] struct {
	store repository.Store[T]
	kind  string // nombre legible de la entidad, va en los errores NotFound
}

// NewService construye el servicio. Un store nil es un error de configuración
// del programador: falla de inmediato, no es una condición a reintentar.
func NewService[T repository.Entity](store repository.Store[T], kind string) (*Service[T], error) {
	if store == nil {
		return nil, fmt.Errorf("record: store inválido para %q", kind)
	}
	return &Service[T]{store: store, kind: kind}, nil
}

// Create sella el dueño del payload con actorID (ignorando cualquier valor que
// traiga) y persiste. La creación siempre procede: sin chequeo de existencia.
func (s *Service[T]) Create(payload T, actorID string) (T, error) {
	payload.SetOwner(actorID)
	return s.store.Create(payload)
}

// Update verifica existencia antes de escribir. Si la entidad no existe falla
// con NotFoundError sin intentar la escritura.
func (s *Service[T]) Update(id string, payload T) (T, error) {
	var zero T
	if err := s.isExists(id); err != nil {
		return zero, err
	}
	updated, err := s.store.Update(id, payload)
	if err != nil {
		// El chequeo y la escritura no son atómicos entre sí: un borrado
		// concurrente entre ambos se reporta como el mismo NotFound.
		if errors.Is(err, domain.ErrNotFound) {
			return zero, &domain.NotFoundError{Entity: s.kind}
		}
		return zero, err
	}
	return updated, nil
}

// Delete verifica existencia y elimina, devolviendo el estado previo del registro.
func (s *Service[T]) Delete(id string) (T, error) {
	var zero T
	if err := s.isExists(id); err != nil {
		return zero, err
	}
	deleted, err := s.store.Delete(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return zero, &domain.NotFoundError{Entity: s.kind}
		}
		return zero, err
	}
	return deleted, nil
}

// isExists busca la entidad por id: nil si existe, NotFoundError con el nombre
// de la entidad si no. Todo caller de Update/Delete depende de este contrato.
func (s *Service[T]) isExists(id string) error {
	if _, err := s.store.GetByID(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: s.kind}
		}
		return err
	}
	return nil
}

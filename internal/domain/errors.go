package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// NotFoundError indica que una entidad no existe. Lleva el nombre legible de la
// entidad para que el mensaje identifique qué se buscó.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " is not found!"
}

// Unwrap permite clasificar con errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError indica que la cantidad solicitada supera el stock
// disponible. El mensaje incluye la cantidad solicitada.
type InsufficientStockError struct {
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%d product are not available in stock!", e.Requested)
}

// Unwrap permite clasificar con errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

package eventbus

import (
	"context"
	"sync"
)

// Handler reacciona a un evento despachado. El bus espera a que termine.
type Handler func(ctx context.Context, event any) error

// Bus es un registro en memoria de nombre de evento → un único handler.
// Se construye explícitamente en el arranque y se inyecta a quien publica o
// se suscribe; no hay singleton de paquete ni registro implícito en init.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// New construye un bus vacío.
func New() *Bus {
	return &Bus{handlers: make(map[string]Handler)}
}

// RegisterHandler guarda el handler bajo eventName, sobreescribiendo cualquier
// registro previo con el mismo nombre (el último registro gana).
func (b *Bus) RegisterHandler(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = handler
}

// DispatchEvent busca el handler de eventName y lo invoca, esperando su
// resultado. Sin handler registrado el despacho es un no-op exitoso: despachar
// nunca falla por ausencia de handler. Un error del handler se propaga al caller.
func (b *Bus) DispatchEvent(ctx context.Context, eventName string, event any) error {
	b.mu.RLock()
	handler, ok := b.handlers[eventName]
	b.mu.RUnlock()
	if !ok {
		return nil
	}
	return handler(ctx, event)
}

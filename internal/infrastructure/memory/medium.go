// Package memory implementa un Medium en proceso, para tests y para STORE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var _ repository.Medium = (*Medium)(nil)

// Medium guarda los documentos en un mapa. El mutex protege cada llamada, no secuencias leer-escribir.
type Medium struct {
	mu   sync.Mutex
	data map[string][]byte
}

// New crea un medio vacío.
func New() *Medium {
	return &Medium{data: make(map[string][]byte)}
}

func (m *Medium) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *Medium) Set(_ context.Context, key string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(raw))
	copy(stored, raw)
	m.data[key] = stored
	return nil
}

// Close no libera nada; el contenido se mantiene.
func (m *Medium) Close() error { return nil }

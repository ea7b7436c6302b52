package repository

import "context"

// Medium es el medio durable clave-valor que respalda las colecciones (SQLite, PostgreSQL, Redis, memoria).
// Cada clave guarda un documento JSON opaco con la colección completa; Get y Set son atómicos por llamada.
type Medium interface {
	// Get devuelve el documento guardado; found=false si la clave nunca se escribió.
	Get(ctx context.Context, key string) (raw []byte, found bool, err error)
	// Set reemplaza el documento completo de la clave.
	Set(ctx context.Context, key string, raw []byte) error
	Close() error
}

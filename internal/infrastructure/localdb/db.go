// Package localdb implementa el store de colecciones del punto de venta sobre un Medium clave-valor.
//
// Cada colección (usuarios, productos, vendas, danos, fluxo de caixa) se lee y escribe completa:
// leer la lista, modificarla en memoria y escribirla de vuelta. No hay índices ni bloqueos entre
// lectura y escritura; dos procesos contra el mismo medio pueden pisarse.
package localdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/luviel-fluxo/internal/domain/entity"
	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

// Claves de colección en el medio.
const (
	KeyProducts = "luviel_products"
	KeySales    = "luviel_sales"
	KeyUsers    = "luviel_users"
	KeyDamages  = "luviel_damages"
	KeyCashFlow = "luviel_cashflow"
)

// DB es el store de colecciones. Se construye explícitamente y se inyecta en los repositorios.
type DB struct {
	medium repository.Medium
}

// Open envuelve el medio y siembra las colecciones que aún no existen:
// usuarios con las dos cuentas fijas y el resto como listas vacías.
func Open(ctx context.Context, medium repository.Medium) (*DB, error) {
	db := &DB{medium: medium}
	if err := db.initialize(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *DB) initialize(ctx context.Context) error {
	_, found, err := db.medium.Get(ctx, KeyUsers)
	if err != nil {
		return fmt.Errorf("localdb: leer %s: %w", KeyUsers, err)
	}
	if !found {
		if err := setData(ctx, db, KeyUsers, entity.DefaultUsers()); err != nil {
			return err
		}
	}

	for _, key := range []string{KeyProducts, KeySales, KeyDamages, KeyCashFlow} {
		_, found, err := db.medium.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("localdb: leer %s: %w", key, err)
		}
		if found {
			continue
		}
		if err := db.medium.Set(ctx, key, []byte("[]")); err != nil {
			return fmt.Errorf("localdb: sembrar %s: %w", key, err)
		}
	}
	return nil
}

// Medium expone el medio subyacente (cierre desde main).
func (db *DB) Medium() repository.Medium {
	return db.medium
}

// Close cierra el medio.
func (db *DB) Close() error {
	return db.medium.Close()
}

// getData lee la colección completa. Clave ausente o vacía = lista vacía (nunca nil).
func getData[T any](ctx context.Context, db *DB, key string) ([]T, error) {
	raw, found, err := db.medium.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("localdb: leer %s: %w", key, err)
	}
	out := []T{}
	if !found || len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("localdb: decodificar %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// setData reemplaza la colección completa en una sola escritura.
func setData[T any](ctx context.Context, db *DB, key string, data []T) error {
	if data == nil {
		data = []T{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("localdb: codificar %s: %w", key, err)
	}
	if err := db.medium.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("localdb: escribir %s: %w", key, err)
	}
	return nil
}

// appendData agrega un registro al final de la colección (lectura + escritura completas).
func appendData[T any](ctx context.Context, db *DB, key string, record T) error {
	list, err := getData[T](ctx, db, key)
	if err != nil {
		return err
	}
	return setData(ctx, db, key, append(list, record))
}

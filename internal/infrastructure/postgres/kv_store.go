package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var _ repository.Medium = (*KVStore)(nil)

const createKVTable = `
	CREATE TABLE IF NOT EXISTS kv_entries (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// KVStore implementa el Medium sobre una tabla kv_entries con una fila JSONB por colección.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore crea la tabla si no existe y devuelve el adaptador.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	if _, err := pool.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("create kv_entries: %w", err)
	}
	return &KVStore{pool: pool}, nil
}

// Get devuelve el documento JSON de la clave.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value::text FROM kv_entries WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		if isUndefinedTable(err) {
			return nil, false, fmt.Errorf("get %s: tabla kv_entries inexistente: %w", key, err)
		}
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, true, nil
}

// Set reemplaza el documento (upsert).
func (s *KVStore) Set(ctx context.Context, key string, raw []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, query, key, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SalesTotal suma el total de todas las ventas guardadas directamente en SQL (NUMERIC -> decimal).
// Lo usa el arranque para registrar el estado de caja sin decodificar la colección.
func (s *KVStore) SalesTotal(ctx context.Context, salesKey string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM((elem->>'total')::numeric), 0)
		FROM kv_entries, jsonb_array_elements(value) AS elem
		WHERE key = $1`
	if err := s.pool.QueryRow(ctx, query, salesKey).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum sales: %w", err)
	}
	return total, nil
}

// Close cierra el pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}

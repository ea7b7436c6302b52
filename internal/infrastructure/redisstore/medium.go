// Package redisstore implementa el Medium sobre Redis: una clave string por colección.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/pkg/config"
)

var _ repository.Medium = (*Medium)(nil)

// Medium adaptador go-redis. Las claves no expiran.
type Medium struct {
	rdb    *redis.Client
	prefix string
}

// Connect abre el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, cfg config.RedisConfig) (*Medium, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}
	return New(rdb, cfg.Prefix), nil
}

// New envuelve un cliente existente.
func New(rdb *redis.Client, prefix string) *Medium {
	return &Medium{rdb: rdb, prefix: prefix}
}

func (m *Medium) key(k string) string { return m.prefix + k }

func (m *Medium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := m.rdb.Get(ctx, m.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return raw, true, nil
}

func (m *Medium) Set(ctx context.Context, key string, raw []byte) error {
	if err := m.rdb.Set(ctx, m.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

func (m *Medium) Close() error { return m.rdb.Close() }

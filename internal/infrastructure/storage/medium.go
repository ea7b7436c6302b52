// Package storage elige el medio durable según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/memory"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/postgres"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/redisstore"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/sqlite"
	"github.com/jhoicas/luviel-fluxo/pkg/config"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

// OpenMedium abre el medio configurado. El llamador cierra el medio (vía localdb.DB.Close).
func OpenMedium(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.Medium, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		m, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.Store.SQLitePath).Msg("store sqlite aberto")
		return m, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		kv, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if total, err := kv.SalesTotal(ctx, localdb.KeySales); err != nil {
			log.Warn().Err(err).Msg("total de vendas no postgres")
		} else {
			log.Info().Str("sales_total", total.StringFixed(2)).Msg("store postgres aberto")
		}
		return kv, nil

	case config.DriverRedis:
		m, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("store redis aberto")
		return m, nil

	case config.DriverMemory:
		log.Warn().Msg("store em memória: os dados se perdem ao encerrar")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("storage: driver desconhecido %q", cfg.Store.Driver)
}

// Open abre el medio y la base de colecciones con la semilla de usuarios.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*localdb.DB, error) {
	medium, err := OpenMedium(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	db, err := localdb.Open(ctx, medium)
	if err != nil {
		_ = medium.Close()
		return nil, err
	}
	return db, nil
}

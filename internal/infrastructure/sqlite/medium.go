// Package sqlite implementa el Medium por defecto: un archivo SQLite embebido vía GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/luviel-fluxo/internal/domain/repository"
)

var _ repository.Medium = (*Medium)(nil)

// KVEntry una fila por colección. Value guarda el documento JSON completo.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName fija el nombre de la tabla.
func (KVEntry) TableName() string { return "kv_entries" }

// Medium adaptador GORM sobre SQLite.
type Medium struct {
	db *gorm.DB
}

// Open abre (o crea) el archivo y migra la tabla kv_entries.
func Open(path string) (*Medium, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("sqlite: migrar: %w", err)
	}
	return &Medium{db: db}, nil
}

func (m *Medium) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry KVEntry
	err := m.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite: get %s: %w", key, err)
	}
	return []byte(entry.Value), true, nil
}

func (m *Medium) Set(ctx context.Context, key string, raw []byte) error {
	entry := KVEntry{Key: key, Value: string(raw), UpdatedAt: time.Now()}
	err := m.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("sqlite: set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (m *Medium) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

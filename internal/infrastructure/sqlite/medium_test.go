package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/sqlite"
)

func TestMedium_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fluxo.db")

	m, err := sqlite.Open(path)
	require.NoError(t, err)
	_, found, err := m.Get(ctx, "luviel_products")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "luviel_products", []byte(`[{"id":"p1"}]`)))
	require.NoError(t, m.Set(ctx, "luviel_products", []byte(`[{"id":"p2"}]`)))
	require.NoError(t, m.Close())

	// Reabrir: el documento sobrevive al reinicio
	m2, err := sqlite.Open(path)
	require.NoError(t, err)
	defer m2.Close()
	raw, found, err := m2.Get(ctx, "luviel_products")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":"p2"}]`, string(raw))
}

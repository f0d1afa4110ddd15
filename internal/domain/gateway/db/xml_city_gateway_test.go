package db_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) (*db.XMLFileCityGateway, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cities.xml")
	return db.NewXMLFileCityGateway(path), path
}

func TestXMLFileCityGatewayCreatesFileOnFirstUse(t *testing.T) {
	t.Parallel()

	gateway, path := newGateway(t)

	cities, err := gateway.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cities)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<?xml")
	assert.Contains(t, string(raw), "<cities>")
}

func TestXMLFileCityGatewayAssignsIncreasingIDs(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t)
	ctx := context.Background()

	paris, err := gateway.Create(ctx, "Paris")
	require.NoError(t, err)
	lisbon, err := gateway.Create(ctx, "Lisbon")
	require.NoError(t, err)

	assert.Equal(t, "1", paris.ID)
	assert.Equal(t, "2", lisbon.ID)

	require.NoError(t, gateway.DeleteByID(ctx, "1"))

	oslo, err := gateway.Create(ctx, "Oslo")
	require.NoError(t, err)
	assert.Equal(t, "3", oslo.ID)

	cities, err := gateway.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.City{{ID: "2", Name: "Lisbon"}, {ID: "3", Name: "Oslo"}}, cities)
}

func TestXMLFileCityGatewayNextIDAfterEmptying(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t)
	ctx := context.Background()

	_, err := gateway.Create(ctx, "Paris")
	require.NoError(t, err)
	require.NoError(t, gateway.DeleteByID(ctx, "1"))

	again, err := gateway.Create(ctx, "Paris")
	require.NoError(t, err)
	assert.Equal(t, "1", again.ID)
}

func TestXMLFileCityGatewayUpdate(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t)
	ctx := context.Background()

	_, err := gateway.Create(ctx, "Pariss")
	require.NoError(t, err)

	updated, err := gateway.UpdateByID(ctx, "1", "Paris")
	require.NoError(t, err)
	assert.Equal(t, &entity.City{ID: "1", Name: "Paris"}, updated)

	_, err = gateway.UpdateByID(ctx, "9", "Nowhere")
	assert.ErrorIs(t, err, db.ErrNotFound)

	cities, err := gateway.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.City{{ID: "1", Name: "Paris"}}, cities)
}

func TestXMLFileCityGatewayDeleteUnknown(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t)

	err := gateway.DeleteByID(context.Background(), "42")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestXMLFileCityGatewayReadsExistingFile(t *testing.T) {
	t.Parallel()

	gateway, path := newGateway(t)
	content := `<?xml version='1.0' encoding='utf-8'?>
<cities><city id="7"><name>Rome</name></city><city id="x"><name>Odd</name></city></cities>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cities, err := gateway.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.City{{ID: "7", Name: "Rome"}, {ID: "x", Name: "Odd"}}, cities)

	created, err := gateway.Create(context.Background(), "Milan")
	require.NoError(t, err)
	assert.Equal(t, "8", created.ID)
}

func TestXMLFileCityGatewayHealth(t *testing.T) {
	t.Parallel()

	gateway, path := newGateway(t)
	assert.Equal(t, model.StatusUp, gateway.Health(context.Background()).Status)

	require.NoError(t, os.WriteFile(path, []byte("<cities><city>"), 0o644))
	assert.Equal(t, model.StatusDown, gateway.Health(context.Background()).Status)
}

func TestXMLFileCityGatewayConcurrentCreates(t *testing.T) {
	t.Parallel()

	gateway, _ := newGateway(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := gateway.Create(ctx, "City")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	cities, err := gateway.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 20)

	seen := make(map[string]bool)
	for _, c := range cities {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

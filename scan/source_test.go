package scan_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentmap/model"
	"fluentmap/scan"
	"fluentmap/store"
	"fluentmap/warehouse"
)

var (
	storeModule     = model.Module{Path: "fluentmap/store"}
	warehouseModule = model.Module{Path: "fluentmap/warehouse"}
)

func TestDefault_HasFixtureModules(t *testing.T) {
	types, err := scan.Default.Scan(storeModule)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{
		reflect.TypeOf(store.ProductMap{}),
		reflect.TypeOf(store.CategoryMap{}),
		reflect.TypeOf(store.CustomerMap{}),
		reflect.TypeOf(store.OrderMap{}),
		reflect.TypeOf(store.OrderItemMap{}),
	}, types)

	assert.Contains(t, scan.Default.Modules(), warehouseModule)
}

func TestSourceScanner_Scan(t *testing.T) {
	s, err := scan.NewSourceScanner()
	require.NoError(t, err)

	types, err := s.Scan(storeModule)
	require.NoError(t, err)
	require.Len(t, types, 5)
	assert.Equal(t, reflect.TypeOf(store.ProductMap{}), types[0])
	assert.Equal(t, reflect.TypeOf(store.OrderItemMap{}), types[4])

	again, err := s.Scan(storeModule)
	require.NoError(t, err)
	assert.Equal(t, types, again)
}

func TestSourceScanner_PointerReceiver(t *testing.T) {
	s, err := scan.NewSourceScanner()
	require.NoError(t, err)

	types, err := s.Scan(warehouseModule)
	require.NoError(t, err)
	assert.Contains(t, types, reflect.TypeOf(warehouse.BinMap{}))

	m := model.New(model.WithScanner(s))
	require.NoError(t, m.AddMappingsFromModule(warehouseModule))
	assert.Len(t, m.Classes(), 6)
}

func TestSourceScanner_Unregistered(t *testing.T) {
	c := scan.NewCatalog()
	require.NoError(t, c.Register(store.ProductMap{}))

	s, err := scan.NewSourceScanner(scan.WithCatalog(c))
	require.NoError(t, err)

	_, err = s.Scan(storeModule)
	require.ErrorIs(t, err, model.ErrScan)
	assert.Contains(t, err.Error(), "CategoryMap")
	assert.NotContains(t, err.Error(), "ProductMap")
}

func TestSourceScanner_MissingPackage(t *testing.T) {
	s, err := scan.NewSourceScanner()
	require.NoError(t, err)

	_, err = s.Scan(model.Module{Path: "fluentmap/no/such/package"})
	require.ErrorIs(t, err, model.ErrScan)
}

func TestSourceScanner_Purge(t *testing.T) {
	s, err := scan.NewSourceScanner(scan.WithCacheSize(1))
	require.NoError(t, err)

	_, err = s.Scan(storeModule)
	require.NoError(t, err)

	s.Purge()

	types, err := s.Scan(storeModule)
	require.NoError(t, err)
	assert.Len(t, types, 5)
}

func TestNewSourceScanner_Errors(t *testing.T) {
	_, err := scan.NewSourceScanner(scan.WithCacheSize(0))
	require.Error(t, err)

	_, err = scan.NewSourceScanner(scan.WithCatalog(nil))
	require.Error(t, err)
}

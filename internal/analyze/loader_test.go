package analyze

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	pkgs, err := analyzer.LoadPackages("fluentmap/store", "fluentmap/warehouse")
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	paths := []string{pkgs[0].Path, pkgs[1].Path}
	assert.ElementsMatch(t, []string{"fluentmap/store", "fluentmap/warehouse"}, paths)
}

func TestAnalyzer_DeclarationOrder(t *testing.T) {
	pkg, err := NewAnalyzer().LoadPackage("fluentmap/store")
	require.NoError(t, err)

	assert.Equal(t, "store", pkg.Name)
	assert.Equal(t, []string{"ProductMap", "CategoryMap", "CustomerMap", "OrderMap", "OrderItemMap"}, pkg.Names())

	for _, d := range pkg.Definitions {
		assert.Equal(t, "fluentmap/store", d.ID.PkgPath)
		assert.Equal(t, "mappings.go", filepath.Base(d.Position.Filename), d.ID.String())
		assert.False(t, d.PointerReceiver, d.ID.String())
	}
}

func TestAnalyzer_SkipsEntities(t *testing.T) {
	pkg, err := NewAnalyzer().LoadPackage("fluentmap/store")
	require.NoError(t, err)

	assert.NotContains(t, pkg.Names(), "Product")
	assert.NotContains(t, pkg.Names(), "OrderStatus")
}

func TestAnalyzer_PointerReceiver(t *testing.T) {
	pkg, err := NewAnalyzer().LoadPackage("fluentmap/warehouse")
	require.NoError(t, err)

	var bin *Definition
	for i := range pkg.Definitions {
		if pkg.Definitions[i].ID.Name == "BinMap" {
			bin = &pkg.Definitions[i]
		}
	}

	require.NotNil(t, bin)
	assert.True(t, bin.PointerReceiver)
}

func TestAnalyzer_NoDefinitions(t *testing.T) {
	pkg, err := NewAnalyzer().LoadPackage("fluentmap/internal/naming")
	require.NoError(t, err)
	assert.Empty(t, pkg.Definitions)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackage("fluentmap/does/not/exist")
	require.Error(t, err)
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "fluentmap/store.OrderMap", TypeID{PkgPath: "fluentmap/store", Name: "OrderMap"}.String())
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
}

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "store", PkgAlias("fluentmap/store"))
	assert.Equal(t, "fluentmap", PkgAlias("fluentmap"))
	assert.Empty(t, PkgAlias(""))
}

func TestSplitEntity(t *testing.T) {
	tests := []struct {
		entity, pkgPath, name string
	}{
		{"fluentmap/store.Product", "fluentmap/store", "Product"},
		{"main.Order", "main", "Order"},
		{"Plain", "", "Plain"},
		{"example.com/shop", "", "example.com/shop"},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			pkgPath, name := SplitEntity(tt.entity)
			assert.Equal(t, tt.pkgPath, pkgPath)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestShortEntity(t *testing.T) {
	assert.Equal(t, "store.Product", ShortEntity("fluentmap/store.Product"))
	assert.Equal(t, "Plain", ShortEntity("Plain"))
}

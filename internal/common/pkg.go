package common

import (
	"path"
	"strings"
)

// SplitEntity splits a qualified entity name "path/to/pkg.Type" into its
// package path and type name. Names without a package come back unchanged
// with an empty path.
func SplitEntity(entity string) (pkgPath, name string) {
	i := strings.LastIndexByte(entity, '.')
	if i < 0 || strings.Contains(entity[i:], "/") {
		return "", entity
	}

	return entity[:i], entity[i+1:]
}

// PkgAlias returns the last element of a package path, the name it is
// imported under by default. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// ShortEntity renders a qualified entity name as "pkg.Type".
func ShortEntity(entity string) string {
	pkgPath, name := SplitEntity(entity)
	if pkgPath == "" {
		return name
	}

	return PkgAlias(pkgPath) + "." + name
}

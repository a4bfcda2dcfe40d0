package analyze

import (
	"go/token"
)

// DefineMethod is the method a definition type must provide.
const DefineMethod = "Define"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fluentmap/store"
	Name    string // e.g., "OrderMap"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Definition describes a mapping-definition type found in source.
type Definition struct {
	ID       TypeID
	Position token.Position // Declaration of the type
	// PointerReceiver is set when Define is only in the pointer method set.
	PointerReceiver bool
}

// Package holds the definitions declared by one loaded package, in
// declaration order.
type Package struct {
	Path        string
	Name        string
	Definitions []Definition
}

// Names returns the definition type names in declaration order.
func (p *Package) Names() []string {
	names := make([]string, len(p.Definitions))
	for i, d := range p.Definitions {
		names[i] = d.ID.Name
	}

	return names
}

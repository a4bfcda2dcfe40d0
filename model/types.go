package model

import (
	"errors"
	"fmt"
	"reflect"

	"fluentmap/mapping"
)

// Module identifies a Go package that may contain mapping definitions.
type Module struct {
	Path string // Import path, e.g. "fluentmap/store"
}

// String returns the import path.
func (m Module) String() string {
	return m.Path
}

// ModuleOf resolves the package that defines the type of marker.
// Pointer types are dereferenced; builtin and unnamed types have no package
// and fail with a KindResolution error.
func ModuleOf(marker any) (Module, error) {
	t := reflect.TypeOf(marker)
	if t == nil {
		return Module{}, NewError(KindResolution, "resolve module", "", errors.New("marker is nil"))
	}

	if rt, ok := marker.(reflect.Type); ok && rt != nil {
		t = rt
	}

	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	if t.PkgPath() == "" {
		return Module{}, NewError(KindResolution, "resolve module", t.String(),
			errors.New("type is not defined in a package"))
	}

	return Module{Path: t.PkgPath()}, nil
}

// Scanner discovers mapping-definition types inside a module.
// Each call returns a fresh, finite list.
type Scanner interface {
	Scan(m Module) ([]reflect.Type, error)
}

// ScannerFunc adapts a function to a Scanner.
type ScannerFunc func(m Module) ([]reflect.Type, error)

// Scan calls f(m).
func (f ScannerFunc) Scan(m Module) ([]reflect.Type, error) { return f(m) }

// Factory constructs an instance of a mapping-definition type.
type Factory func(t reflect.Type) (any, error)

// Target receives the finalized class mappings.
type Target interface {
	AddMapping(class mapping.ClassMapping) error
}

// Endpoint is one side of a many-to-many association.
type Endpoint struct {
	Entity  string // Entity declaring the association
	Member  string // Member holding the collection
	Child   string // Entity on the other end
	Inverse bool   // Whether the definition marked this side inverse
}

// String returns "<entity>.<member>".
func (e Endpoint) String() string {
	return e.Entity + "." + e.Member
}

// Pairing names the authoritative side of a bidirectional many-to-many
// association.
type Pairing struct {
	Owner   Endpoint
	Inverse Endpoint
}

// PairingStrategy decides which of two paired sides owns the association.
// The returned pairing must contain exactly a and b.
type PairingStrategy func(a, b Endpoint) Pairing

// DefaultPairing keeps a side that was explicitly marked inverse as the
// inverse side; otherwise the side that sorts first owns the association.
func DefaultPairing(a, b Endpoint) Pairing {
	switch {
	case a.Inverse && !b.Inverse:
		return Pairing{Owner: b, Inverse: a}
	case b.Inverse && !a.Inverse:
		return Pairing{Owner: a, Inverse: b}
	case b.String() < a.String():
		return Pairing{Owner: b, Inverse: a}
	default:
		return Pairing{Owner: a, Inverse: b}
	}
}

func (p Pairing) matches(a, b Endpoint) bool {
	o, i := p.Owner.String(), p.Inverse.String()
	if o == i {
		return false
	}

	return (o == a.String() && i == b.String()) || (o == b.String() && i == a.String())
}

// instantiate builds a definition instance with the default mechanism.
func instantiate(t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.Interface:
		return nil, fmt.Errorf("cannot instantiate interface type %s", t)
	case reflect.Pointer:
		return reflect.New(t.Elem()).Interface(), nil
	default:
		return reflect.New(t).Interface(), nil
	}
}

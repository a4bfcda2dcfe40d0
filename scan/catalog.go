package scan

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"fluentmap/mapping"
	"fluentmap/model"
)

var definitionType = reflect.TypeOf((*mapping.Definition)(nil)).Elem()

// Default is the catalog used by Register and by containers that are not
// given another scanner.
var Default = NewCatalog()

// Register adds definitions to the Default catalog.
func Register(defs ...any) error {
	return Default.Register(defs...)
}

// MustRegister adds definitions to the Default catalog and panics on error.
func MustRegister(defs ...any) {
	if err := Default.Register(defs...); err != nil {
		panic(err)
	}
}

// Catalog is a registry of mapping-definition types grouped by package.
// It is safe for concurrent use.
type Catalog struct {
	mu    sync.RWMutex
	types map[string][]reflect.Type
	known map[reflect.Type]bool
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types: make(map[string][]reflect.Type),
		known: make(map[reflect.Type]bool),
	}
}

// Register adds definition types. Each argument is either an instance of a
// definition type or its reflect.Type; pointers are stored as their element
// type. Registering a type again is a no-op. Invalid arguments are reported
// together and do not prevent the valid ones from being added.
func (c *Catalog) Register(defs ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	for _, d := range defs {
		t, err := definitionTypeOf(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if c.known[t] {
			continue
		}

		c.known[t] = true
		c.types[t.PkgPath()] = append(c.types[t.PkgPath()], t)
	}

	return errors.Join(errs...)
}

// Scan returns the definitions registered for the module, in registration
// order. A module without registered definitions yields an empty list.
func (c *Catalog) Scan(mod model.Module) ([]reflect.Type, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.types[mod.Path]), nil
}

// Lookup finds a registered definition by package path and type name.
func (c *Catalog) Lookup(pkgPath, name string) (reflect.Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, t := range c.types[pkgPath] {
		if t.Name() == name {
			return t, true
		}
	}

	return nil, false
}

// Modules returns every module with registered definitions, sorted by path.
func (c *Catalog) Modules() []model.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()

	mods := make([]model.Module, 0, len(c.types))
	for path := range c.types {
		mods = append(mods, model.Module{Path: path})
	}

	sort.Slice(mods, func(i, j int) bool { return mods[i].Path < mods[j].Path })

	return mods
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.known)
}

func definitionTypeOf(d any) (reflect.Type, error) {
	t, ok := d.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(d)
	}

	if t == nil {
		return nil, errors.New("definition is nil")
	}

	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return nil, fmt.Errorf("%s is not a named type", t)
	}

	if t.Kind() == reflect.Interface || !reflect.PointerTo(t).Implements(definitionType) {
		return nil, fmt.Errorf("%s does not implement mapping.Definition", t)
	}

	return t, nil
}

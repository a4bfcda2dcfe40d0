// Package conventions holds the rules applied to class mappings after every
// definition has been ingested and before the document is rendered.
//
// A convention sees the mapping as the definition left it. The built-in
// conventions only fill values a definition did not set explicitly; custom
// conventions are free to overwrite anything. Conventions run in the order
// they were added, each over every class, so a later convention observes the
// changes of an earlier one.
package conventions

import (
	"fmt"

	"github.com/gobwas/glob"

	"fluentmap/mapping"
)

// Convention alters class mappings.
type Convention interface {
	Apply(class *mapping.ClassMapping)
}

// ClassFunc adapts a function to a Convention.
type ClassFunc func(class *mapping.ClassMapping)

// Apply calls f(class).
func (f ClassFunc) Apply(class *mapping.ClassMapping) { f(class) }

// ID returns a convention applied to the identifier of each class that has one.
func ID(fn func(class *mapping.ClassMapping, id *mapping.IDMapping)) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		if class.ID != nil {
			fn(class, class.ID)
		}
	})
}

// Property returns a convention applied to every property.
func Property(fn func(class *mapping.ClassMapping, p *mapping.PropertyMapping)) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		for i := range class.Properties {
			fn(class, &class.Properties[i])
		}
	})
}

// Reference returns a convention applied to every many-to-one association.
func Reference(fn func(class *mapping.ClassMapping, r *mapping.ReferenceMapping)) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		for i := range class.References {
			fn(class, &class.References[i])
		}
	})
}

// Collection returns a convention applied to every one-to-many association.
func Collection(fn func(class *mapping.ClassMapping, h *mapping.CollectionMapping)) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		for i := range class.Collections {
			fn(class, &class.Collections[i])
		}
	})
}

// ManyToMany returns a convention applied to every many-to-many association.
func ManyToMany(fn func(class *mapping.ClassMapping, m *mapping.ManyToManyMapping)) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		for i := range class.ManyToMany {
			fn(class, &class.ManyToMany[i])
		}
	})
}

type filtered struct {
	patterns []glob.Glob
	inner    Convention
}

func (f filtered) Apply(class *mapping.ClassMapping) {
	for _, g := range f.patterns {
		if g.Match(class.Name) || g.Match(class.Entity) {
			f.inner.Apply(class)
			return
		}
	}
}

// ForEntities restricts c to classes whose name or qualified entity name
// matches one of the glob patterns ("Book", "Order*", "example/library.*").
func ForEntities(c Convention, patterns ...string) (Convention, error) {
	compiled := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid entity pattern %q: %w", p, err)
		}

		compiled = append(compiled, g)
	}

	return filtered{patterns: compiled, inner: c}, nil
}

// MustForEntities is like ForEntities but panics on an invalid pattern.
func MustForEntities(c Convention, patterns ...string) Convention {
	f, err := ForEntities(c, patterns...)
	if err != nil {
		panic(err)
	}

	return f
}

package conventions

import (
	"strings"

	"fluentmap/internal/naming"
	"fluentmap/mapping"
)

// ShortName returns the type name part of a qualified entity name.
func ShortName(entity string) string {
	if i := strings.LastIndexByte(entity, '.'); i >= 0 {
		return entity[i+1:]
	}

	return entity
}

// TableName derives unset table names from the entity type name.
func TableName(fn func(name string) string) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		if class.Table == "" {
			class.Table = fn(class.Name)
		}
	})
}

// SnakeCaseTables names unset tables after the snake-cased entity name.
func SnakeCaseTables() Convention {
	return TableName(naming.SnakeCase)
}

// SnakeCaseColumns names unset identifier and property columns after the
// snake-cased member name.
func SnakeCaseColumns() Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		if class.ID != nil && class.ID.Column == "" {
			class.ID.Column = naming.SnakeCase(class.ID.Name)
		}

		for i := range class.Properties {
			p := &class.Properties[i]
			if p.Column == "" {
				p.Column = naming.SnakeCase(p.Name)
			}
		}
	})
}

// ForeignKeySuffix names unset foreign key columns as the snake-cased
// owning name followed by suffix ("Publisher" + "_id" -> "publisher_id").
func ForeignKeySuffix(suffix string) Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		fillKeys(class, func(name string) string { return naming.SnakeCase(name) + suffix })
	})
}

// DefaultStringLength gives string properties without a length the length n.
func DefaultStringLength(n int) Convention {
	return Property(func(_ *mapping.ClassMapping, p *mapping.PropertyMapping) {
		if p.Type == "string" && p.Length == 0 {
			p.Length = n
		}
	})
}

// JoinTable names unset many-to-many join tables from the parent and child
// entity type names.
func JoinTable(fn func(parent, child string) string) Convention {
	return ManyToMany(func(class *mapping.ClassMapping, m *mapping.ManyToManyMapping) {
		if m.Table == "" {
			m.Table = fn(class.Name, ShortName(m.Entity))
		}
	})
}

// Defaults fills whatever is still unset once user conventions and pairing
// have run: tables and columns take member names, keys take "<Name>_id" and
// join tables "<Parent>To<Child>".
func Defaults() Convention {
	return ClassFunc(func(class *mapping.ClassMapping) {
		if class.Table == "" {
			class.Table = class.Name
		}

		if class.ID != nil && class.ID.Column == "" {
			class.ID.Column = class.ID.Name
		}

		for i := range class.Properties {
			p := &class.Properties[i]
			if p.Column == "" {
				p.Column = p.Name
			}
		}

		for i := range class.ManyToMany {
			m := &class.ManyToMany[i]
			if m.Table == "" {
				m.Table = class.Name + "To" + ShortName(m.Entity)
			}
		}

		fillKeys(class, DefaultKey)
	})
}

// DefaultKey is the foreign key column Defaults gives name.
func DefaultKey(name string) string {
	return name + "_id"
}

// fillKeys sets every unset foreign key column using key(name).
func fillKeys(class *mapping.ClassMapping, key func(name string) string) {
	for i := range class.References {
		r := &class.References[i]
		if r.Column == "" {
			r.Column = key(r.Name)
		}
	}

	for i := range class.Collections {
		h := &class.Collections[i]
		if h.KeyColumn == "" {
			h.KeyColumn = key(class.Name)
		}
	}

	for i := range class.ManyToMany {
		m := &class.ManyToMany[i]
		if m.ParentKey == "" {
			m.ParentKey = key(class.Name)
		}

		if m.ChildKey == "" {
			// A self-referencing relation would otherwise reuse the parent key.
			if m.Entity == class.Entity {
				m.ChildKey = key(m.Name)
			} else {
				m.ChildKey = key(ShortName(m.Entity))
			}
		}
	}
}

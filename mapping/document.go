package mapping

import "slices"

// DocumentVersion is the schema version written into every rendered document.
const DocumentVersion = "1"

// Generator strategies for identifiers.
const (
	GeneratorAssigned = "assigned"
	GeneratorIdentity = "identity"
	GeneratorSequence = "sequence"
	GeneratorUUID     = "uuid"
)

// Document is the root of a rendered mapping set.
type Document struct {
	// Version of the document schema.
	Version string `json:"version" toml:"version" yaml:"version" required:"true"`

	// Classes lists every class mapping in ingestion order.
	Classes []ClassMapping `json:"classes" toml:"classes" yaml:"classes"`
}

// NewDocument creates an empty document with the current version.
func NewDocument() *Document {
	return &Document{
		Version: DocumentVersion,
		Classes: []ClassMapping{},
	}
}

// Class returns the class mapping for the given entity, or nil.
func (d *Document) Class(entity string) *ClassMapping {
	for i := range d.Classes {
		if d.Classes[i].Entity == entity {
			return &d.Classes[i]
		}
	}

	return nil
}

// ClassMapping describes how one entity maps onto a table.
type ClassMapping struct {
	// Entity is the qualified entity name (package path + type name).
	Entity string `json:"entity" toml:"entity" yaml:"entity" required:"true"`
	// Name is the unqualified entity type name.
	Name string `json:"name" toml:"name" yaml:"name"`
	// Table is the storage table name.
	Table string `json:"table,omitempty" toml:"table,omitempty" yaml:"table,omitempty"`
	// Definition is the qualified name of the definition type that produced this mapping.
	Definition string `json:"definition,omitempty" toml:"definition,omitempty" yaml:"definition,omitempty"`

	ID          *IDMapping          `json:"id,omitempty"           toml:"id,omitempty"           yaml:"id,omitempty"`
	Properties  []PropertyMapping   `json:"properties,omitempty"   toml:"properties,omitempty"   yaml:"properties,omitempty"`
	References  []ReferenceMapping  `json:"references,omitempty"   toml:"references,omitempty"   yaml:"references,omitempty"`
	Collections []CollectionMapping `json:"collections,omitempty"  toml:"collections,omitempty"  yaml:"collections,omitempty"`
	ManyToMany  []ManyToManyMapping `json:"many_to_many,omitempty" toml:"many_to_many,omitempty" yaml:"many_to_many,omitempty"`
}

// Clone returns a deep copy of the class mapping.
func (c *ClassMapping) Clone() ClassMapping {
	out := *c
	if c.ID != nil {
		id := *c.ID
		out.ID = &id
	}

	out.Properties = slices.Clone(c.Properties)
	out.References = slices.Clone(c.References)
	out.Collections = slices.Clone(c.Collections)
	out.ManyToMany = slices.Clone(c.ManyToMany)

	return out
}

// Members returns the names of every mapped member, identifier first.
func (c *ClassMapping) Members() []string {
	var names []string
	if c.ID != nil {
		names = append(names, c.ID.Name)
	}

	for _, p := range c.Properties {
		names = append(names, p.Name)
	}

	for _, r := range c.References {
		names = append(names, r.Name)
	}

	for _, h := range c.Collections {
		names = append(names, h.Name)
	}

	for _, m := range c.ManyToMany {
		names = append(names, m.Name)
	}

	return names
}

// IDMapping describes the identifier of a class.
type IDMapping struct {
	Name      string `json:"name"                toml:"name"                yaml:"name"`
	Column    string `json:"column,omitempty"    toml:"column,omitempty"    yaml:"column,omitempty"`
	Type      string `json:"type,omitempty"      toml:"type,omitempty"      yaml:"type,omitempty"`
	Generator string `json:"generator,omitempty" toml:"generator,omitempty" yaml:"generator,omitempty"`
}

// PropertyMapping describes a scalar member stored in a column.
type PropertyMapping struct {
	Name    string `json:"name"               toml:"name"               yaml:"name"`
	Column  string `json:"column,omitempty"   toml:"column,omitempty"   yaml:"column,omitempty"`
	Type    string `json:"type,omitempty"     toml:"type,omitempty"     yaml:"type,omitempty"`
	Length  int    `json:"length,omitempty"   toml:"length,omitempty"   yaml:"length,omitempty"`
	NotNull bool   `json:"not_null,omitempty" toml:"not_null,omitempty" yaml:"not_null,omitempty"`
	Unique  bool   `json:"unique,omitempty"   toml:"unique,omitempty"   yaml:"unique,omitempty"`
}

// ReferenceMapping describes a many-to-one association.
type ReferenceMapping struct {
	Name    string `json:"name"               toml:"name"               yaml:"name"`
	Entity  string `json:"entity"             toml:"entity"             yaml:"entity"`
	Column  string `json:"column,omitempty"   toml:"column,omitempty"   yaml:"column,omitempty"`
	Cascade string `json:"cascade,omitempty"  toml:"cascade,omitempty"  yaml:"cascade,omitempty"`
	NotNull bool   `json:"not_null,omitempty" toml:"not_null,omitempty" yaml:"not_null,omitempty"`
}

// CollectionMapping describes a one-to-many association.
type CollectionMapping struct {
	Name      string `json:"name"                 toml:"name"                 yaml:"name"`
	Entity    string `json:"entity"               toml:"entity"               yaml:"entity"`
	KeyColumn string `json:"key_column,omitempty" toml:"key_column,omitempty" yaml:"key_column,omitempty"`
	Cascade   string `json:"cascade,omitempty"    toml:"cascade,omitempty"    yaml:"cascade,omitempty"`
	Inverse   bool   `json:"inverse,omitempty"    toml:"inverse,omitempty"    yaml:"inverse,omitempty"`
}

// ManyToManyMapping describes a many-to-many association through a join table.
type ManyToManyMapping struct {
	Name      string `json:"name"                 toml:"name"                 yaml:"name"`
	Entity    string `json:"entity"               toml:"entity"               yaml:"entity"`
	Table     string `json:"table,omitempty"      toml:"table,omitempty"      yaml:"table,omitempty"`
	ParentKey string `json:"parent_key,omitempty" toml:"parent_key,omitempty" yaml:"parent_key,omitempty"`
	ChildKey  string `json:"child_key,omitempty"  toml:"child_key,omitempty"  yaml:"child_key,omitempty"`
	Cascade   string `json:"cascade,omitempty"    toml:"cascade,omitempty"    yaml:"cascade,omitempty"`
	Inverse   bool   `json:"inverse,omitempty"    toml:"inverse,omitempty"    yaml:"inverse,omitempty"`
	// OtherSide is "<entity>.<member>" of the paired relation, empty when unidirectional.
	OtherSide string `json:"other_side,omitempty" toml:"other_side,omitempty" yaml:"other_side,omitempty"`
}

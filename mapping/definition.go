package mapping

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Definition is implemented by mapping-definition types.
type Definition interface {
	Define(m *ClassMap)
}

// ErrNoEntity is returned when a definition never declared its entity.
var ErrNoEntity = errors.New("definition did not declare an entity, call For")

// EntityName returns the qualified name of a named type ("pkg/path.Name").
// Pointer types are dereferenced first.
func EntityName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.PkgPath() == "" {
		return t.Name()
	}

	return t.PkgPath() + "." + t.Name()
}

// ClassMap collects the mapping of one entity.
//
// Member errors are recorded and reported together by Mapping, so chained
// calls never need to be checked individually.
type ClassMap struct {
	entity reflect.Type
	class  ClassMapping
	errs   []error
}

// NewClassMap creates an empty class map.
func NewClassMap() *ClassMap {
	return &ClassMap{}
}

// For declares the entity being mapped. Pass a value or pointer of the entity type.
func (m *ClassMap) For(entity any) *ClassMap {
	t := reflect.TypeOf(entity)
	if t == nil {
		m.errs = append(m.errs, errors.New("entity must not be nil"))
		return m
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct || t.Name() == "" {
		m.errs = append(m.errs, fmt.Errorf("entity %s is not a named struct", t))
		return m
	}

	m.entity = t
	m.class.Entity = EntityName(t)
	m.class.Name = t.Name()

	return m
}

// Entity returns the declared entity type, or nil.
func (m *ClassMap) Entity() reflect.Type {
	return m.entity
}

// Table sets the storage table.
func (m *ClassMap) Table(name string) *ClassMap {
	m.class.Table = name
	return m
}

// ID maps the identifier member.
func (m *ClassMap) ID(member string) *IDPart {
	if m.class.ID != nil {
		m.errs = append(m.errs, fmt.Errorf("identifier already mapped as %s", m.class.ID.Name))
	}

	m.class.ID = &IDMapping{Name: member}

	return &IDPart{id: m.class.ID}
}

// Map maps a scalar member.
func (m *ClassMap) Map(member string) *PropertyPart {
	m.class.Properties = append(m.class.Properties, PropertyMapping{Name: member})
	return &PropertyPart{m: m, idx: len(m.class.Properties) - 1}
}

// References maps a many-to-one association. The target entity is taken from
// the member's type.
func (m *ClassMap) References(member string) *ReferencePart {
	m.class.References = append(m.class.References, ReferenceMapping{Name: member})
	return &ReferencePart{m: m, idx: len(m.class.References) - 1}
}

// HasMany maps a one-to-many association. The member must be a slice.
func (m *ClassMap) HasMany(member string) *CollectionPart {
	m.class.Collections = append(m.class.Collections, CollectionMapping{Name: member})
	return &CollectionPart{m: m, idx: len(m.class.Collections) - 1}
}

// HasManyToMany maps a many-to-many association. The member must be a slice.
func (m *ClassMap) HasManyToMany(member string) *ManyToManyPart {
	m.class.ManyToMany = append(m.class.ManyToMany, ManyToManyMapping{Name: member})
	return &ManyToManyPart{m: m, idx: len(m.class.ManyToMany) - 1}
}

// Mapping validates the collected members against the entity and returns a
// copy of the class mapping.
func (m *ClassMap) Mapping() (ClassMapping, error) {
	errs := slices.Clone(m.errs)

	if m.entity == nil {
		errs = append(errs, ErrNoEntity)
		return ClassMapping{}, errors.Join(errs...)
	}

	class := m.class.Clone()
	seen := make(map[string]bool)

	for _, name := range class.Members() {
		if seen[name] {
			errs = append(errs, fmt.Errorf("member %s mapped more than once", name))
		}

		seen[name] = true
	}

	if class.ID != nil {
		f, err := m.field(class.ID.Name)
		if err != nil {
			errs = append(errs, err)
		} else {
			class.ID.Type = f.Type.String()
		}
	}

	for i := range class.Properties {
		p := &class.Properties[i]

		f, err := m.field(p.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		p.Type = f.Type.String()
	}

	for i := range class.References {
		r := &class.References[i]

		f, err := m.field(r.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		target, ok := structOf(f.Type)
		if !ok {
			errs = append(errs, fmt.Errorf("reference %s: %s is not a struct", r.Name, f.Type))
			continue
		}

		r.Entity = EntityName(target)
	}

	for i := range class.Collections {
		h := &class.Collections[i]

		child, err := m.elementEntity(h.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		h.Entity = child
	}

	for i := range class.ManyToMany {
		mm := &class.ManyToMany[i]

		child, err := m.elementEntity(mm.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		mm.Entity = child
	}

	if len(errs) > 0 {
		return ClassMapping{}, fmt.Errorf("mapping %s: %w", class.Entity, errors.Join(errs...))
	}

	return class, nil
}

func (m *ClassMap) field(name string) (reflect.StructField, error) {
	f, ok := m.entity.FieldByName(name)
	if !ok {
		return f, fmt.Errorf("member %s not found on %s", name, m.class.Entity)
	}

	if !f.IsExported() {
		return f, fmt.Errorf("member %s on %s is not exported", name, m.class.Entity)
	}

	return f, nil
}

func (m *ClassMap) elementEntity(member string) (string, error) {
	f, err := m.field(member)
	if err != nil {
		return "", err
	}

	if f.Type.Kind() != reflect.Slice && f.Type.Kind() != reflect.Array {
		return "", fmt.Errorf("collection %s: %s is not a slice", member, f.Type)
	}

	elem, ok := structOf(f.Type.Elem())
	if !ok {
		return "", fmt.Errorf("collection %s: element %s is not a struct", member, f.Type.Elem())
	}

	return EntityName(elem), nil
}

// structOf unwraps pointers and reports whether t is a named struct.
func structOf(t reflect.Type) (reflect.Type, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t, t.Kind() == reflect.Struct && t.Name() != ""
}

// IDPart configures an identifier mapping.
type IDPart struct {
	id *IDMapping
}

// Column sets the identifier column.
func (p *IDPart) Column(name string) *IDPart {
	p.id.Column = name
	return p
}

// GeneratedBy sets the identifier generator strategy.
func (p *IDPart) GeneratedBy(generator string) *IDPart {
	p.id.Generator = generator
	return p
}

// PropertyPart configures a property mapping.
type PropertyPart struct {
	m   *ClassMap
	idx int
}

func (p *PropertyPart) get() *PropertyMapping { return &p.m.class.Properties[p.idx] }

// Column sets the property column.
func (p *PropertyPart) Column(name string) *PropertyPart {
	p.get().Column = name
	return p
}

// Length sets the column length.
func (p *PropertyPart) Length(n int) *PropertyPart {
	p.get().Length = n
	return p
}

// NotNull marks the column as required.
func (p *PropertyPart) NotNull() *PropertyPart {
	p.get().NotNull = true
	return p
}

// Unique marks the column as unique.
func (p *PropertyPart) Unique() *PropertyPart {
	p.get().Unique = true
	return p
}

// ReferencePart configures a many-to-one mapping.
type ReferencePart struct {
	m   *ClassMap
	idx int
}

func (p *ReferencePart) get() *ReferenceMapping { return &p.m.class.References[p.idx] }

// Column sets the foreign key column.
func (p *ReferencePart) Column(name string) *ReferencePart {
	p.get().Column = name
	return p
}

// Cascade sets the cascade style.
func (p *ReferencePart) Cascade(style string) *ReferencePart {
	p.get().Cascade = style
	return p
}

// NotNull marks the foreign key as required.
func (p *ReferencePart) NotNull() *ReferencePart {
	p.get().NotNull = true
	return p
}

// CollectionPart configures a one-to-many mapping.
type CollectionPart struct {
	m   *ClassMap
	idx int
}

func (p *CollectionPart) get() *CollectionMapping { return &p.m.class.Collections[p.idx] }

// KeyColumn sets the foreign key column on the child table.
func (p *CollectionPart) KeyColumn(name string) *CollectionPart {
	p.get().KeyColumn = name
	return p
}

// Cascade sets the cascade style.
func (p *CollectionPart) Cascade(style string) *CollectionPart {
	p.get().Cascade = style
	return p
}

// Inverse marks the other side as responsible for the association.
func (p *CollectionPart) Inverse() *CollectionPart {
	p.get().Inverse = true
	return p
}

// ManyToManyPart configures a many-to-many mapping.
type ManyToManyPart struct {
	m   *ClassMap
	idx int
}

func (p *ManyToManyPart) get() *ManyToManyMapping { return &p.m.class.ManyToMany[p.idx] }

// Table sets the join table.
func (p *ManyToManyPart) Table(name string) *ManyToManyPart {
	p.get().Table = name
	return p
}

// ParentKeyColumn sets the join table column referencing this entity.
func (p *ManyToManyPart) ParentKeyColumn(name string) *ManyToManyPart {
	p.get().ParentKey = name
	return p
}

// ChildKeyColumn sets the join table column referencing the child entity.
func (p *ManyToManyPart) ChildKeyColumn(name string) *ManyToManyPart {
	p.get().ChildKey = name
	return p
}

// Cascade sets the cascade style.
func (p *ManyToManyPart) Cascade(style string) *ManyToManyPart {
	p.get().Cascade = style
	return p
}

// Inverse marks this side as the non-authoritative side of the pair.
func (p *ManyToManyPart) Inverse() *ManyToManyPart {
	p.get().Inverse = true
	return p
}

package model

import (
	"fmt"
	"os"
	"reflect"

	"fluentmap/conventions"
	"fluentmap/internal/diagnostic"
	"fluentmap/internal/naming"
	"fluentmap/mapping"
)

const filePerm = 0o644

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}

// BuildMappings produces the finalized document from the ingested classes.
// The model itself is not modified; conventions run again on every build.
func (m *PersistenceModel) BuildMappings() (*mapping.Document, error) {
	doc := mapping.NewDocument()

	var diags diagnostic.Diagnostics

	for _, class := range m.classes {
		if prev := doc.Class(class.Entity); prev != nil {
			if reflect.DeepEqual(*prev, class) {
				diags.AddInfo(diagnostic.CodeDuplicateEntity, "ingested more than once, keeping the first", class.Entity, "")
				continue
			}

			diags.AddError(diagnostic.CodeDuplicateEntity,
				fmt.Sprintf("mapped by both %s and %s", prev.Definition, class.Definition), class.Entity, "")

			continue
		}

		doc.Classes = append(doc.Classes, class.Clone())
	}

	m.conventions.Apply(doc)

	strategy := m.Pairing
	if strategy == nil {
		strategy = DefaultPairing
	}

	pairManyToMany(doc, strategy, &diags)

	defaults := conventions.Defaults()
	for i := range doc.Classes {
		defaults.Apply(&doc.Classes[i])
	}

	validate(doc, &diags)

	diags.Log(m.logger)

	if err := diags.Error(); err != nil {
		return nil, NewError(KindIngest, "build", "", err)
	}

	return doc, nil
}

type relationSide struct {
	class *mapping.ClassMapping
	rel   *mapping.ManyToManyMapping
}

func (s relationSide) endpoint() Endpoint {
	return Endpoint{
		Entity:  s.class.Entity,
		Member:  s.rel.Name,
		Child:   s.rel.Entity,
		Inverse: s.rel.Inverse,
	}
}

// pairManyToMany links the two sides of every bidirectional many-to-many
// association. When a side has several candidates on the other entity, the
// candidate whose member name is most like the side's entity name wins.
func pairManyToMany(doc *mapping.Document, strategy PairingStrategy, diags *diagnostic.Diagnostics) {
	var sides []relationSide

	for i := range doc.Classes {
		class := &doc.Classes[i]
		for j := range class.ManyToMany {
			sides = append(sides, relationSide{class: class, rel: &class.ManyToMany[j]})
		}
	}

	paired := make(map[*mapping.ManyToManyMapping]bool)

	for _, a := range sides {
		if paired[a.rel] {
			continue
		}

		var candidates []relationSide

		for _, b := range sides {
			if b.rel == a.rel || paired[b.rel] {
				continue
			}

			if b.class.Entity == a.rel.Entity && b.rel.Entity == a.class.Entity {
				candidates = append(candidates, b)
			}
		}

		if len(candidates) == 0 {
			continue
		}

		b := candidates[0]
		if len(candidates) > 1 {
			best := -1.0
			for _, c := range candidates {
				if score := naming.Likeness(c.rel.Name, a.class.Name); score > best {
					best, b = score, c
				}
			}

			diags.AddInfo(diagnostic.CodeAmbiguousPairing,
				fmt.Sprintf("%d candidates, paired with %s", len(candidates), b.endpoint()), a.class.Entity, a.rel.Name)
		}

		paired[a.rel] = true
		paired[b.rel] = true

		ea, eb := a.endpoint(), b.endpoint()
		if ea.Inverse && eb.Inverse {
			diags.AddWarning(diagnostic.CodeBothSidesInverse,
				"both sides are marked inverse, the pairing strategy decides the owner", a.class.Entity, a.rel.Name)
		}

		p := strategy(ea, eb)
		if !p.matches(ea, eb) {
			diags.AddError(diagnostic.CodeInvalidPairing,
				fmt.Sprintf("pairing strategy returned %s/%s for %s and %s", p.Owner, p.Inverse, ea, eb),
				a.class.Entity, a.rel.Name)

			continue
		}

		owner, inverse := a, b
		if p.Owner.String() == eb.String() {
			owner, inverse = b, a
		}

		link(owner, inverse)
	}
}

// link makes owner authoritative and shares the join table and keys.
func link(owner, inverse relationSide) {
	o, i := owner.rel, inverse.rel

	o.Inverse = false
	i.Inverse = true

	table := o.Table
	if table == "" {
		table = i.Table
	}

	if table == "" {
		table = owner.class.Name + "To" + inverse.class.Name
	}

	o.Table, i.Table = table, table

	if o.ParentKey == "" {
		o.ParentKey = i.ChildKey
	}

	if o.ChildKey == "" {
		o.ChildKey = i.ParentKey
	}

	if owner.class.Entity == inverse.class.Entity {
		if o.ParentKey == "" {
			o.ParentKey = conventions.DefaultKey(owner.class.Name)
		}

		if o.ChildKey == "" {
			o.ChildKey = conventions.DefaultKey(o.Name)
		}
	}

	i.ParentKey, i.ChildKey = o.ChildKey, o.ParentKey

	o.OtherSide = inverse.class.Entity + "." + i.Name
	i.OtherSide = owner.class.Entity + "." + o.Name
}

// validate reports problems that only show once every class is known.
func validate(doc *mapping.Document, diags *diagnostic.Diagnostics) {
	tables := make(map[string]string)

	for _, class := range doc.Classes {
		if class.ID == nil {
			diags.AddWarning(diagnostic.CodeMissingID, "no identifier mapped", class.Entity, "")
		}

		if other, ok := tables[class.Table]; ok {
			diags.AddWarning(diagnostic.CodeDuplicateTable,
				fmt.Sprintf("table %s is also used by %s", class.Table, other), class.Entity, "")
		} else {
			tables[class.Table] = class.Entity
		}

		for _, r := range class.References {
			if doc.Class(r.Entity) == nil {
				diags.AddWarning(diagnostic.CodeDanglingReference,
					fmt.Sprintf("references unmapped entity %s", r.Entity), class.Entity, r.Name)
			}
		}

		for _, h := range class.Collections {
			if doc.Class(h.Entity) == nil {
				diags.AddWarning(diagnostic.CodeDanglingReference,
					fmt.Sprintf("collection of unmapped entity %s", h.Entity), class.Entity, h.Name)
			}
		}

		for _, mm := range class.ManyToMany {
			if doc.Class(mm.Entity) == nil {
				diags.AddWarning(diagnostic.CodeDanglingReference,
					fmt.Sprintf("many-to-many with unmapped entity %s", mm.Entity), class.Entity, mm.Name)
			}

			if mm.ParentKey != "" && mm.ParentKey == mm.ChildKey {
				diags.AddError(diagnostic.CodeJoinKeyClash,
					fmt.Sprintf("parent and child keys of %s are both %s", mm.Table, mm.ParentKey), class.Entity, mm.Name)
			}
		}
	}
}

package conventions

import (
	"slices"

	"fluentmap/mapping"
)

// Store is the ordered set of conventions owned by a persistence model.
type Store struct {
	conventions []Convention
}

// NewStore creates a store seeded with the given conventions.
func NewStore(c ...Convention) *Store {
	s := &Store{}
	s.Add(c...)

	return s
}

// Add appends conventions. nil entries are skipped.
func (s *Store) Add(c ...Convention) {
	for _, conv := range c {
		if conv != nil {
			s.conventions = append(s.conventions, conv)
		}
	}
}

// Len returns the number of conventions.
func (s *Store) Len() int {
	return len(s.conventions)
}

// All returns a copy of the conventions in application order.
func (s *Store) All() []Convention {
	return slices.Clone(s.conventions)
}

// Apply runs every convention over every class of the document.
func (s *Store) Apply(doc *mapping.Document) {
	for _, conv := range s.conventions {
		for i := range doc.Classes {
			conv.Apply(&doc.Classes[i])
		}
	}
}

// Setup is a view over a Store that hands back its owner after each call,
// so convention setup can sit in the middle of a chained configuration.
type Setup[T any] struct {
	owner T
	store *Store
}

// NewSetup binds a store to its owner.
func NewSetup[T any](owner T, store *Store) *Setup[T] {
	return &Setup[T]{owner: owner, store: store}
}

// Add registers conventions and returns the owner.
func (s *Setup[T]) Add(c ...Convention) T {
	s.store.Add(c...)
	return s.owner
}

// Setup gives fn direct access to the store and returns the owner.
func (s *Setup[T]) Setup(fn func(store *Store)) T {
	fn(s.store)
	return s.owner
}

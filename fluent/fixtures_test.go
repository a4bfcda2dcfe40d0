package fluent_test

import (
	"errors"
	"reflect"

	"fluentmap/mapping"
	"fluentmap/model"
)

type Author struct {
	ID    int64
	Name  string
	Books []*Book
}

type Book struct {
	ID      int64
	Title   string
	Authors []*Author
}

type Tag struct {
	ID    int64
	Label string
}

type AuthorMap struct{}

func (AuthorMap) Define(m *mapping.ClassMap) {
	m.For(Author{})
	m.ID("ID")
	m.Map("Name")
	m.HasManyToMany("Books")
}

type BookMap struct{}

func (BookMap) Define(m *mapping.ClassMap) {
	m.For(Book{})
	m.ID("ID")
	m.Map("Title")
	m.HasManyToMany("Authors")
}

type TagMap struct{}

func (TagMap) Define(m *mapping.ClassMap) {
	m.For(Tag{})
	m.ID("ID")
	m.Map("Label")
}

type badMap struct{}

func (badMap) Define(m *mapping.ClassMap) {
	m.For(Tag{}).Map("Nope")
}

var (
	authorEntity = mapping.EntityName(reflect.TypeOf(Author{}))
	bookEntity   = mapping.EntityName(reflect.TypeOf(Book{}))
	tagEntity    = mapping.EntityName(reflect.TypeOf(Tag{}))
)

// journal records collaborator calls in order.
type journal struct {
	events []string
}

func (j *journal) add(e string) {
	j.events = append(j.events, e)
}

type stubScanner struct {
	j       *journal
	modules map[string][]reflect.Type
	failOn  string
}

func (s *stubScanner) Scan(m model.Module) ([]reflect.Type, error) {
	s.j.add("scan " + m.Path)

	if m.Path == s.failOn {
		return nil, errors.New("scanner exploded")
	}

	return s.modules[m.Path], nil
}

type journalWriter struct {
	j    *journal
	data []byte
}

func (w *journalWriter) Write(p []byte) (int, error) {
	w.j.add("export writer")
	w.data = append(w.data, p...)

	return len(p), nil
}

type journalTarget struct {
	j       *journal
	classes []mapping.ClassMapping
	reject  bool
}

func (t *journalTarget) AddMapping(class mapping.ClassMapping) error {
	t.j.add("configure " + class.Name)

	if t.reject {
		return errors.New("schema locked")
	}

	t.classes = append(t.classes, class)

	return nil
}

// journalFactory records every construction and builds with reflect.
func journalFactory(j *journal, label string) model.Factory {
	return func(t reflect.Type) (any, error) {
		j.add(label + " " + t.Name())
		return reflect.New(t).Interface(), nil
	}
}

func newStubScanner(j *journal) *stubScanner {
	return &stubScanner{
		j: j,
		modules: map[string][]reflect.Type{
			"mod/a": {reflect.TypeOf(AuthorMap{})},
			"mod/b": {reflect.TypeOf(BookMap{})},
			"mod/c": {},
		},
	}
}

package model

import (
	"errors"
	"reflect"

	"fluentmap/mapping"
)

type Publisher struct {
	ID   int64
	Name string
}

type Author struct {
	ID    int64
	Name  string
	Books []*Book
}

type Book struct {
	ID        int64
	Title     string
	Publisher *Publisher
	Authors   []*Author
}

type Writer struct {
	ID     int64
	Novels []*Novel
}

type Novel struct {
	ID      int64
	Writers []*Writer
	Editors []*Writer
}

type Tag struct {
	Label string
}

type Person struct {
	ID        int64
	Friends   []*Person
	FriendsOf []*Person
}

type Member struct {
	ID      int64
	Buddies []*Member
}

type PublisherMap struct{}

func (PublisherMap) Define(m *mapping.ClassMap) {
	m.For(Publisher{})
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.Map("Name").NotNull()
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
	m.References("Publisher")
	m.HasManyToMany("Authors").Inverse()
}

// AltBookMap maps Book differently from BookMap.
type AltBookMap struct{}

func (AltBookMap) Define(m *mapping.ClassMap) {
	m.For(Book{}).Table("books")
	m.ID("ID")
}

type WriterMap struct{}

func (WriterMap) Define(m *mapping.ClassMap) {
	m.For(Writer{})
	m.ID("ID")
	m.HasManyToMany("Novels")
}

type NovelMap struct{}

func (NovelMap) Define(m *mapping.ClassMap) {
	m.For(Novel{})
	m.ID("ID")
	m.HasManyToMany("Writers")
	m.HasManyToMany("Editors")
}

type TagMap struct{}

func (TagMap) Define(m *mapping.ClassMap) {
	m.For(Tag{})
	m.Map("Label")
}

type PersonMap struct{}

func (PersonMap) Define(m *mapping.ClassMap) {
	m.For(Person{})
	m.ID("ID")
	m.HasManyToMany("Friends")
	m.HasManyToMany("FriendsOf").Inverse()
}

type clashingKeysMap struct{}

func (clashingKeysMap) Define(m *mapping.ClassMap) {
	m.For(Member{})
	m.ID("ID")
	m.HasManyToMany("Buddies").ParentKeyColumn("member_id").ChildKeyColumn("member_id")
}

type brokenMap struct{}

func (brokenMap) Define(m *mapping.ClassMap) {
	m.For(Book{}).Map("Missing")
}

type tableMap struct {
	table string
}

func (d *tableMap) Define(m *mapping.ClassMap) {
	m.For(Publisher{}).Table(d.table)
	m.ID("ID")
}

type notADefinition struct{}

var (
	publisherEntity = mapping.EntityName(reflect.TypeOf(Publisher{}))
	authorEntity    = mapping.EntityName(reflect.TypeOf(Author{}))
	bookEntity      = mapping.EntityName(reflect.TypeOf(Book{}))
	personEntity    = mapping.EntityName(reflect.TypeOf(Person{}))
)

func typesOf(defs ...any) []reflect.Type {
	out := make([]reflect.Type, len(defs))
	for i, d := range defs {
		out[i] = reflect.TypeOf(d)
	}

	return out
}

type recordingTarget struct {
	classes []mapping.ClassMapping
	rejects string
}

func (r *recordingTarget) AddMapping(class mapping.ClassMapping) error {
	if class.Entity == r.rejects {
		return errors.New("rejected")
	}

	r.classes = append(r.classes, class)

	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publisher struct{}

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
	ISBN      string
	Publisher *Publisher
	Authors   []*Author
	Reviews   []Review
	secret    string //nolint:unused
}

type Review struct {
	ID   int64
	Text string
}

func TestEntityName(t *testing.T) {
	assert.Equal(t, "fluentmap/mapping.Book", EntityName(reflect.TypeOf(Book{})))
	assert.Equal(t, "fluentmap/mapping.Book", EntityName(reflect.TypeOf(&Book{})))
	assert.Equal(t, "int", EntityName(reflect.TypeOf(0)))
}

func TestClassMap_Mapping(t *testing.T) {
	m := NewClassMap()
	m.For(&Book{}).Table("books")
	m.ID("ID").Column("book_id").GeneratedBy(GeneratorIdentity)
	m.Map("Title").Length(200).NotNull()
	m.Map("ISBN").Unique()
	m.References("Publisher").Column("publisher_id").NotNull()
	m.HasMany("Reviews").KeyColumn("book_id").Cascade("all")
	m.HasManyToMany("Authors").Table("book_authors").ParentKeyColumn("book_id").ChildKeyColumn("author_id")

	class, err := m.Mapping()
	require.NoError(t, err)

	assert.Equal(t, "fluentmap/mapping.Book", class.Entity)
	assert.Equal(t, "Book", class.Name)
	assert.Equal(t, "books", class.Table)

	require.NotNil(t, class.ID)
	assert.Equal(t, IDMapping{Name: "ID", Column: "book_id", Type: "int64", Generator: GeneratorIdentity}, *class.ID)

	require.Len(t, class.Properties, 2)
	assert.Equal(t, PropertyMapping{Name: "Title", Type: "string", Length: 200, NotNull: true}, class.Properties[0])
	assert.True(t, class.Properties[1].Unique)

	require.Len(t, class.References, 1)
	assert.Equal(t, "fluentmap/mapping.Publisher", class.References[0].Entity)
	assert.True(t, class.References[0].NotNull)

	require.Len(t, class.Collections, 1)
	assert.Equal(t, "fluentmap/mapping.Review", class.Collections[0].Entity)
	assert.Equal(t, "all", class.Collections[0].Cascade)

	require.Len(t, class.ManyToMany, 1)
	assert.Equal(t, ManyToManyMapping{
		Name:      "Authors",
		Entity:    "fluentmap/mapping.Author",
		Table:     "book_authors",
		ParentKey: "book_id",
		ChildKey:  "author_id",
	}, class.ManyToMany[0])

	assert.Equal(t, []string{"ID", "Title", "ISBN", "Publisher", "Reviews", "Authors"}, class.Members())
}

func TestClassMap_MappingIsACopy(t *testing.T) {
	m := NewClassMap()
	m.For(Book{})
	m.Map("Title")

	first, err := m.Mapping()
	require.NoError(t, err)

	first.Properties[0].Column = "changed"

	second, err := m.Mapping()
	require.NoError(t, err)
	assert.Empty(t, second.Properties[0].Column)
}

func TestClassMap_Errors(t *testing.T) {
	tests := []struct {
		name    string
		define  func(m *ClassMap)
		wantErr string
	}{
		{
			name:    "no entity",
			define:  func(m *ClassMap) { m.Map("Title") },
			wantErr: "did not declare an entity",
		},
		{
			name:    "nil entity",
			define:  func(m *ClassMap) { m.For(nil) },
			wantErr: "entity must not be nil",
		},
		{
			name:    "not a struct",
			define:  func(m *ClassMap) { m.For(42) },
			wantErr: "not a named struct",
		},
		{
			name:    "missing member",
			define:  func(m *ClassMap) { m.For(Book{}).Map("Subtitle") },
			wantErr: "member Subtitle not found",
		},
		{
			name:    "unexported member",
			define:  func(m *ClassMap) { m.For(Book{}).Map("secret") },
			wantErr: "not exported",
		},
		{
			name:    "duplicate member",
			define:  func(m *ClassMap) { m.For(Book{}).Map("Title"); m.Map("Title") },
			wantErr: "mapped more than once",
		},
		{
			name: "duplicate id",
			define: func(m *ClassMap) {
				m.For(Book{})
				m.ID("ID")
				m.ID("ISBN")
			},
			wantErr: "identifier already mapped",
		},
		{
			name:    "reference to scalar",
			define:  func(m *ClassMap) { m.For(Book{}).References("Title") },
			wantErr: "is not a struct",
		},
		{
			name:    "collection on scalar",
			define:  func(m *ClassMap) { m.For(Book{}).HasMany("Title") },
			wantErr: "is not a slice",
		},
		{
			name:    "unnamed struct entity",
			define:  func(m *ClassMap) { m.For(struct{ ID int }{}) },
			wantErr: "not a named struct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewClassMap()
			tt.define(m)

			_, err := m.Mapping()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClassMap_UnexportedEntityType(t *testing.T) {
	m := NewClassMap()
	m.For(publisher{})

	class, err := m.Mapping()
	require.NoError(t, err)
	assert.Equal(t, "publisher", class.Name)
}

// Package mapping provides the mapping-definition DSL and the document model
// that a persistence model renders and applies.
//
// A mapping definition is any type implementing Definition. The persistence
// model instantiates it, hands it a fresh ClassMap and collects the resulting
// ClassMapping:
//
//	type BookMap struct{}
//
//	func (BookMap) Define(m *mapping.ClassMap) {
//		m.For(library.Book{})
//		m.Table("books")
//		m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
//		m.Map("Title").Length(200).NotNull()
//		m.References("Publisher")
//		m.HasManyToMany("Authors")
//	}
//
// # Document
//
// The rendered document has the following structure (YAML shown, JSON and
// TOML carry the same fields):
//
//	version: "1"
//	classes:
//	  - entity: example/library.Book
//	    name: Book
//	    table: books
//	    id:
//	      name: ID
//	      column: id
//	      generator: identity
//	    properties:
//	      - name: Title
//	        column: title
//	        type: string
//	        length: 200
//	        not_null: true
//	    many_to_many:
//	      - name: Authors
//	        entity: example/library.Author
//	        table: AuthorToBook
//	        parent_key: book_id
//	        child_key: author_id
//	        other_side: example/library.Author.Books
//
// Member names are validated against the entity struct when the class map is
// finalized, so a definition naming a missing field fails ingestion instead of
// producing a broken document.
package mapping

// Package persistence provides an in-memory persistence configuration that
// receives finalized class mappings and derives the table layout they imply.
package persistence

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"fluentmap/mapping"
)

var (
	ErrMissingEntity   = errors.New("mapping has no entity")
	ErrMissingTable    = errors.New("mapping has no table")
	ErrDuplicateEntity = errors.New("entity already configured")
)

// Configuration stores class mappings in the order they were added.
// It implements model.Target and is not safe for concurrent use.
type Configuration struct {
	mappings []mapping.ClassMapping
	index    map[string]int
	logger   *slog.Logger
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Configuration) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConfiguration creates an empty configuration.
func NewConfiguration(opts ...Option) *Configuration {
	c := &Configuration{
		index:  make(map[string]int),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddMapping accepts a finalized class mapping.
func (c *Configuration) AddMapping(class mapping.ClassMapping) error {
	if class.Entity == "" {
		return ErrMissingEntity
	}

	if class.Table == "" {
		return fmt.Errorf("%w: %s", ErrMissingTable, class.Entity)
	}

	if _, ok := c.index[class.Entity]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, class.Entity)
	}

	c.index[class.Entity] = len(c.mappings)
	c.mappings = append(c.mappings, class.Clone())

	c.logger.Debug("added mapping", "entity", class.Entity, "table", class.Table)

	return nil
}

// Len returns the number of configured mappings.
func (c *Configuration) Len() int {
	return len(c.mappings)
}

// Mappings returns copies of the configured mappings in the order added.
func (c *Configuration) Mappings() []mapping.ClassMapping {
	out := make([]mapping.ClassMapping, len(c.mappings))
	for i := range c.mappings {
		out[i] = c.mappings[i].Clone()
	}

	return out
}

// Mapping returns a copy of the mapping for entity.
func (c *Configuration) Mapping(entity string) (mapping.ClassMapping, bool) {
	i, ok := c.index[entity]
	if !ok {
		return mapping.ClassMapping{}, false
	}

	return c.mappings[i].Clone(), true
}

// Document returns the configuration as a mapping document.
func (c *Configuration) Document() *mapping.Document {
	doc := mapping.NewDocument()
	doc.Classes = c.Mappings()

	return doc
}

// Table is a table implied by the configured mappings.
type Table struct {
	Name    string
	Entity  string   // Owning entity, empty for join tables
	Columns []string // In mapping order, without duplicates
}

// Tables derives the table layout: one table per class in the order added,
// followed by the join tables of owning many-to-many sides. Collection key
// columns are placed on the child's table when the child is configured.
func (c *Configuration) Tables() []Table {
	tables := make([]Table, 0, len(c.mappings))
	byEntity := make(map[string]int, len(c.mappings))

	for _, class := range c.mappings {
		t := Table{Name: class.Table, Entity: class.Entity}

		if class.ID != nil {
			t.Columns = appendColumn(t.Columns, class.ID.Column)
		}

		for _, p := range class.Properties {
			t.Columns = appendColumn(t.Columns, p.Column)
		}

		for _, r := range class.References {
			t.Columns = appendColumn(t.Columns, r.Column)
		}

		byEntity[class.Entity] = len(tables)
		tables = append(tables, t)
	}

	for _, class := range c.mappings {
		for _, h := range class.Collections {
			if i, ok := byEntity[h.Entity]; ok {
				tables[i].Columns = appendColumn(tables[i].Columns, h.KeyColumn)
			}
		}
	}

	joins := make(map[string]bool)

	for _, class := range c.mappings {
		for _, mm := range class.ManyToMany {
			if mm.Inverse || joins[mm.Table] {
				continue
			}

			joins[mm.Table] = true
			tables = append(tables, Table{
				Name:    mm.Table,
				Columns: appendColumn(appendColumn(nil, mm.ParentKey), mm.ChildKey),
			})
		}
	}

	return tables
}

func appendColumn(cols []string, col string) []string {
	if col == "" || slices.Contains(cols, col) {
		return cols
	}

	return append(cols, col)
}

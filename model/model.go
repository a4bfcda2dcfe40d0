// Package model provides the persistence model: the single aggregate that
// ingests mapping definitions, applies conventions and relation pairing,
// renders the resulting document and applies it to a target configuration.
//
// Pipeline:
//  1. Ingest definitions, either by scanning a module or one type at a time
//  2. Build: clone ingested classes, run conventions, pair many-to-many
//     sides, fill defaults, validate
//  3. Render the built document (export) and/or hand each class to a Target
//
// Every build starts from the ingested classes. Callers that both export and
// configure build once and pass the document to the *Document methods.
package model

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"fluentmap/conventions"
	"fluentmap/mapping"
)

// PersistenceModel accumulates class mappings and renders or applies them.
// It is not safe for concurrent use.
type PersistenceModel struct {
	// Scanner discovers definition types inside modules.
	Scanner Scanner
	// Pairing overrides DefaultPairing when set.
	Pairing PairingStrategy
	// Factory overrides the default reflect-based construction when set.
	Factory Factory
	// Format selects the rendered markup.
	Format mapping.Format

	conventions *conventions.Store
	classes     []mapping.ClassMapping
	logger      *slog.Logger
}

// Option configures a PersistenceModel.
type Option func(*PersistenceModel)

// WithScanner sets the module scanner.
func WithScanner(s Scanner) Option {
	return func(m *PersistenceModel) { m.Scanner = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *PersistenceModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConventions seeds the convention store.
func WithConventions(c ...conventions.Convention) Option {
	return func(m *PersistenceModel) { m.conventions.Add(c...) }
}

// WithPairing sets the initial pairing strategy.
func WithPairing(p PairingStrategy) Option {
	return func(m *PersistenceModel) { m.Pairing = p }
}

// WithFormat sets the rendered markup.
func WithFormat(f mapping.Format) Option {
	return func(m *PersistenceModel) { m.Format = f }
}

// New creates an empty persistence model.
func New(opts ...Option) *PersistenceModel {
	m := &PersistenceModel{
		Format:      mapping.FormatYAML,
		conventions: conventions.NewStore(),
		logger:      slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Conventions returns the convention store owned by the model.
func (m *PersistenceModel) Conventions() *conventions.Store {
	return m.conventions
}

// Classes returns copies of the ingested class mappings in ingestion order,
// before conventions and pairing.
func (m *PersistenceModel) Classes() []mapping.ClassMapping {
	out := make([]mapping.ClassMapping, len(m.classes))
	for i := range m.classes {
		out[i] = m.classes[i].Clone()
	}

	return out
}

// AddMappingsFromModule scans the module and ingests every definition found.
// The first failure aborts the remaining definitions of the module.
func (m *PersistenceModel) AddMappingsFromModule(mod Module) error {
	if m.Scanner == nil {
		return NewError(KindScan, "scan", mod.Path, errors.New("no module scanner configured"))
	}

	types, err := m.Scanner.Scan(mod)
	if err != nil {
		var me *Error
		if errors.As(err, &me) && me.Kind == KindScan {
			return err
		}

		return NewError(KindScan, "scan", mod.Path, err)
	}

	m.logger.Debug("scanned module", "module", mod.Path, "definitions", len(types))

	for _, t := range types {
		if err := m.Add(t); err != nil {
			return err
		}
	}

	return nil
}

// Add instantiates a mapping-definition type and ingests its class mapping.
func (m *PersistenceModel) Add(t reflect.Type) error {
	if t == nil {
		return NewError(KindInvalidArgument, "add", "", errors.New("mapping type is nil"))
	}

	name := mapping.EntityName(t)

	inst, err := m.construct(t)
	if err != nil {
		return NewError(KindIngest, "construct", name, err)
	}

	def, ok := inst.(mapping.Definition)
	if !ok {
		return NewError(KindIngest, "add", name,
			fmt.Errorf("%T does not implement mapping.Definition", inst))
	}

	cm := mapping.NewClassMap()
	def.Define(cm)

	class, err := cm.Mapping()
	if err != nil {
		return NewError(KindIngest, "add", name, err)
	}

	class.Definition = name
	m.classes = append(m.classes, class)

	m.logger.Debug("ingested mapping", "definition", name, "entity", class.Entity)

	return nil
}

func (m *PersistenceModel) construct(t reflect.Type) (any, error) {
	if m.Factory == nil {
		return instantiate(t)
	}

	inst, err := m.Factory(t)
	if err != nil {
		return nil, err
	}

	if inst == nil {
		return nil, fmt.Errorf("factory returned nil for %s", t)
	}

	return inst, nil
}

// Render builds the document and renders it in the model's format.
func (m *PersistenceModel) Render() ([]byte, error) {
	doc, err := m.BuildMappings()
	if err != nil {
		return nil, err
	}

	return m.RenderDocument(doc)
}

// RenderDocument renders an already built document in the model's format.
func (m *PersistenceModel) RenderDocument(doc *mapping.Document) ([]byte, error) {
	data, err := mapping.Marshal(doc, m.Format)
	if err != nil {
		return nil, NewError(KindExportIO, "render", string(m.Format), err)
	}

	return data, nil
}

// WriteMappingsTo builds the document and writes it to path, creating or
// overwriting the file.
func (m *PersistenceModel) WriteMappingsTo(path string) error {
	if path == "" {
		return NewError(KindInvalidArgument, "export", "", errors.New("export path is empty"))
	}

	doc, err := m.BuildMappings()
	if err != nil {
		return err
	}

	return m.WriteDocumentTo(doc, path)
}

// WriteDocumentTo renders doc to path, creating or overwriting the file.
func (m *PersistenceModel) WriteDocumentTo(doc *mapping.Document, path string) error {
	if path == "" {
		return NewError(KindInvalidArgument, "export", "", errors.New("export path is empty"))
	}

	data, err := m.RenderDocument(doc)
	if err != nil {
		return err
	}

	if err := writeFile(path, data); err != nil {
		return NewError(KindExportIO, "export", path, err)
	}

	m.logger.Info("exported mappings", "path", path, "bytes", len(data))

	return nil
}

// WriteMappingsToWriter builds the document and writes it to w. The writer
// is not closed.
func (m *PersistenceModel) WriteMappingsToWriter(w io.Writer) error {
	if w == nil {
		return NewError(KindInvalidArgument, "export", "", errors.New("export writer is nil"))
	}

	doc, err := m.BuildMappings()
	if err != nil {
		return err
	}

	return m.WriteDocumentToWriter(doc, w)
}

// WriteDocumentToWriter renders doc to w. The writer is not closed.
func (m *PersistenceModel) WriteDocumentToWriter(doc *mapping.Document, w io.Writer) error {
	if w == nil {
		return NewError(KindInvalidArgument, "export", "", errors.New("export writer is nil"))
	}

	data, err := m.RenderDocument(doc)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return NewError(KindExportIO, "export", fmt.Sprintf("%T", w), err)
	}

	m.logger.Debug("exported mappings to writer", "bytes", len(data))

	return nil
}

// Configure builds the document and hands every class to the target in
// document order. The first rejection aborts; nothing is rolled back.
func (m *PersistenceModel) Configure(target Target) error {
	if target == nil {
		return NewError(KindInvalidArgument, "configure", "", errors.New("target is nil"))
	}

	doc, err := m.BuildMappings()
	if err != nil {
		return err
	}

	return m.ConfigureDocument(doc, target)
}

// ConfigureDocument hands every class of an already built document to the
// target in document order.
func (m *PersistenceModel) ConfigureDocument(doc *mapping.Document, target Target) error {
	if target == nil {
		return NewError(KindInvalidArgument, "configure", "", errors.New("target is nil"))
	}

	for _, class := range doc.Classes {
		if err := target.AddMapping(class.Clone()); err != nil {
			return NewError(KindApply, "configure", class.Entity, err)
		}
	}

	m.logger.Info("configured mappings", "classes", len(doc.Classes))

	return nil
}

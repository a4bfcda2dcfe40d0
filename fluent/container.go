package fluent

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"slices"

	"fluentmap/conventions"
	"fluentmap/mapping"
	"fluentmap/model"
)

// Container collects mapping sources and applies them to a target.
// It is not safe for concurrent use.
type Container struct {
	modules []model.Module
	types   []reflect.Type

	exportPath   string
	exportWriter io.Writer

	model  *model.PersistenceModel
	logger *slog.Logger

	used  bool
	state State
	err   error
}

// New creates an empty container with a fresh persistence model.
func New(opts ...Option) *Container {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Container{
		logger: o.logger,
		model: model.New(
			model.WithScanner(o.scanner),
			model.WithLogger(o.logger),
			model.WithConventions(o.conventions...),
			model.WithPairing(o.pairing),
		),
	}

	return c.ExportFormat(o.format)
}

// TypeOf returns the reflect.Type of a mapping-definition type, for Add.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// AddModule registers a module whose definitions are ingested on Apply.
func (c *Container) AddModule(m model.Module) *Container {
	if m.Path == "" {
		return c.fail(model.NewError(model.KindInvalidArgument, "add module", "", errors.New("module path is empty")))
	}

	c.modules = append(c.modules, m)
	c.registered("module", m.Path)

	return c
}

// AddFromModuleOf registers the module that defines the type of marker.
func (c *Container) AddFromModuleOf(marker any) *Container {
	m, err := model.ModuleOf(marker)
	if err != nil {
		return c.fail(err)
	}

	return c.AddModule(m)
}

// Add registers a single mapping-definition type.
func (c *Container) Add(t reflect.Type) *Container {
	if t == nil {
		return c.fail(model.NewError(model.KindInvalidArgument, "add type", "", errors.New("mapping type is nil")))
	}

	c.types = append(c.types, t)
	c.registered("type", mapping.EntityName(t))

	return c
}

// ExportTo writes the rendered mappings to path on Apply, creating or
// overwriting the file. An empty path disables the file export.
func (c *Container) ExportTo(path string) *Container {
	c.exportPath = path
	return c
}

// ExportToWriter writes the rendered mappings to w on Apply. The container
// never closes w.
func (c *Container) ExportToWriter(w io.Writer) *Container {
	if w == nil {
		return c.fail(model.NewError(model.KindInvalidArgument, "export", "", errors.New("export writer is nil")))
	}

	c.exportWriter = w

	return c
}

// ExportFormat selects the markup used by both exports.
func (c *Container) ExportFormat(f mapping.Format) *Container {
	format, err := mapping.ParseFormat(string(f))
	if err != nil {
		return c.fail(model.NewError(model.KindInvalidArgument, "export format", string(f), err))
	}

	c.model.Format = format

	return c
}

// Conventions gives access to the model's convention store; the returned
// setup chains back to the container.
func (c *Container) Conventions() *conventions.Setup[*Container] {
	return conventions.NewSetup(c, c.model.Conventions())
}

// OverridePairing replaces the many-to-many pairing strategy. Nil restores
// model.DefaultPairing.
func (c *Container) OverridePairing(s model.PairingStrategy) *Container {
	c.model.Pairing = s
	return c
}

// ConstructBy replaces the mechanism used to instantiate definition types.
// Nil restores the default.
func (c *Container) ConstructBy(f model.Factory) {
	c.model.Factory = f
}

// Apply ingests every registered module and type, builds the document once,
// writes the configured exports and configures target with that document,
// in that order. The first error aborts the remaining steps and nothing is
// rolled back.
func (c *Container) Apply(target model.Target) error {
	if c.err != nil {
		return c.err
	}

	if c.state == StateApplied {
		return ErrAlreadyApplied
	}

	if target == nil {
		return model.NewError(model.KindInvalidArgument, "apply", "", errors.New("target is nil"))
	}

	c.state = StateApplied

	c.logger.Debug("applying mappings", "modules", len(c.modules), "types", len(c.types))

	for _, m := range c.modules {
		if err := c.model.AddMappingsFromModule(m); err != nil {
			return err
		}
	}

	for _, t := range c.types {
		if err := c.model.Add(t); err != nil {
			return err
		}
	}

	doc, err := c.model.BuildMappings()
	if err != nil {
		return err
	}

	if c.exportPath != "" {
		if err := c.model.WriteDocumentTo(doc, c.exportPath); err != nil {
			return err
		}
	}

	if c.exportWriter != nil {
		if err := c.model.WriteDocumentToWriter(doc, c.exportWriter); err != nil {
			return err
		}
	}

	return c.model.ConfigureDocument(doc, target)
}

// Err returns the first registration error, if any.
func (c *Container) Err() error {
	return c.err
}

// WasUsed reports whether any module or type was ever registered.
func (c *Container) WasUsed() bool {
	return c.used
}

// State returns the phase of the container.
func (c *Container) State() State {
	return c.state
}

// Model returns the persistence model owned by the container.
func (c *Container) Model() *model.PersistenceModel {
	return c.model
}

// Modules returns the registered modules in registration order.
func (c *Container) Modules() []model.Module {
	return slices.Clone(c.modules)
}

// Types returns the registered mapping types in registration order.
func (c *Container) Types() []reflect.Type {
	return slices.Clone(c.types)
}

// ExportPath returns the file export path, empty when unset.
func (c *Container) ExportPath() string {
	return c.exportPath
}

func (c *Container) registered(kind, name string) {
	c.used = true

	switch c.state {
	case StateEmpty:
		c.state = StatePopulated
	case StateApplied:
		c.logger.Warn("registration after apply is not applied", "kind", kind, "name", name)
	}
}

func (c *Container) fail(err error) *Container {
	if c.err == nil {
		c.err = err
	}

	c.logger.Debug("registration failed", "error", err)

	return c
}

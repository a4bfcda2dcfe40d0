package cmd

import (
	"io"
	"log/slog"

	"fluentmap/mapping"
	"fluentmap/persistence"
)

// Export applies the selected definitions and writes the resulting mappings.
type Export struct {
	Sources `embed:""`

	Out    string `help:"File to write the mappings to (default: stdout)" short:"o" type:"path"`
	Format string `help:"Markup format: yaml, json or toml (default: from --out extension, else yaml)" short:"f"`
	Stdout bool   `help:"Also write the mappings to stdout when --out is set"`
}

// Run is called by Kong when the export command is executed.
func (e *Export) Run(logger *slog.Logger, out io.Writer) error {
	format, err := resolveFormat(e.Format, e.Out)
	if err != nil {
		return err
	}

	c, err := e.container(logger)
	if err != nil {
		return err
	}

	c.ExportFormat(format).ExportTo(e.Out)

	if e.Out == "" || e.Stdout {
		c.ExportToWriter(out)
	}

	cfg := persistence.NewConfiguration(persistence.WithLogger(logger))
	if err := c.Apply(cfg); err != nil {
		return err
	}

	logger.Info("exported mappings", "classes", cfg.Len(), "format", format, "out", e.Out)

	return nil
}

// resolveFormat parses an explicit format name, falling back to the
// extension of path.
func resolveFormat(name, path string) (mapping.Format, error) {
	if name == "" && path != "" {
		return mapping.FormatFromPath(path), nil
	}

	return mapping.ParseFormat(name)
}

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/akedrou/textdiff"

	"fluentmap/mapping"
	"fluentmap/persistence"
)

// ErrOutOfDate is returned by check when the file differs from a fresh export.
var ErrOutOfDate = errors.New("exported mappings are out of date")

// Check validates an exported mapping file and compares it with what the
// current definitions export.
type Check struct {
	Sources `embed:""`

	File   string `arg:"" help:"Exported mapping file" type:"existingfile"`
	Format string `help:"Markup format of the file (default: from its extension)" short:"f"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger, out io.Writer) error {
	format, err := resolveFormat(c.Format, c.File)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.File, err)
	}

	if err := mapping.Validate(data, format); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	container, err := c.container(logger)
	if err != nil {
		return err
	}

	var current bytes.Buffer

	container.ExportFormat(format).ExportToWriter(&current)

	if err := container.Apply(persistence.NewConfiguration(persistence.WithLogger(logger))); err != nil {
		return err
	}

	if bytes.Equal(data, current.Bytes()) {
		logger.Info("mappings are up to date", "file", c.File)
		return nil
	}

	_, _ = io.WriteString(out, textdiff.Unified(c.File, "current", string(data), current.String()))

	return fmt.Errorf("%s: %w", c.File, ErrOutOfDate)
}

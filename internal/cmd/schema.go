package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"fluentmap/mapping"
)

// Schema prints the JSON schema exported documents conform to.
type Schema struct {
	Out string `help:"File to write the schema to (default: stdout)" short:"o" type:"path"`
}

// Run is called by Kong when the schema command is executed.
func (s *Schema) Run(logger *slog.Logger, out io.Writer) error {
	data, err := mapping.ReflectSchema()
	if err != nil {
		return err
	}

	if s.Out == "" {
		_, err = out.Write(data)
		return err
	}

	if err := os.WriteFile(s.Out, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	logger.Info("wrote schema", "path", s.Out)

	return nil
}

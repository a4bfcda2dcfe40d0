package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/olekukonko/tablewriter"

	"fluentmap/internal/common"
	"fluentmap/persistence"
)

// Inspect prints the table layout implied by the selected definitions.
type Inspect struct {
	Sources `embed:""`

	Dump bool `help:"Dump the configured class mappings instead of the table layout"`
}

// Run is called by Kong when the inspect command is executed.
func (i *Inspect) Run(logger *slog.Logger, out io.Writer) error {
	c, err := i.container(logger)
	if err != nil {
		return err
	}

	cfg := persistence.NewConfiguration(persistence.WithLogger(logger))
	if err := c.Apply(cfg); err != nil {
		return err
	}

	if i.Dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		dumper.Fdump(out, cfg.Mappings())

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("Table", "Entity", "Columns")

	for _, t := range cfg.Tables() {
		if err := table.Append(t.Name, entityLabel(t.Entity), strings.Join(t.Columns, ", ")); err != nil {
			return err
		}
	}

	return table.Render()
}

// entityLabel shortens "path/to/pkg.Type" to "pkg.Type".
func entityLabel(entity string) string {
	if entity == "" {
		return "(join)"
	}

	return common.ShortEntity(entity)
}

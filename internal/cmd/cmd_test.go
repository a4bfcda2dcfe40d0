package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fluentmap/mapping"

	_ "fluentmap/store"
	_ "fluentmap/warehouse"
)

const (
	storeModule     = "fluentmap/store"
	warehouseModule = "fluentmap/warehouse"
)

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func exportDoc(t *testing.T, sources Sources) *mapping.Document {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mappings.json")

	var out bytes.Buffer
	require.NoError(t, (&Export{Sources: sources, Out: path}).Run(discard(), &out))
	assert.Empty(t, out.String())

	doc, err := mapping.LoadFile(path)
	require.NoError(t, err)

	return doc
}

func classByName(t *testing.T, doc *mapping.Document, name string) mapping.ClassMapping {
	t.Helper()

	for _, c := range doc.Classes {
		if c.Name == name {
			return c
		}
	}

	require.Failf(t, "class not found", "%s", name)

	return mapping.ClassMapping{}
}

func TestExport_File(t *testing.T) {
	doc := exportDoc(t, Sources{Module: []string{storeModule}})

	require.Len(t, doc.Classes, 5)
	assert.Equal(t, "products", classByName(t, doc, "Product").Table)
	assert.Equal(t, "order_items", classByName(t, doc, "OrderItem").Table)
}

func TestExport_Stdout(t *testing.T) {
	var out bytes.Buffer

	err := (&Export{Sources: Sources{Module: []string{storeModule}}, Format: "json"}).Run(discard(), &out)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &raw))
	assert.Len(t, raw["classes"], 5)
}

func TestExport_FileAndStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")

	var out bytes.Buffer
	require.NoError(t, (&Export{Sources: Sources{Module: []string{storeModule}}, Out: path, Stdout: true}).Run(discard(), &out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), out.String())
}

func TestExport_AllModules(t *testing.T) {
	doc := exportDoc(t, Sources{})

	assert.Len(t, doc.Classes, 11)
}

func TestExport_SnakeNaming(t *testing.T) {
	doc := exportDoc(t, Sources{Module: []string{warehouseModule}, Naming: NamingSnake, StringLength: 120})

	address := classByName(t, doc, "Address")
	assert.Equal(t, "address", address.Table)
	assert.Equal(t, "postal_code", address.Properties[2].Column)
	assert.Equal(t, 120, address.Properties[2].Length)
	assert.Equal(t, 2, address.Properties[3].Length)

	order := classByName(t, doc, "Order")
	assert.Equal(t, "customer_id", order.References[0].Column)
	assert.Equal(t, "order_item", classByName(t, doc, "OrderItem").Table)
}

func TestExport_SnakeNamingOnly(t *testing.T) {
	doc := exportDoc(t, Sources{Module: []string{warehouseModule}, Naming: NamingSnake, Only: []string{"*.Order*"}})

	assert.Equal(t, "order_item", classByName(t, doc, "OrderItem").Table)
	assert.Equal(t, "Address", classByName(t, doc, "Address").Table)
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  Export
		want string
	}{
		{"unknown module", Export{Sources: Sources{Module: []string{"fluentmap/nothing"}}}, "no mapping definitions registered"},
		{"bad format", Export{Sources: Sources{Module: []string{storeModule}}, Format: "xml"}, "unsupported format"},
		{"bad pattern", Export{Sources: Sources{Module: []string{storeModule}, Naming: NamingSnake, Only: []string{"["}}}, "["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Run(discard(), &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExport_VerifySource(t *testing.T) {
	doc := exportDoc(t, Sources{Module: []string{warehouseModule}, VerifySource: true})
	assert.Len(t, doc.Classes, 6)

	err := (&Export{Sources: Sources{Module: []string{"fluentmap/nothing"}, VerifySource: true}}).Run(discard(), &bytes.Buffer{})
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	sources := Sources{Module: []string{storeModule}}

	require.NoError(t, (&Export{Sources: sources, Out: path}).Run(discard(), &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, (&Check{Sources: sources, File: path}).Run(discard(), &out))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(data, []byte("table: products"), []byte("table: goods"), 1), 0o644))

	err = (&Check{Sources: sources, File: path}).Run(discard(), &out)
	require.ErrorIs(t, err, ErrOutOfDate)
	assert.Regexp(t, `(?m)^-\s+table: goods$`, out.String())
	assert.Regexp(t, `(?m)^\+\s+table: products$`, out.String())
}

func TestCheck_InvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"classes": [{"name": 7}]}`), 0o644))

	err := (&Check{Sources: Sources{Module: []string{storeModule}}, File: path}).Run(discard(), &bytes.Buffer{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOutOfDate)
}

func TestInspect(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Inspect{Sources: Sources{Module: []string{storeModule}}}).Run(discard(), &out))

	text := strings.ToLower(out.String())
	for _, want := range []string{"products", "order_items", "store.orderitem", "(join)"} {
		assert.Contains(t, text, want)
	}
}

func TestInspect_Dump(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Inspect{Sources: Sources{Module: []string{storeModule}}, Dump: true}).Run(discard(), &out))

	assert.Contains(t, out.String(), "fluentmap/store.ProductMap")
}

func TestSchema(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Schema{}).Run(discard(), &out))
	assert.True(t, json.Valid(out.Bytes()))
	assert.Contains(t, out.String(), "classes")

	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, (&Schema{Out: path}).Run(discard(), &out))
	assert.FileExists(t, path)
}

func TestEntityLabel(t *testing.T) {
	assert.Equal(t, "store.Product", entityLabel("fluentmap/store.Product"))
	assert.Equal(t, "(join)", entityLabel(""))
	assert.Equal(t, "Plain", entityLabel("Plain"))
}

func TestCLI_Parse(t *testing.T) {
	var cli CLI

	parser, err := kong.New(&cli, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"export", "-m", storeModule, "-m", warehouseModule, "--naming", "snake", "-o", "out.toml"})
	require.NoError(t, err)

	assert.Equal(t, "export", ctx.Command())
	assert.Equal(t, []string{storeModule, warehouseModule}, cli.Export.Module)
	assert.Equal(t, NamingSnake, cli.Export.Naming)
	assert.Equal(t, "warn", cli.Log.Level)
	assert.True(t, strings.HasSuffix(cli.Export.Out, "out.toml"))
}

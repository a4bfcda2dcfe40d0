package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"fluentmap/conventions"
	"fluentmap/fluent"
	"fluentmap/internal/naming"
	"fluentmap/model"
	"fluentmap/scan"
)

// Naming styles accepted by --naming.
const (
	NamingDefault = "default"
	NamingSnake   = "snake"
)

// Sources selects the definitions a command applies and the conventions
// applied to them.
type Sources struct {
	Module       []string `help:"Import path of a module to apply; repeatable (default: every registered module)" short:"m"`
	VerifySource bool     `help:"Discover definitions from source and fail on declared but unregistered ones" name:"verify-source"`
	Dir          string   `help:"Directory package patterns are resolved from with --verify-source" type:"path"`

	Naming       string   `help:"Naming style for unset tables, columns and keys" enum:"default,snake" default:"default"`
	StringLength int      `help:"Length given to string properties without one (0 leaves it unset)" name:"string-length"`
	Only         []string `help:"Glob pattern of entities the naming conventions apply to; repeatable"`
}

// container builds a fluent container from the selected sources.
func (s *Sources) container(logger *slog.Logger) (*fluent.Container, error) {
	var scanner model.Scanner = scan.Default

	if s.VerifySource {
		opts := []scan.SourceOption{scan.WithLogger(logger)}
		if s.Dir != "" {
			opts = append(opts, scan.WithDir(s.Dir))
		}

		src, err := scan.NewSourceScanner(opts...)
		if err != nil {
			return nil, err
		}

		scanner = src
	}

	convs, err := s.conventions()
	if err != nil {
		return nil, err
	}

	modules, err := s.modules()
	if err != nil {
		return nil, err
	}

	c := fluent.New(fluent.WithScanner(scanner), fluent.WithLogger(logger), fluent.WithConventions(convs...))
	for _, m := range modules {
		c.AddModule(m)
	}

	return c, c.Err()
}

func (s *Sources) modules() ([]model.Module, error) {
	if len(s.Module) == 0 {
		modules := scan.Default.Modules()
		if len(modules) == 0 {
			return nil, errors.New("no mapping definitions are registered")
		}

		return modules, nil
	}

	modules := make([]model.Module, 0, len(s.Module))

	for _, path := range s.Module {
		m := model.Module{Path: path}

		if !s.VerifySource {
			if types, _ := scan.Default.Scan(m); len(types) == 0 {
				return nil, fmt.Errorf("no mapping definitions registered for module %s", path)
			}
		}

		modules = append(modules, m)
	}

	return modules, nil
}

func (s *Sources) conventions() ([]conventions.Convention, error) {
	var convs []conventions.Convention

	if s.Naming == NamingSnake {
		convs = append(convs,
			conventions.SnakeCaseTables(),
			conventions.SnakeCaseColumns(),
			conventions.ForeignKeySuffix("_id"),
			conventions.JoinTable(func(parent, child string) string {
				return naming.SnakeCase(parent) + "_" + naming.SnakeCase(child)
			}),
		)
	}

	if len(s.Only) > 0 {
		for i, c := range convs {
			f, err := conventions.ForEntities(c, s.Only...)
			if err != nil {
				return nil, err
			}

			convs[i] = f
		}
	}

	if s.StringLength > 0 {
		convs = append(convs, conventions.DefaultStringLength(s.StringLength))
	}

	return convs, nil
}

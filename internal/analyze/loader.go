package analyze

import (
	"cmp"
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"

	"fluentmap/mapping"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

var classMapType = reflect.TypeOf(mapping.ClassMap{})

// Analyzer loads Go packages and collects their mapping definitions.
type Analyzer struct {
	dir string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDir sets the directory package patterns are resolved from.
func WithDir(dir string) Option {
	return func(a *Analyzer) { a.dir = dir }
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and collects their definitions.
// Patterns are standard Go package patterns (e.g., "./store", "fluentmap/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, processPackage(pkg))
	}

	return out, nil
}

// LoadPackage loads a single package by import path.
func (a *Analyzer) LoadPackage(path string) (*Package, error) {
	pkgs, err := a.LoadPackages(path)
	if err != nil {
		return nil, err
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matched %d packages", path, len(pkgs))
	}

	return pkgs[0], nil
}

// processPackage extracts definitions from a loaded package.
func processPackage(pkg *packages.Package) *Package {
	info := &Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 || types.IsInterface(named) {
			continue
		}

		pointerOnly, ok := definitionMethod(named)
		if !ok {
			continue
		}

		info.Definitions = append(info.Definitions, Definition{
			ID:              TypeID{PkgPath: pkg.PkgPath, Name: name},
			Position:        pkg.Fset.Position(typeName.Pos()),
			PointerReceiver: pointerOnly,
		})
	}

	// scope names are sorted; definitions follow declaration order
	slices.SortStableFunc(info.Definitions, func(a, b Definition) int {
		if c := cmp.Compare(a.Position.Filename, b.Position.Filename); c != 0 {
			return c
		}

		return cmp.Compare(a.Position.Offset, b.Position.Offset)
	})

	return info
}

// definitionMethod reports whether *named has a Define(*mapping.ClassMap)
// method, and whether the value type lacks it.
func definitionMethod(named *types.Named) (pointerOnly bool, ok bool) {
	sel := types.NewMethodSet(types.NewPointer(named)).Lookup(nil, DefineMethod)
	if sel == nil {
		return false, false
	}

	sig, isSig := sel.Obj().Type().(*types.Signature)
	if !isSig || !isDefineSignature(sig) {
		return false, false
	}

	return types.NewMethodSet(named).Lookup(nil, DefineMethod) == nil, true
}

func isDefineSignature(sig *types.Signature) bool {
	if sig.Params().Len() != 1 || sig.Results().Len() != 0 || sig.Variadic() {
		return false
	}

	ptr, ok := types.Unalias(sig.Params().At(0).Type()).(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := types.Unalias(ptr.Elem()).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == classMapType.PkgPath() && obj.Name() == classMapType.Name()
}

package scan

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"fluentmap/internal/analyze"
	"fluentmap/model"
)

// DefaultCacheSize is the number of loaded packages a SourceScanner keeps.
const DefaultCacheSize = 64

// SourceScanner finds definitions by loading a module from source and
// resolves them against a catalog. Loaded packages are cached, so source
// changes made after the first scan of a module are not seen until Purge.
type SourceScanner struct {
	catalog  *Catalog
	analyzer *analyze.Analyzer
	cache    *lru.Cache
	logger   *slog.Logger
}

type sourceConfig struct {
	catalog   *Catalog
	dir       string
	cacheSize int
	logger    *slog.Logger
}

// SourceOption configures a SourceScanner.
type SourceOption func(*sourceConfig)

// WithCatalog resolves definitions against c instead of Default.
func WithCatalog(c *Catalog) SourceOption {
	return func(cfg *sourceConfig) { cfg.catalog = c }
}

// WithDir sets the directory module paths are resolved from.
func WithDir(dir string) SourceOption {
	return func(cfg *sourceConfig) { cfg.dir = dir }
}

// WithCacheSize sets how many loaded packages are kept.
func WithCacheSize(n int) SourceOption {
	return func(cfg *sourceConfig) { cfg.cacheSize = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) SourceOption {
	return func(cfg *sourceConfig) { cfg.logger = l }
}

// NewSourceScanner creates a SourceScanner.
func NewSourceScanner(opts ...SourceOption) (*SourceScanner, error) {
	cfg := sourceConfig{
		catalog:   Default,
		cacheSize: DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.catalog == nil {
		return nil, errors.New("source scanner needs a catalog")
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	cache, err := lru.New(cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create scan cache: %w", err)
	}

	return &SourceScanner{
		catalog:  cfg.catalog,
		analyzer: analyze.NewAnalyzer(analyze.WithDir(cfg.dir)),
		cache:    cache,
		logger:   cfg.logger,
	}, nil
}

// Scan returns the definitions declared in the module, in declaration order.
// Every declared definition must be registered in the catalog.
func (s *SourceScanner) Scan(mod model.Module) ([]reflect.Type, error) {
	pkg, err := s.load(mod.Path)
	if err != nil {
		return nil, model.NewError(model.KindScan, "scan", mod.Path, err)
	}

	var (
		types   = make([]reflect.Type, 0, len(pkg.Definitions))
		missing []string
	)

	for _, d := range pkg.Definitions {
		t, ok := s.catalog.Lookup(d.ID.PkgPath, d.ID.Name)
		if !ok {
			missing = append(missing, d.ID.Name)
			continue
		}

		types = append(types, t)
	}

	if len(missing) > 0 {
		return nil, model.NewError(model.KindScan, "scan", mod.Path,
			fmt.Errorf("declared but not registered: %s", strings.Join(missing, ", ")))
	}

	s.logger.Debug("scanned module source", "module", mod.Path, "definitions", len(types))

	return types, nil
}

// Purge drops every cached package.
func (s *SourceScanner) Purge() {
	s.cache.Purge()
}

func (s *SourceScanner) load(path string) (*analyze.Package, error) {
	if v, ok := s.cache.Get(path); ok {
		s.logger.Debug("scan cache hit", "module", path)
		return v.(*analyze.Package), nil
	}

	pkg, err := s.analyzer.LoadPackage(path)
	if err != nil {
		return nil, err
	}

	s.cache.Add(path, pkg)

	return pkg, nil
}

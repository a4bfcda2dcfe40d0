package fluent

import (
	"log/slog"

	"fluentmap/conventions"
	"fluentmap/mapping"
	"fluentmap/model"
	"fluentmap/scan"
)

type options struct {
	scanner     model.Scanner
	logger      *slog.Logger
	conventions []conventions.Convention
	pairing     model.PairingStrategy
	format      mapping.Format
}

func defaultOptions() options {
	return options{
		scanner: scan.Default,
		logger:  slog.New(slog.DiscardHandler),
		format:  mapping.FormatYAML,
	}
}

// Option configures a Container.
type Option func(*options)

// WithScanner sets the module scanner. The default is scan.Default.
func WithScanner(s model.Scanner) Option {
	return func(o *options) { o.scanner = s }
}

// WithLogger sets the logger shared by the container and its model.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConventions seeds the convention store. Use it for conventions that
// every container of an application should carry.
func WithConventions(c ...conventions.Convention) Option {
	return func(o *options) { o.conventions = append(o.conventions, c...) }
}

// WithPairing sets the initial many-to-many pairing strategy.
func WithPairing(p model.PairingStrategy) Option {
	return func(o *options) { o.pairing = p }
}

// WithFormat sets the initial export format.
func WithFormat(f mapping.Format) Option {
	return func(o *options) { o.format = f }
}

package configblock

import (
	"github.com/arthur-debert/configblock/pkg/formats"
	"github.com/arthur-debert/configblock/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Option configures the extension.
type Option func(*Extender)

// WithBackend selects the render adapters. The default is StructuralBackend.
func WithBackend(b Backend) Option {
	return func(e *Extender) {
		e.backend = b
	}
}

// WithFormats replaces the format table used to label code samples.
func WithFormats(t formats.Table) Option {
	return func(e *Extender) {
		e.table = t
	}
}

// WithLogger sets the logger the transformer reports to.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Extender) {
		e.logger = &l
	}
}

// Extender registers the configuration-block directive with goldmark.
type Extender struct {
	backend Backend
	table   formats.Table
	logger  *zerolog.Logger
}

// ConfigurationBlock is the extension with default options.
var ConfigurationBlock = New()

// New returns the extension configured with opts.
func New(opts ...Option) goldmark.Extender {
	e := &Extender{
		backend: StructuralBackend,
		table:   formats.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	logger := logging.GetLogger("configblock")
	if e.logger != nil {
		logger = *e.logger
	}

	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(NewDirectiveParser(), 650),
		),
		parser.WithASTTransformers(
			util.Prioritized(newASTTransformer(e.table, logger), 100),
		),
	)

	var nr renderer.NodeRenderer
	switch e.backend {
	case FlowBackend:
		nr = NewFlowRenderer()
	default:
		nr = NewHTMLRenderer()
	}
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(nr, 500),
		),
	)
}

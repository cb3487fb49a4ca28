// Package build turns markdown sources into HTML or LaTeX documents with the
// configuration-block directive enabled.
package build

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/arthur-debert/configblock/pkg/config"
	"github.com/arthur-debert/configblock/pkg/configblock"
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/formats"
	"github.com/arthur-debert/configblock/pkg/latex"
	"github.com/arthur-debert/configblock/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Options configures a Converter.
type Options struct {
	// Backend is config.BackendHTML or config.BackendLaTeX.
	Backend string

	// Formats labels the code samples. The zero value means formats.Default().
	Formats formats.Table

	// Standalone wraps LaTeX output in a complete document.
	Standalone bool

	// Emoji enables :shortcode: emoji in HTML output.
	Emoji bool

	// Highlight is a chroma style name for HTML code highlighting.
	Highlight string
}

// OptionsFromConfig maps a loaded configuration to converter options.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	table, err := cfg.FormatTable()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Backend:    cfg.Build.Backend,
		Formats:    table,
		Standalone: cfg.Build.Standalone,
		Emoji:      cfg.Markdown.Emoji,
		Highlight:  cfg.Markdown.Highlight,
	}, nil
}

// Converter renders single documents. It is safe for sequential reuse.
type Converter struct {
	md      goldmark.Markdown
	backend string
	logger  zerolog.Logger
}

// NewConverter builds the goldmark pipeline for opts.Backend.
func NewConverter(opts Options) (*Converter, error) {
	logger := logging.GetLogger("build")

	table := opts.Formats
	if table.Len() == 0 {
		table = formats.Default()
	}

	var (
		mdOpts []goldmark.Option
		exts   []goldmark.Extender
	)
	switch opts.Backend {
	case config.BackendHTML:
		exts = append(exts,
			extension.GFM,
			configblock.New(
				configblock.WithBackend(configblock.StructuralBackend),
				configblock.WithFormats(table),
				configblock.WithLogger(logger),
			),
		)
		if opts.Emoji {
			exts = append(exts, emoji.Emoji)
		}
		if opts.Highlight != "" {
			if _, ok := styles.Registry[opts.Highlight]; !ok {
				return nil, errors.Newf(errors.ErrInvalidInput, "unknown highlight style %q", opts.Highlight).
					WithDetail("style", opts.Highlight)
			}
			exts = append(exts, highlighting.NewHighlighting(highlighting.WithStyle(opts.Highlight)))
		}

	case config.BackendLaTeX:
		var latexOpts []latex.Option
		if opts.Standalone {
			latexOpts = append(latexOpts, latex.WithStandalone())
		}
		mdOpts = append(mdOpts, goldmark.WithRenderer(latex.NewMarkdownRenderer(latexOpts...)))
		exts = append(exts, configblock.New(
			configblock.WithBackend(configblock.FlowBackend),
			configblock.WithFormats(table),
			configblock.WithLogger(logger),
		))
		if opts.Emoji || opts.Highlight != "" {
			logger.Debug().Msg("Emoji and highlighting only apply to HTML output")
		}

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown backend %q", opts.Backend).
			WithDetail("backend", opts.Backend)
	}

	mdOpts = append(mdOpts, goldmark.WithExtensions(exts...))
	return &Converter{
		md:      goldmark.New(mdOpts...),
		backend: opts.Backend,
		logger:  logger,
	}, nil
}

// Backend returns the backend name the converter renders for.
func (c *Converter) Backend() string {
	return c.backend
}

// Extension returns the output file extension, including the dot.
func (c *Converter) Extension() string {
	if c.backend == config.BackendLaTeX {
		return ".tex"
	}
	return ".html"
}

// Convert renders source to w. Nothing is written unless the whole document
// converts: a failed configuration block aborts before rendering starts.
func (c *Converter) Convert(source []byte, w io.Writer) error {
	pc := parser.NewContext()
	doc := c.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	if failures := configblock.Errors(pc); len(failures) > 0 {
		for _, f := range failures {
			c.logger.Warn().Err(f).Msg("Directive failed")
		}
		return failures[0]
	}

	var buf bytes.Buffer
	if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render document")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}

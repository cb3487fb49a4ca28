// Package latex renders goldmark documents as LaTeX.
//
// It covers the CommonMark node set. Raw HTML is dropped. Node kinds it does
// not know, such as the configuration-block marker container, are walked
// through transparently so their children render natively.
package latex

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Config holds rendering options.
type Config struct {
	// Standalone wraps the output in a minimal article preamble.
	Standalone bool
}

// Option sets a Config field.
type Option func(*Config)

// WithStandalone makes the renderer emit a complete document.
func WithStandalone() Option {
	return func(c *Config) {
		c.Standalone = true
	}
}

// Renderer is a goldmark NodeRenderer producing LaTeX.
type Renderer struct {
	Config
}

// NewRenderer returns a LaTeX NodeRenderer.
func NewRenderer(opts ...Option) renderer.NodeRenderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(&r.Config)
	}
	return r
}

// NewMarkdownRenderer returns a complete goldmark renderer for LaTeX, for use
// with goldmark.WithRenderer.
func NewMarkdownRenderer(opts ...Option) renderer.Renderer {
	return renderer.NewRenderer(
		renderer.WithNodeRenderers(
			util.Prioritized(NewRenderer(opts...), 1000),
		),
	)
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *Renderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	// blocks
	reg.Register(ast.KindDocument, r.renderDocument)
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindBlockquote, r.renderBlockquote)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindHTMLBlock, r.renderSkip)
	reg.Register(ast.KindList, r.renderList)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindParagraph, r.renderParagraph)
	reg.Register(ast.KindTextBlock, r.renderTextBlock)
	reg.Register(ast.KindThematicBreak, r.renderThematicBreak)

	// inlines
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
	reg.Register(ast.KindEmphasis, r.renderEmphasis)
	reg.Register(ast.KindImage, r.renderImage)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindRawHTML, r.renderSkip)
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindString, r.renderString)
}

const preamble = `\documentclass{article}
\usepackage[utf8]{inputenc}
\usepackage{graphicx}
\usepackage{hyperref}

\begin{document}

`

func (r *Renderer) renderDocument(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !r.Standalone {
		return ast.WalkContinue, nil
	}
	if entering {
		_, _ = w.WriteString(preamble)
	} else {
		_, _ = w.WriteString("\\end{document}\n")
	}
	return ast.WalkContinue, nil
}

var sectioning = []string{
	1: `\section`,
	2: `\subsection`,
	3: `\subsubsection`,
	4: `\paragraph`,
	5: `\subparagraph`,
	6: `\subparagraph`,
}

func (r *Renderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if entering {
		level := n.Level
		if level < 1 || level >= len(sectioning) {
			level = len(sectioning) - 1
		}
		_, _ = w.WriteString(sectioning[level])
		_ = w.WriteByte('{')
	} else {
		_, _ = w.WriteString("}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderBlockquote(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\begin{quote}\n")
	} else {
		_, _ = w.WriteString("\\end{quote}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("\n")
	writeVerbatim(w, n.Lines(), source)
	_, _ = w.WriteString("\n")
	return ast.WalkSkipChildren, nil
}

const (
	verbatimBegin = "\\begin{verbatim}\n"
	verbatimEnd   = "\\end{verbatim}\n"
)

// verbDelimiters are tried in order for lines that cannot sit in verbatim.
const verbDelimiters = "|!+=@#~^;/"

// writeVerbatim writes code lines in a verbatim environment. verbatim ends
// at the first \end{verbatim} in its body, so a line containing one closes
// the environment and is set with \verb instead.
func writeVerbatim(w util.BufWriter, lines *text.Segments, source []byte) {
	terminator := []byte(strings.TrimSuffix(verbatimEnd, "\n"))
	open := lines.Len() == 0
	if open {
		_, _ = w.WriteString(verbatimBegin)
	}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := seg.Value(source)
		if !bytes.Contains(line, terminator) {
			if !open {
				_, _ = w.WriteString(verbatimBegin)
				open = true
			}
			_, _ = w.Write(line)
			continue
		}
		if open {
			_, _ = w.WriteString(verbatimEnd)
			open = false
		}
		writeVerbLine(w, util.TrimRightSpace(line))
	}
	if open {
		_, _ = w.WriteString(verbatimEnd)
	}
}

func writeVerbLine(w util.BufWriter, line []byte) {
	idx := strings.IndexFunc(verbDelimiters, func(r rune) bool {
		return bytes.IndexRune(line, r) < 0
	})
	if idx < 0 {
		_, _ = w.WriteString("\\noindent\\texttt{" + Escape(string(line)) + "}\\\\\n")
		return
	}
	d := verbDelimiters[idx : idx+1]
	_, _ = w.WriteString("\\noindent\\verb" + d + string(line) + d + "\\\\\n")
}

func (r *Renderer) renderList(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.List)
	env := "itemize"
	if n.IsOrdered() {
		env = "enumerate"
	}
	if entering {
		_, _ = w.WriteString("\\begin{" + env + "}\n")
		if n.IsOrdered() && n.Start > 1 {
			_, _ = w.WriteString("\\setcounter{enumi}{" + strconv.Itoa(n.Start-1) + "}\n")
		}
	} else {
		_, _ = w.WriteString("\\end{" + env + "}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderListItem(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\item ")
		return ast.WalkContinue, nil
	}
	// paragraphs and other blocks end with their own blank line
	switch n.LastChild().(type) {
	case nil, *ast.TextBlock:
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderParagraph(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderTextBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering && n.NextSibling() != nil {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderThematicBreak(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("\\noindent\\rule{\\linewidth}{0.4pt}\n\n")
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	url := n.URL(source)
	if n.AutoLinkType == ast.AutoLinkEmail {
		_, _ = w.WriteString("\\href{mailto:" + EscapeURL(string(url)) + "}{" + Escape(string(n.Label(source))) + "}")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("\\url{" + EscapeURL(string(url)) + "}")
	return ast.WalkContinue, nil
}

func (r *Renderer) renderCodeSpan(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
	}
	_, _ = w.WriteString("\\texttt{" + Escape(b.String()) + "}")
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderEmphasis(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Emphasis)
	if entering {
		if n.Level == 2 {
			_, _ = w.WriteString("\\textbf{")
		} else {
			_, _ = w.WriteString("\\emph{")
		}
	} else {
		_ = w.WriteByte('}')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderImage(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		n := node.(*ast.Image)
		_, _ = w.WriteString("\\includegraphics{" + EscapeURL(string(n.Destination)) + "}")
	}
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if entering {
		_, _ = w.WriteString("\\href{" + EscapeURL(string(n.Destination)) + "}{")
	} else {
		_ = w.WriteByte('}')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderSkip(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkSkipChildren, nil
}

func (r *Renderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	_, _ = w.WriteString(Escape(string(n.Segment.Value(source))))
	if n.HardLineBreak() {
		_, _ = w.WriteString("\\\\\n")
	} else if n.SoftLineBreak() {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *Renderer) renderString(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.String)
	if n.IsCode() || n.IsRaw() {
		_, _ = w.Write(n.Value)
	} else {
		_, _ = w.WriteString(Escape(string(n.Value)))
	}
	return ast.WalkContinue, nil
}

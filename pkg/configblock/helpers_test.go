package configblock

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

func newMarkdown(opts ...Option) goldmark.Markdown {
	return goldmark.New(goldmark.WithExtensions(New(opts...)))
}

func convert(t *testing.T, src string, opts ...Option) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newMarkdown(opts...).Convert([]byte(src), &buf)
	return buf.String(), err
}

func mustConvert(t *testing.T, src string, opts ...Option) string {
	t.Helper()
	out, err := convert(t, src, opts...)
	require.NoError(t, err)
	return out
}

func parse(src string, opts ...Option) (ast.Node, parser.Context) {
	pc := parser.NewContext()
	doc := newMarkdown(opts...).Parser().Parse(text.NewReader([]byte(src)), parser.WithContext(pc))
	return doc, pc
}

func textSegment(source []byte, s string) text.Segment {
	start := bytes.Index(source, []byte(s))
	return text.NewSegment(start, start+len(s))
}

func findKind(root ast.Node, kind ast.NodeKind) []ast.Node {
	var found []ast.Node
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			found = append(found, n)
		}
		return ast.WalkContinue, nil
	})
	return found
}

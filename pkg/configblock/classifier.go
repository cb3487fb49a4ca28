package configblock

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
)

// Classifier tells the transformer which nodes are literal code blocks and
// which language each one declares.
type Classifier interface {
	// Literal reports whether n is a literal code block and returns its
	// declared language.
	Literal(n ast.Node) (language string, ok bool)
}

// Locator is implemented by classifiers that can map a node back to its
// 1-based source line. Zero means unknown.
type Locator interface {
	Line(n ast.Node) int
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(n ast.Node) (string, bool)

// Literal implements Classifier.
func (f ClassifierFunc) Literal(n ast.Node) (string, bool) {
	return f(n)
}

// SourceClassifier classifies goldmark code nodes. Fenced blocks declare the
// first word of their info string; indented blocks declare nothing, which
// never matches a format tag.
type SourceClassifier struct {
	Source []byte
}

// Literal implements Classifier.
func (c SourceClassifier) Literal(n ast.Node) (string, bool) {
	switch node := n.(type) {
	case *ast.FencedCodeBlock:
		return string(node.Language(c.Source)), true
	case *ast.CodeBlock:
		return "", true
	}
	return "", false
}

// Line implements Locator.
func (c SourceClassifier) Line(n ast.Node) int {
	offset := -1
	if fenced, ok := n.(*ast.FencedCodeBlock); ok && fenced.Info != nil {
		offset = fenced.Info.Segment.Start
	} else if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		offset = lines.At(0).Start
	}
	if offset < 0 || offset > len(c.Source) {
		return 0
	}
	return bytes.Count(c.Source[:offset], []byte{'\n'}) + 1
}

package configblock

import (
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/formats"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Transform builds the marker container for the body of one directive.
//
// Only the children c classifies as literal code blocks are kept, in their
// original order. Each becomes a list item holding a paragraph with the
// emphasized label followed by the code node itself. Labels are resolved
// before any node is touched, so on error the children keep their parent
// and no Block is returned.
func Transform(children []ast.Node, c Classifier, table formats.Table) (*Block, error) {
	type entry struct {
		label string
		code  ast.Node
	}

	var entries []entry
	for _, child := range children {
		language, ok := c.Literal(child)
		if !ok {
			continue
		}
		label, err := table.Label(language)
		if err != nil {
			return nil, directiveError(err, c, child)
		}
		entries = append(entries, entry{label: label, code: child})
	}

	list := ast.NewList('-')
	for _, e := range entries {
		list.AppendChild(list, newEntry(e.label, e.code))
	}

	block := NewBlock()
	block.AppendChild(block, list)
	return block, nil
}

func newEntry(label string, code ast.Node) *ast.ListItem {
	emphasis := ast.NewEmphasis(1)
	emphasis.AppendChild(emphasis, ast.NewString([]byte(label)))

	paragraph := ast.NewParagraph()
	paragraph.AppendChild(paragraph, emphasis)
	paragraph.AppendChild(paragraph, code)

	item := ast.NewListItem(2)
	item.AppendChild(item, paragraph)
	return item
}

func directiveError(err error, c Classifier, child ast.Node) error {
	locator, ok := c.(Locator)
	if !ok {
		return errors.Wrap(err, errors.ErrDirectiveFailed, "configuration-block failed")
	}
	line := locator.Line(child)
	if line == 0 {
		return errors.Wrap(err, errors.ErrDirectiveFailed, "configuration-block failed")
	}
	return errors.Wrapf(err, errors.ErrDirectiveFailed, "configuration-block failed at line %d", line).
		WithDetail("line", line)
}

// failedDescendant returns the error of a failed directive nested inside d.
// A failure inside the body fails the enclosing directive too.
func failedDescendant(d *Directive) error {
	var failed error
	_ = ast.Walk(d, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n == d {
			return ast.WalkContinue, nil
		}
		if inner, ok := n.(*Directive); ok && inner.Err != nil {
			failed = inner.Err
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if failed == nil {
		return nil
	}
	return errors.Wrap(failed, errors.ErrDirectiveFailed, "nested configuration-block failed")
}

var errorsKey = parser.NewContextKey()

// Errors returns the directive failures recorded while parsing with pc, in
// document order.
func Errors(pc parser.Context) []error {
	v := pc.Get(errorsKey)
	if v == nil {
		return nil
	}
	return v.([]error)
}

type astTransformer struct {
	table  formats.Table
	logger zerolog.Logger
}

func newASTTransformer(table formats.Table, logger zerolog.Logger) parser.ASTTransformer {
	return &astTransformer{table: table, logger: logger}
}

// Transform implements parser.ASTTransformer. Nested directives are handled
// innermost first, like a nested parse would.
func (t *astTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var directives []*Directive
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if d, ok := n.(*Directive); ok && entering {
			directives = append(directives, d)
		}
		return ast.WalkContinue, nil
	})
	if len(directives) == 0 {
		return
	}

	classifier := SourceClassifier{Source: reader.Source()}
	for i := len(directives) - 1; i >= 0; i-- {
		d := directives[i]
		var block *Block
		err := failedDescendant(d)
		if err == nil {
			block, err = Transform(Children(d), classifier, t.table)
		}
		if err != nil {
			d.Err = err
			d.RemoveChildren(d)
			t.logger.Debug().Err(err).Msg("configuration-block rejected")
			continue
		}

		parent := d.Parent()
		if parent == nil {
			continue
		}
		parent.ReplaceChild(parent, d, block)
		t.logger.Trace().
			Int("entries", block.List().ChildCount()).
			Msg("configuration-block built")
	}

	var failures []error
	for _, d := range directives {
		if d.Err != nil {
			failures = append(failures, d.Err)
		}
	}
	if len(failures) > 0 {
		pc.Set(errorsKey, append(Errors(pc), failures...))
	}
}

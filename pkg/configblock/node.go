package configblock

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// KindDirective is the NodeKind of a parsed, not yet transformed directive.
var KindDirective = ast.NewNodeKind("ConfigurationBlockDirective")

// KindConfigurationBlock is the NodeKind of the marker container.
var KindConfigurationBlock = ast.NewNodeKind("ConfigurationBlock")

// Directive holds the parsed body of a configuration-block directive until
// the AST transformer replaces it. A Directive left in a finished tree has
// failed: Err is set and its children have been removed.
type Directive struct {
	ast.BaseBlock

	// FenceLength is the number of colons of the opening fence.
	FenceLength int

	// Err is the transformation error, if any.
	Err error
}

// NewDirective returns a new Directive opened with a fence of fenceLength colons.
func NewDirective(fenceLength int) *Directive {
	return &Directive{FenceLength: fenceLength}
}

// Kind implements ast.Node.
func (n *Directive) Kind() ast.NodeKind {
	return KindDirective
}

// Dump implements ast.Node.
func (n *Directive) Dump(source []byte, level int) {
	kv := map[string]string{
		"FenceLength": strconv.Itoa(n.FenceLength),
	}
	if n.Err != nil {
		kv["Err"] = n.Err.Error()
	}
	ast.DumpHelper(n, source, level, kv, nil)
}

// Block is the marker container produced for every successful directive. Its
// only child is a bullet list with one item per code sample.
type Block struct {
	ast.BaseBlock
}

// NewBlock returns an empty Block.
func NewBlock() *Block {
	return &Block{}
}

// Kind implements ast.Node.
func (n *Block) Kind() ast.NodeKind {
	return KindConfigurationBlock
}

// Dump implements ast.Node.
func (n *Block) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// List returns the list of entries, or nil if the block was not built by
// Transform.
func (n *Block) List() *ast.List {
	list, _ := n.FirstChild().(*ast.List)
	return list
}

// Children returns the direct children of n in order. The slice is a
// snapshot; re-parenting a child afterwards does not change it.
func Children(n ast.Node) []ast.Node {
	children := make([]ast.Node, 0, n.ChildCount())
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		children = append(children, c)
	}
	return children
}

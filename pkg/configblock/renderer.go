package configblock

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// ClassName is the class of the element wrapping every configuration block
// in HTML output. Stylesheets and scripts target it, so it never changes.
const ClassName = "configuration-block"

// Backend selects the render adapter pair registered by the extension.
type Backend int

const (
	// StructuralBackend wraps the block in a classed <div>.
	StructuralBackend Backend = iota

	// FlowBackend emits nothing around the block.
	FlowBackend
)

func (b Backend) String() string {
	switch b {
	case StructuralBackend:
		return "structural"
	case FlowBackend:
		return "flow"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// HTMLRenderer renders configuration blocks for HTML output.
type HTMLRenderer struct{}

// NewHTMLRenderer returns the structural render adapters.
func NewHTMLRenderer() renderer.NodeRenderer {
	return &HTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindConfigurationBlock, r.renderBlock)
	reg.Register(KindDirective, renderDirective)
}

func (r *HTMLRenderer) renderBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(`<div class="` + ClassName + `">` + "\n")
	} else {
		_, _ = w.WriteString("</div>\n")
	}
	return ast.WalkContinue, nil
}

// FlowRenderer renders configuration blocks for flow-document output such as
// LaTeX, where the list renders natively and the block is transparent.
type FlowRenderer struct{}

// NewFlowRenderer returns the no-op render adapters.
func NewFlowRenderer() renderer.NodeRenderer {
	return &FlowRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *FlowRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindConfigurationBlock, r.renderBlock)
	reg.Register(KindDirective, renderDirective)
}

func (r *FlowRenderer) renderBlock(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	return ast.WalkContinue, nil
}

// renderDirective stops rendering at a directive that failed to transform,
// so the conversion as a whole returns its error.
func renderDirective(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	directive := n.(*Directive)
	if entering && directive.Err != nil {
		return ast.WalkStop, directive.Err
	}
	return ast.WalkContinue, nil
}

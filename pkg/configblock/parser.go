package configblock

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DirectiveName is the name authors put after the opening fence.
const DirectiveName = "configuration-block"

const fenceChar = ':'

const minFenceLength = 3

type directiveParser struct{}

var defaultDirectiveParser = &directiveParser{}

// NewDirectiveParser returns a BlockParser for ::: configuration-block
// containers. The body is parsed by the other block parsers as children of a
// Directive node.
func NewDirectiveParser() parser.BlockParser {
	return defaultDirectiveParser
}

func (b *directiveParser) Trigger() []byte {
	return []byte{fenceChar}
}

func (b *directiveParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 {
		return nil, parser.NoChildren
	}
	length, ok := parseOpeningFence(line[pos:])
	if !ok {
		return nil, parser.NoChildren
	}
	reader.Advance(segment.Stop - segment.Start - newlineLength(line) + segment.Padding)
	return NewDirective(length), parser.HasChildren
}

func (b *directiveParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	directive := node.(*Directive)

	w, pos := util.IndentWidth(line, reader.LineOffset())
	if w < 4 && isClosingFence(line[pos:], directive.FenceLength) && !insideOpenFence(node, pc) {
		reader.Advance(segment.Stop - segment.Start - newlineLength(line) + segment.Padding)
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (b *directiveParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (b *directiveParser) CanInterruptParagraph() bool {
	return true
}

func (b *directiveParser) CanAcceptIndentedLine() bool {
	return false
}

// parseOpeningFence accepts ":::configuration-block" with any number of
// colons from three up, optional spaces, and the {configuration-block} form.
func parseOpeningFence(line []byte) (int, bool) {
	length := fenceLength(line)
	if length < minFenceLength {
		return 0, false
	}
	name := util.TrimRightSpace(util.TrimLeftSpace(line[length:]))
	if len(name) > 2 && name[0] == '{' && name[len(name)-1] == '}' {
		name = name[1 : len(name)-1]
	}
	if string(name) != DirectiveName {
		return 0, false
	}
	return length, true
}

func isClosingFence(line []byte, opening int) bool {
	length := fenceLength(line)
	return length >= opening && util.IsBlank(line[length:])
}

func fenceLength(line []byte) int {
	i := 0
	for i < len(line) && line[i] == fenceChar {
		i++
	}
	return i
}

// insideOpenFence reports whether the innermost open block is a fenced code
// block inside node, in which case a colon line is code, not a closing fence.
func insideOpenFence(node ast.Node, pc parser.Context) bool {
	opened := pc.OpenedBlocks()
	if len(opened) == 0 {
		return false
	}
	last := opened[len(opened)-1].Node
	if _, ok := last.(*ast.FencedCodeBlock); !ok {
		return false
	}
	for p := last.Parent(); p != nil; p = p.Parent() {
		if p == node {
			return true
		}
	}
	return false
}

func newlineLength(line []byte) int {
	if bytes.HasSuffix(line, []byte("\r\n")) {
		return 2
	}
	if len(line) > 0 && line[len(line)-1] == '\n' {
		return 1
	}
	return 0
}

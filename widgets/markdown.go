package widgets

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/furry-atom/runtime"
	"github.com/odvcencio/furry-atom/state"
)

// mdBlock is one laid-out piece of a markdown document.
// Prose is wrapped at render time; code lines are drawn as-is.
type mdBlock struct {
	prefix string
	text   string
	style  tcell.Style
	code   [][]Span
}

// MarkdownView renders a string atom as markdown.
type MarkdownView struct {
	Base
	source    state.Atom[string]
	markdown  goldmark.Markdown
	codeStyle string
	rows      []string
}

// NewMarkdownView creates a markdown view. codeStyle names the chroma style
// used for fenced code blocks.
func NewMarkdownView(source state.Atom[string], codeStyle string) *MarkdownView {
	return &MarkdownView{
		source:    source,
		markdown:  goldmark.New(),
		codeStyle: codeStyle,
	}
}

// Rows returns the plain text of the rows drawn by the last render.
func (m *MarkdownView) Rows() []string {
	return m.rows
}

type markdownCache struct {
	valid  bool
	source string
	blocks []mdBlock
}

// Render draws the document, re-parsing only when the source changes.
func (m *MarkdownView) Render(ctx runtime.RenderContext) {
	source := runtime.UseValue(ctx.Hooks, m.source)
	cache := runtime.UseRef(ctx.Hooks, func() markdownCache { return markdownCache{} })
	if !cache.valid || cache.source != source {
		*cache = markdownCache{valid: true, source: source, blocks: m.parse([]byte(source))}
	}

	bounds := ctx.Bounds
	m.rows = m.rows[:0]
	y := bounds.Y
	for _, block := range cache.blocks {
		for _, row := range block.layout(bounds.Width) {
			if y >= bounds.Y+bounds.Height {
				return
			}
			x := bounds.X
			var plain strings.Builder
			for _, span := range row {
				x += ctx.SetString(x, y, span.Text, span.Style)
				plain.WriteString(span.Text)
			}
			m.rows = append(m.rows, strings.TrimRight(plain.String(), " "))
			y++
		}
	}
}

func (m *MarkdownView) parse(src []byte) []mdBlock {
	doc := m.markdown.Parser().Parse(text.NewReader(src))
	var blocks []mdBlock
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if len(blocks) > 0 {
			blocks = append(blocks, mdBlock{})
		}
		blocks = m.appendBlock(blocks, n, src, "")
	}
	return blocks
}

func (m *MarkdownView) appendBlock(blocks []mdBlock, n ast.Node, src []byte, indent string) []mdBlock {
	switch node := n.(type) {
	case *ast.Heading:
		return append(blocks, mdBlock{
			prefix: indent + strings.Repeat("#", node.Level) + " ",
			text:   inlineText(node, src),
			style:  tcell.StyleDefault.Bold(true),
		})
	case *ast.List:
		number := node.Start
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "• "
			if node.IsOrdered() {
				marker = strconv.Itoa(number) + ". "
				number++
			}
			first := true
			for child := item.FirstChild(); child != nil; child = child.NextSibling() {
				if first {
					blocks = m.appendBlock(blocks, child, src, indent+marker)
					first = false
					continue
				}
				blocks = m.appendBlock(blocks, child, src, indent+strings.Repeat(" ", runewidth.StringWidth(marker)))
			}
		}
		return blocks
	case *ast.FencedCodeBlock:
		return append(blocks, m.codeBlock(string(node.Language(src)), node.Lines(), src, indent))
	case *ast.CodeBlock:
		return append(blocks, m.codeBlock("", node.Lines(), src, indent))
	case *ast.Blockquote:
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			blocks = m.appendBlock(blocks, child, src, indent+"│ ")
		}
		return blocks
	case *ast.ThematicBreak:
		return append(blocks, mdBlock{prefix: indent, text: "───"})
	default:
		return append(blocks, mdBlock{prefix: indent, text: inlineText(n, src), style: tcell.StyleDefault})
	}
}

func (m *MarkdownView) codeBlock(language string, lines *text.Segments, src []byte, indent string) mdBlock {
	var code strings.Builder
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(src))
	}
	highlighted, err := NewHighlighter(language, m.codeStyle).Lines(code.String())
	if err != nil {
		return mdBlock{prefix: indent + "  ", text: code.String()}
	}
	return mdBlock{prefix: indent + "  ", code: highlighted}
}

// layout splits the block into rows of spans for the given width.
func (b mdBlock) layout(width int) [][]Span {
	prefixWidth := runewidth.StringWidth(b.prefix)
	if b.code != nil {
		rows := make([][]Span, 0, len(b.code))
		for _, line := range b.code {
			rows = append(rows, append([]Span{{Text: b.prefix}}, line...))
		}
		return rows
	}
	lines := wrapText(b.text, width-prefixWidth)
	rows := make([][]Span, 0, len(lines))
	pad := strings.Repeat(" ", prefixWidth)
	for i, line := range lines {
		lead := pad
		if i == 0 {
			lead = b.prefix
		}
		rows = append(rows, []Span{{Text: lead, Style: b.style}, {Text: line, Style: b.style}})
	}
	return rows
}

// inlineText collects the text under a block node. Soft breaks become
// spaces, hard breaks become newlines.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := child.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			switch {
			case node.HardLineBreak():
				b.WriteByte('\n')
			case node.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// wrapText breaks s into lines no wider than width, splitting on spaces.
// Words wider than width are cut.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		var line strings.Builder
		lineWidth := 0
		for _, word := range strings.Fields(paragraph) {
			wordWidth := runewidth.StringWidth(word)
			for wordWidth > width {
				if lineWidth > 0 {
					lines = append(lines, line.String())
					line.Reset()
					lineWidth = 0
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
				wordWidth = runewidth.StringWidth(word)
			}
			if wordWidth == 0 {
				continue
			}
			if lineWidth > 0 && lineWidth+1+wordWidth > width {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			line.WriteString(word)
			lineWidth += wordWidth
		}
		lines = append(lines, line.String())
	}
	return lines
}

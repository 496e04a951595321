package widgets

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-atom/runtime"
	"github.com/odvcencio/furry-atom/state"
)

const tabWidth = 4

// Span is a run of text sharing one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Highlighter splits source code into styled lines.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter picks a lexer by language name, alias or file name and a
// chroma style by name. Unknown names fall back to plain text and the
// default style.
func NewHighlighter(language, styleName string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return &Highlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(styleName),
	}
}

// Lines tokenises source and returns one slice of spans per line.
func (h *Highlighter) Lines(source string) ([][]Span, error) {
	iter, err := h.lexer.Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenise: %w", err)
	}
	lines := [][]Span{nil}
	for _, token := range iter.Tokens() {
		style := h.tcellStyle(token.Type)
		value := strings.ReplaceAll(token.Value, "\t", strings.Repeat(" ", tabWidth))
		for i, part := range strings.Split(value, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], Span{Text: part, Style: style})
			}
		}
	}
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines, nil
}

func (h *Highlighter) tcellStyle(tokenType chroma.TokenType) tcell.Style {
	entry := h.style.Get(tokenType)
	style := tcell.StyleDefault
	if entry.Colour.IsSet() {
		style = style.Foreground(rgb(entry.Colour))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func rgb(c chroma.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

type highlightCache struct {
	valid  bool
	source string
	lines  [][]Span
	err    error
}

// CodeView renders a string atom as highlighted source code.
type CodeView struct {
	Base
	source      state.Atom[string]
	highlighter *Highlighter
	offset      int
}

// NewCodeView creates a code view for source.
func NewCodeView(source state.Atom[string], language, styleName string) *CodeView {
	return &CodeView{
		source:      source,
		highlighter: NewHighlighter(language, styleName),
	}
}

// ScrollTo sets the first visible line.
func (c *CodeView) ScrollTo(line int) {
	c.offset = max(line, 0)
}

// Render draws the visible lines, re-highlighting only when the source changes.
func (c *CodeView) Render(ctx runtime.RenderContext) {
	source := runtime.UseValue(ctx.Hooks, c.source)
	cache := runtime.UseRef(ctx.Hooks, func() highlightCache { return highlightCache{} })
	if !cache.valid || cache.source != source {
		lines, err := c.highlighter.Lines(source)
		*cache = highlightCache{valid: true, source: source, lines: lines, err: err}
	}

	bounds := ctx.Bounds
	if cache.err != nil {
		ctx.SetString(bounds.X, bounds.Y, truncateString(cache.err.Error(), bounds.Width), tcell.StyleDefault)
		return
	}
	drawSpanLines(ctx, bounds, cache.lines[min(c.offset, len(cache.lines)):])
}

func drawSpanLines(ctx runtime.RenderContext, bounds runtime.Rect, lines [][]Span) {
	for row, line := range lines {
		if row >= bounds.Height {
			return
		}
		x := bounds.X
		for _, span := range line {
			x += ctx.SetString(x, bounds.Y+row, span.Text, span.Style)
		}
	}
}

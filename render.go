package mdp

import (
	"strconv"
	"strings"

	"pkt.systems/mdp/internal/ansitext"
)

// RenderRequest configures Render.
type RenderRequest struct {
	// Events is the document event stream, consumed once, in order.
	Events []Event
	// Width is the target line width in character cells. Zero or
	// negative widths degrade to prefix-only overflow lines.
	Width int
	// Theme supplies the styles used when Color is set. Nil selects
	// the default theme.
	Theme Theme
	// Color enables ANSI styling. When unset, plain-text fallbacks
	// are used throughout.
	Color bool
	// NoWrap truncates overlong lines with an ellipsis instead of
	// word-wrapping them.
	NoWrap bool
}

// Render folds a document event stream into finished display lines.
// Each returned line is fully styled and already constrained to the
// configured width; the caller can print lines as-is or hand them to
// the pager.
func Render(req RenderRequest) []string {
	th := req.Theme
	if th == nil {
		th = DefaultTheme()
	}
	s := &renderState{
		width:  req.Width,
		color:  req.Color,
		noWrap: req.NoWrap,
		styles: th.Styles(),
	}
	for _, ev := range req.Events {
		s.handle(ev)
	}
	s.flushWrapped()
	return s.lines
}

// listContext tracks one level of list nesting: either an unordered
// list at a given depth (selects the marker glyph) or an ordered list
// carrying the next item number.
type listContext struct {
	ordered bool
	depth   int
	next    int
}

// renderState is the accumulator for one render pass. A fresh instance
// is built per Render call and mutated only by the event handlers; the
// current line buffer and the finished lines never hold the same text
// twice.
type renderState struct {
	width  int
	color  bool
	noWrap bool
	styles Styles

	lines   []string
	current string

	indent      int
	bold        bool
	italic      bool
	strike      bool
	inCodeBlock bool
	inQuote     bool
	heading     int // 0 means no active heading
	listStack   []listContext

	linkActive bool
	linkDest   string

	inTableCell bool
	tableCell   string
	tableRow    []string
	tableRows   [][]string
	tableAligns []Alignment
}

func (s *renderState) handle(ev Event) {
	switch ev.Kind {
	case EventStartBlock:
		s.startBlock(ev)
	case EventEndBlock:
		s.endBlock(ev)
	case EventStartInline:
		s.startInline(ev)
	case EventEndInline:
		s.endInline(ev)
	case EventText:
		s.text(ev.Text)
	case EventInlineCode:
		s.inlineCode(ev.Text)
	case EventSoftBreak:
		if !s.inCodeBlock {
			s.current += " "
		}
	case EventHardBreak:
		s.flushWrapped()
	case EventRule:
		s.rule()
	case EventTaskMarker:
		s.taskMarker(ev.Checked)
	}
}

func (s *renderState) startBlock(ev Event) {
	switch ev.Block {
	case BlockHeading:
		s.pushBlank()
		s.heading = ev.Level
	case BlockParagraph:
		if !s.inCodeBlock {
			s.pushBlank()
		}
	case BlockQuote:
		s.inQuote = true
		s.pushBlank()
	case BlockCode:
		s.inCodeBlock = true
		s.pushBlank()
		border := "  ╭───"
		if ev.Info != "" {
			border = "  ╭─ " + ev.Info + " "
		}
		s.pushLine(ansitext.Styled(border, s.color, s.styles.Border.Prefix))
	case BlockList:
		// A nested list interrupts its parent item; flush the item text
		// at the parent's indent before deepening.
		s.flushWrapped()
		if len(s.listStack) == 0 {
			s.pushBlank()
		}
		depth := len(s.listStack)
		s.listStack = append(s.listStack, listContext{
			ordered: ev.Ordered,
			depth:   depth,
			next:    ev.Start,
		})
		s.indent = (depth + 1) * 2
	case BlockListItem:
		s.flushWrapped()
		s.current = s.itemMarker()
	case BlockTable:
		s.pushBlank()
		s.tableAligns = ev.Alignments
		s.tableRows = nil
	case BlockTableHead, BlockTableRow:
		s.tableRow = nil
	case BlockTableCell:
		s.inTableCell = true
		s.tableCell = ""
	}
}

func (s *renderState) endBlock(ev Event) {
	switch ev.Block {
	case BlockHeading:
		s.flushWrapped()
		s.heading = 0
	case BlockParagraph:
		s.flushWrapped()
	case BlockQuote:
		s.flushWrapped()
		s.inQuote = false
	case BlockCode:
		s.pushLine(ansitext.Styled("  ╰───", s.color, s.styles.Border.Prefix))
		s.inCodeBlock = false
	case BlockList:
		if n := len(s.listStack); n > 0 {
			s.listStack = s.listStack[:n-1]
		}
		s.indent = len(s.listStack) * 2
		if len(s.listStack) == 0 {
			s.pushBlank()
		}
	case BlockListItem:
		s.flushWrapped()
	case BlockTable:
		s.renderTable()
	case BlockTableHead, BlockTableRow:
		s.tableRows = append(s.tableRows, s.tableRow)
		s.tableRow = nil
	case BlockTableCell:
		s.tableRow = append(s.tableRow, s.tableCell)
		s.tableCell = ""
		s.inTableCell = false
	}
}

func (s *renderState) startInline(ev Event) {
	switch ev.Inline {
	case InlineEmphasis:
		s.italic = true
	case InlineStrong:
		s.bold = true
	case InlineStrike:
		s.strike = true
	case InlineLink:
		s.linkActive = true
		s.linkDest = ev.Dest
	}
}

func (s *renderState) endInline(ev Event) {
	switch ev.Inline {
	case InlineEmphasis:
		s.italic = false
	case InlineStrong:
		s.bold = false
	case InlineStrike:
		s.strike = false
	case InlineLink:
		if !s.linkActive {
			return
		}
		url := s.linkDest
		s.linkActive = false
		s.linkDest = ""
		if s.width > 0 {
			// Room for the surrounding " ()" around the URL.
			limit := s.width - ansitext.VisibleWidth(s.indentPrefix()) - 3
			if limit > 0 {
				url = fitURL(url, limit)
			}
		}
		s.current += ansitext.Styled(" ("+url+")", s.color, s.styles.LinkURL.Prefix)
	}
}

func (s *renderState) text(text string) {
	if s.inCodeBlock {
		for _, line := range strings.Split(text, "\n") {
			if s.color {
				s.pushLine(s.styles.Border.Prefix + "  │ " + ansitext.Reset + line)
			} else {
				s.pushLine("  | " + line)
			}
		}
		return
	}
	if s.inTableCell {
		s.tableCell += text
		return
	}
	if prefix := s.stylePrefix(); prefix != "" {
		s.current += prefix + text + ansitext.Reset
	} else {
		s.current += text
	}
}

func (s *renderState) inlineCode(code string) {
	if s.inTableCell {
		s.tableCell += code
		return
	}
	if s.color {
		s.current += s.styles.CodeInline.Prefix + " " + code + " " + ansitext.Reset
	} else {
		s.current += "`" + code + "`"
	}
}

func (s *renderState) rule() {
	s.pushBlank()
	n := s.width
	if n < 1 {
		n = 1
	}
	s.pushLine(ansitext.Styled(strings.Repeat("─", n), s.color, s.styles.Rule.Prefix))
	s.pushBlank()
}

func (s *renderState) taskMarker(checked bool) {
	var marker string
	if checked {
		marker = ansitext.Styled("[✓]", s.color, s.styles.TaskChecked.Prefix)
	} else {
		marker = ansitext.Styled("[ ]", s.color, s.styles.TaskUnchecked.Prefix)
	}
	s.current += marker + " "
}

// itemMarker selects and styles the marker for the current list item,
// advancing the counter of an ordered list.
func (s *renderState) itemMarker() string {
	marker := "• "
	if n := len(s.listStack); n > 0 {
		ctx := &s.listStack[n-1]
		if ctx.ordered {
			marker = strconv.Itoa(ctx.next) + ". "
			ctx.next++
		} else {
			switch ctx.depth {
			case 0:
				marker = "• "
			case 1:
				marker = "◦ "
			default:
				marker = "▪ "
			}
		}
	}
	return ansitext.Styled(marker, s.color, s.styles.ListMarker.Prefix)
}

// stylePrefix composes the ANSI prefix for the active heading level and
// inline style flags. Empty when color is disabled.
func (s *renderState) stylePrefix() string {
	if !s.color {
		return ""
	}
	var b strings.Builder
	if s.heading > 0 {
		level := s.heading
		if level > 6 {
			level = 6
		}
		b.WriteString(s.styles.Heading[level-1].Prefix)
	}
	if s.bold {
		b.WriteString(s.styles.Strong.Prefix)
	}
	if s.italic {
		b.WriteString(s.styles.Emphasis.Prefix)
	}
	if s.strike {
		b.WriteString(s.styles.Strike.Prefix)
	}
	return b.String()
}

// indentPrefix builds the per-line prefix: the blockquote margin marker
// when active, followed by the list indent.
func (s *renderState) indentPrefix() string {
	var b strings.Builder
	if s.inQuote {
		if s.color {
			b.WriteString(s.styles.Quote.Prefix + "  │ " + ansitext.Reset)
		} else {
			b.WriteString("  | ")
		}
	}
	if s.indent > 0 {
		b.WriteString(strings.Repeat(" ", s.indent))
	}
	return b.String()
}

func (s *renderState) pushLine(line string) {
	s.lines = append(s.lines, line)
}

// pushBlank flushes pending content, then appends a blank line unless
// the last emitted line is already blank.
func (s *renderState) pushBlank() {
	s.flushWrapped()
	if n := len(s.lines); n == 0 || s.lines[n-1] != "" {
		s.lines = append(s.lines, "")
	}
}

// flushWrapped finalizes the current line buffer into one or more
// display lines: truncated in no-wrap mode, greedily word-wrapped
// otherwise. A zero available width emits a single overflowing line
// rather than failing.
func (s *renderState) flushWrapped() {
	if s.current == "" {
		return
	}
	text := s.current
	s.current = ""
	prefix := s.indentPrefix()
	available := s.width - ansitext.VisibleWidth(prefix)
	if available <= 0 {
		s.lines = append(s.lines, prefix+text)
		return
	}

	if s.noWrap {
		full := prefix + text
		if ansitext.VisibleWidth(full) <= s.width {
			s.lines = append(s.lines, full)
		} else {
			s.lines = append(s.lines, ansitext.Truncate(full, s.width-1, s.color))
		}
		return
	}

	line := prefix
	lineWidth := 0
	for _, word := range ansitext.Words(text) {
		wordWidth := ansitext.VisibleWidth(word)
		switch {
		case lineWidth == 0:
			// The first word always joins, even when wider than the
			// available width: overlong words overflow rather than
			// being split mid-word.
			line += word
			lineWidth = wordWidth
		case lineWidth+1+wordWidth <= available:
			line += " " + word
			lineWidth += 1 + wordWidth
		default:
			s.lines = append(s.lines, line)
			line = prefix + word
			lineWidth = wordWidth
		}
	}
	if lineWidth > 0 || line != "" {
		s.lines = append(s.lines, line)
	}
}

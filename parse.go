package mdp

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
)

// Parse converts Markdown source into the document event stream
// consumed by Render. The stream is finite, ordered, and emitted in
// document order.
func Parse(source []byte) []Event {
	doc := markdown.Parser().Parse(text.NewReader(source))
	w := eventWalker{source: source}
	_ = ast.Walk(doc, w.walk)
	return w.events
}

type eventWalker struct {
	source []byte
	events []Event
}

func (w *eventWalker) emit(ev Event) {
	w.events = append(w.events, ev)
}

func (w *eventWalker) block(entering bool, ev Event) {
	if entering {
		ev.Kind = EventStartBlock
	} else {
		ev.Kind = EventEndBlock
	}
	w.emit(ev)
}

func (w *eventWalker) inline(entering bool, ev Event) {
	if entering {
		ev.Kind = EventStartInline
	} else {
		ev.Kind = EventEndInline
	}
	w.emit(ev)
}

func (w *eventWalker) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Document, *ast.TextBlock:
		// TextBlock is the body of a tight list item; its text flows
		// straight into the item line.

	case *ast.Heading:
		w.block(entering, Event{Block: BlockHeading, Level: n.Level})

	case *ast.Paragraph:
		w.block(entering, Event{Block: BlockParagraph})

	case *ast.Blockquote:
		w.block(entering, Event{Block: BlockQuote})

	case *ast.FencedCodeBlock:
		if entering {
			w.block(true, Event{Block: BlockCode, Info: string(n.Language(w.source))})
			w.emit(Event{Kind: EventText, Text: w.blockLines(n)})
			return ast.WalkSkipChildren, nil
		}
		w.block(false, Event{Block: BlockCode})

	case *ast.CodeBlock:
		if entering {
			w.block(true, Event{Block: BlockCode})
			w.emit(Event{Kind: EventText, Text: w.blockLines(n)})
			return ast.WalkSkipChildren, nil
		}
		w.block(false, Event{Block: BlockCode})

	case *ast.List:
		ev := Event{Block: BlockList}
		if n.IsOrdered() {
			ev.Ordered = true
			ev.Start = n.Start
		}
		w.block(entering, ev)

	case *ast.ListItem:
		w.block(entering, Event{Block: BlockListItem})

	case *ast.Text:
		if entering {
			w.emit(Event{Kind: EventText, Text: string(n.Segment.Value(w.source))})
			if n.HardLineBreak() {
				w.emit(Event{Kind: EventHardBreak})
			} else if n.SoftLineBreak() {
				w.emit(Event{Kind: EventSoftBreak})
			}
		}

	case *ast.String:
		if entering {
			w.emit(Event{Kind: EventText, Text: string(n.Value)})
		}

	case *ast.CodeSpan:
		if entering {
			w.emit(Event{Kind: EventInlineCode, Text: w.childText(n)})
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		if n.Level >= 2 {
			w.inline(entering, Event{Inline: InlineStrong})
		} else {
			w.inline(entering, Event{Inline: InlineEmphasis})
		}

	case *east.Strikethrough:
		w.inline(entering, Event{Inline: InlineStrike})

	case *ast.Link:
		w.inline(entering, Event{Inline: InlineLink, Dest: string(n.Destination)})

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			w.inline(true, Event{Inline: InlineLink, Dest: url})
			w.emit(Event{Kind: EventText, Text: string(n.Label(w.source))})
			w.inline(false, Event{Inline: InlineLink})
		}

	case *ast.Image:
		// Unstyled: the alt text flows through as plain text, like
		// any other unhandled inline container.

	case *ast.ThematicBreak:
		if entering {
			w.emit(Event{Kind: EventRule})
		}

	case *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil

	case *east.Table:
		w.block(entering, Event{Block: BlockTable, Alignments: tableAlignments(n)})

	case *east.TableHeader:
		w.block(entering, Event{Block: BlockTableHead})

	case *east.TableRow:
		w.block(entering, Event{Block: BlockTableRow})

	case *east.TableCell:
		w.block(entering, Event{Block: BlockTableCell})

	case *east.TaskCheckBox:
		if entering {
			w.emit(Event{Kind: EventTaskMarker, Checked: n.IsChecked})
		}
	}
	return ast.WalkContinue, nil
}

// blockLines concatenates the physical lines of a code block, without
// the block's trailing newline.
func (w *eventWalker) blockLines(n ast.Node) string {
	var b []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b = append(b, seg.Value(w.source)...)
	}
	if len(b) > 0 && b[len(b)-1] == '\n' {
		b = b[:len(b)-1]
	}
	return string(b)
}

// childText flattens the text node children of an inline container.
func (w *eventWalker) childText(n ast.Node) string {
	var b []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b = append(b, t.Segment.Value(w.source)...)
		}
	}
	return string(b)
}

func tableAlignments(t *east.Table) []Alignment {
	if len(t.Alignments) == 0 {
		return nil
	}
	aligns := make([]Alignment, len(t.Alignments))
	for i, a := range t.Alignments {
		switch a {
		case east.AlignLeft:
			aligns[i] = AlignLeft
		case east.AlignCenter:
			aligns[i] = AlignCenter
		case east.AlignRight:
			aligns[i] = AlignRight
		default:
			aligns[i] = AlignNone
		}
	}
	return aligns
}

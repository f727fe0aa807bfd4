package mdp

// EventKind discriminates the variants of Event.
type EventKind uint8

const (
	// EventStartBlock opens a block-level construct.
	EventStartBlock EventKind = iota
	// EventEndBlock closes a block-level construct.
	EventEndBlock
	// EventStartInline opens an inline span.
	EventStartInline
	// EventEndInline closes an inline span.
	EventEndInline
	// EventText carries literal text.
	EventText
	// EventInlineCode carries an inline code span.
	EventInlineCode
	// EventSoftBreak is a soft line break within a paragraph.
	EventSoftBreak
	// EventHardBreak forces a new output line.
	EventHardBreak
	// EventRule is a thematic break.
	EventRule
	// EventTaskMarker is a task-list checkbox.
	EventTaskMarker
)

// BlockKind identifies a block-level construct.
type BlockKind uint8

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockQuote
	BlockCode
	BlockList
	BlockListItem
	BlockTable
	BlockTableHead
	BlockTableRow
	BlockTableCell
)

// InlineKind identifies an inline span.
type InlineKind uint8

const (
	InlineEmphasis InlineKind = iota
	InlineStrong
	InlineStrike
	InlineLink
)

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Event is one step of a parsed document stream. Kind selects the
// variant; the remaining fields are meaningful only for the kinds that
// document them.
type Event struct {
	Kind   EventKind
	Block  BlockKind  // StartBlock, EndBlock
	Inline InlineKind // StartInline, EndInline

	Level      int         // heading level, 1-6
	Info       string      // code block language label, may be empty
	Ordered    bool        // list carries an item counter
	Start      int         // first number of an ordered list
	Dest       string      // link destination
	Alignments []Alignment // table column alignments
	Text       string      // Text and InlineCode payload
	Checked    bool        // task marker state
}

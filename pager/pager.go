// Package pager displays pre-rendered lines one screenful at a time
// with keyboard navigation, in the manner of more(1).
//
// The pager never touches the rendering pipeline: it consumes finished
// display lines and a title, and owns only the scroll offset. When the
// viewport cannot page (no usable rows, or the content already fits on
// one screen) the lines are written out once and control returns
// immediately.
package pager

import (
	"fmt"
	"io"
	"strings"

	"pkt.systems/mdp/internal/ansitext"
)

const (
	clearScreen  = "\x1b[2J\x1b[H"
	reverseVideo = "\x1b[7m"

	helpLegend = " [Space] next  [b] back  [q] quit "
)

// Run pages through lines interactively on t. Raw input mode is held
// for the duration of the session and released on every exit path,
// including terminal I/O failures, before the error is propagated.
func Run(lines []string, title string, t Terminal) error {
	_, height := t.Size()
	pageHeight := height - 1 // one row reserved for the status bar
	if pageHeight <= 0 || len(lines) <= pageHeight {
		return dumpLines(t, lines)
	}

	restore, err := t.Raw()
	if err != nil {
		return err
	}
	loopErr := loop(t, lines, pageHeight, title)
	restoreErr := restore()
	// Leave the cursor on a fresh line below the status bar.
	_, writeErr := io.WriteString(t, "\r\n")
	if loopErr != nil {
		return loopErr
	}
	if restoreErr != nil {
		return restoreErr
	}
	return writeErr
}

func dumpLines(t Terminal, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(t, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func loop(t Terminal, lines []string, pageHeight int, title string) error {
	total := len(lines)
	maxOffset := total - pageHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := 0
	if err := draw(t, lines, offset, pageHeight, title); err != nil {
		return err
	}
	for {
		key, err := t.ReadKey()
		if err != nil {
			return err
		}
		switch {
		case key.Kind == KeyEscape || key.Kind == KeyCtrlC || key.is('q'):
			return nil
		case key.Kind == KeyPageDown || key.Kind == KeyCtrlF || key.is(' '):
			offset += pageHeight
		case key.Kind == KeyPageUp || key.is('b'):
			offset -= pageHeight
		case key.Kind == KeyEnter || key.Kind == KeyDown || key.is('j'):
			offset++
		case key.Kind == KeyUp || key.is('k'):
			offset--
		case key.Kind == KeyHome || key.is('g'):
			offset = 0
		case key.Kind == KeyEnd || key.is('G'):
			offset = maxOffset
		case key.is('d'):
			offset += pageHeight / 2
		case key.is('u'):
			offset -= pageHeight / 2
		default:
			continue
		}
		if offset < 0 {
			offset = 0
		}
		if offset > maxOffset {
			offset = maxOffset
		}
		if err := draw(t, lines, offset, pageHeight, title); err != nil {
			return err
		}
	}
}

func (k Key) is(r rune) bool {
	return k.Kind == KeyRune && k.Rune == r
}

// draw repaints the whole screen: the visible line slice, filler rows
// when the slice comes up short, and the status bar. The terminal
// width is re-measured on every draw so a resize between key events is
// picked up.
func draw(t Terminal, lines []string, offset, pageHeight int, title string) error {
	total := len(lines)
	end := offset + pageHeight
	if end > total {
		end = total
	}
	var b strings.Builder
	b.WriteString(clearScreen)
	for _, line := range lines[offset:end] {
		b.WriteString(line)
		b.WriteString("\r\n")
	}
	for i := end - offset; i < pageHeight; i++ {
		b.WriteString("~\r\n")
	}
	b.WriteString(statusBar(t, title, offset, end, total))
	_, err := io.WriteString(t, b.String())
	return err
}

func statusBar(t Terminal, title string, offset, end, total int) string {
	pct := 100
	if total > 0 {
		// round(100 * end / total) in integer arithmetic
		pct = (200*end + total) / (2 * total)
	}
	status := fmt.Sprintf(" %s | lines %d-%d of %d (%d%%) ", title, offset+1, end, total, pct)
	width, _ := t.Size()
	padding := ""
	if used := ansitext.VisibleWidth(status) + ansitext.VisibleWidth(helpLegend); width > used {
		padding = strings.Repeat(" ", width-used)
	}
	return reverseVideo + status + padding + helpLegend + ansitext.Reset
}

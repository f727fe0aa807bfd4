// Package ansitext measures and manipulates text that carries embedded
// ANSI escape sequences.
//
// Everything here folds over a single escape-run scanner so that width
// measurement, truncation and word splitting agree on what counts as
// visible. An escape run starts at ESC and ends at (and includes) the
// first subsequent ASCII letter; an unterminated run consumes the rest
// of the string and contributes zero width.
package ansitext

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Reset clears all active SGR attributes.
const Reset = "\x1b[0m"

// Ellipsis marks truncated text.
const Ellipsis = "…"

const escIntroducer = 0x1b

// Tokens iterates s as a sequence of tokens. Each visible rune is
// yielded on its own with escape=false; each escape run is yielded
// whole with escape=true.
func Tokens(s string) iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for i := 0; i < len(s); {
			if s[i] == escIntroducer {
				j := i + 1
				for j < len(s) && !isASCIILetter(s[j]) {
					j++
				}
				if j < len(s) {
					j++
				}
				if !yield(s[i:j], true) {
					return
				}
				i = j
				continue
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			if !yield(s[i:i+size], false) {
				return
			}
			i += size
		}
	}
}

// VisibleWidth returns the number of character cells s occupies,
// counting one cell per rune outside escape runs.
func VisibleWidth(s string) int {
	width := 0
	for _, escape := range Tokens(s) {
		if !escape {
			width++
		}
	}
	return width
}

// Styled wraps text with the concatenation of codes followed by a
// reset. It returns text unchanged when color is disabled or no codes
// are given.
func Styled(text string, color bool, codes ...string) string {
	if !color {
		return text
	}
	var prefix strings.Builder
	for _, code := range codes {
		prefix.WriteString(code)
	}
	if prefix.Len() == 0 {
		return text
	}
	return prefix.String() + text + Reset
}

// Truncate copies s until maxVisible visible runes have been copied,
// passing escape runs through uncounted, then appends a reset (when
// color is enabled) and an ellipsis. The result is at most
// maxVisible+1 cells wide.
func Truncate(s string, maxVisible int, color bool) string {
	var b strings.Builder
	visible := 0
	for tok, escape := range Tokens(s) {
		if escape {
			b.WriteString(tok)
			continue
		}
		if visible >= maxVisible {
			break
		}
		b.WriteString(tok)
		visible++
	}
	if color {
		b.WriteString(Reset)
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// Words splits s into maximal runs of non-whitespace runes, keeping
// any escape runs attached to the word they touch. The whitespace
// itself is discarded; callers re-insert separators while packing.
func Words(s string) []string {
	var words []string
	var cur strings.Builder
	hasVisible := false
	for tok, escape := range Tokens(s) {
		switch {
		case escape:
			cur.WriteString(tok)
		case tok == " " || tok == "\t":
			if hasVisible {
				words = append(words, cur.String())
				cur.Reset()
				hasVisible = false
			}
		default:
			cur.WriteString(tok)
			hasVisible = true
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	return words
}

// Strip removes every escape run from s.
func Strip(s string) string {
	var b strings.Builder
	for tok, escape := range Tokens(s) {
		if !escape {
			b.WriteString(tok)
		}
	}
	return b.String()
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

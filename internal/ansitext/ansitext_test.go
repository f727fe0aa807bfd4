package ansitext

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},
		{"\x1b[1mbold\x1b[0m", 4},
		{"\x1b[38;5;214mx\x1b[0m", 1},
		{"a\x1b[", 1}, // unterminated run swallows the tail
		{"•", 1},
		{"日本語", 3}, // one cell per rune, wide or not
	}
	for _, c := range cases {
		if got := VisibleWidth(c.in); got != c.want {
			t.Fatalf("VisibleWidth(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestStyled(t *testing.T) {
	if got := Styled("text", false, "\x1b[1m"); got != "text" {
		t.Fatalf("color off should pass through, got %q", got)
	}
	if got := Styled("text", true); got != "text" {
		t.Fatalf("no codes should pass through, got %q", got)
	}
	got := Styled("text", true, "\x1b[1m", "\x1b[97m")
	want := "\x1b[1m\x1b[97mtext" + Reset
	if got != want {
		t.Fatalf("Styled = %q, want %q", got, want)
	}
}

func TestStyledWidthMatchesPlain(t *testing.T) {
	for _, s := range []string{"", "a", "some words here", "héllo wörld"} {
		plain := len([]rune(s))
		if got := VisibleWidth(Styled(s, true, "\x1b[1m", "\x1b[96m")); got != plain {
			t.Fatalf("styled width of %q = %d, want %d", s, got, plain)
		}
	}
}

func TestTruncate(t *testing.T) {
	got := Truncate("hello world", 5, false)
	if got != "hello"+Ellipsis {
		t.Fatalf("Truncate = %q", got)
	}
	if w := VisibleWidth(got); w != 6 {
		t.Fatalf("truncated width = %d, want 6", w)
	}

	// Escape runs pass through uncounted and are retained.
	styled := "\x1b[1mhello\x1b[0m world"
	got = Truncate(styled, 7, true)
	if !strings.HasPrefix(got, "\x1b[1mhello\x1b[0m w") {
		t.Fatalf("escape runs not preserved: %q", got)
	}
	if !strings.HasSuffix(got, Reset+Ellipsis) {
		t.Fatalf("missing reset before ellipsis: %q", got)
	}
	if w := VisibleWidth(got); w != 8 {
		t.Fatalf("truncated width = %d, want 8", w)
	}
}

func TestWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one two\tthree", []string{"one", "two", "three"}},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}},
		{"\x1b[1mbold\x1b[0m word", []string{"\x1b[1mbold\x1b[0m", "word"}},
	}
	for _, c := range cases {
		got := Words(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("Words(%q) = %q, want %q", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("Words(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("\x1b[1m\x1b[97mtitle\x1b[0m rest"); got != "title rest" {
		t.Fatalf("Strip = %q", got)
	}
	if got := Strip("plain"); got != "plain" {
		t.Fatalf("Strip = %q", got)
	}
}

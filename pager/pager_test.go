package pager

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"pkt.systems/mdp/internal/ansitext"
)

// fakeTerm scripts a key sequence and captures everything the pager
// draws. ReadKey failing after the script runs out keeps tests from
// hanging when the pager asks for more input than expected.
type fakeTerm struct {
	width, height int
	keys          []Key
	out           strings.Builder
	rawCalls      int
	restoreCalls  int
}

var errScriptDone = errors.New("script exhausted")

func newFakeTerm(width, height int, keys ...Key) *fakeTerm {
	return &fakeTerm{width: width, height: height, keys: keys}
}

func (f *fakeTerm) Write(p []byte) (int, error) { return f.out.Write(p) }

func (f *fakeTerm) Size() (int, int) { return f.width, f.height }

func (f *fakeTerm) Raw() (func() error, error) {
	f.rawCalls++
	return func() error {
		f.restoreCalls++
		return nil
	}, nil
}

func (f *fakeTerm) ReadKey() (Key, error) {
	if len(f.keys) == 0 {
		return Key{}, errScriptDone
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func rn(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestRunDumpsWhenContentFits(t *testing.T) {
	f := newFakeTerm(80, 24)
	lines := numberedLines(5)
	if err := Run(lines, "doc", f); err != nil {
		t.Fatalf("run: %v", err)
	}
	if f.rawCalls != 0 {
		t.Fatalf("raw mode entered for fitting content")
	}
	want := strings.Join(lines, "\n") + "\n"
	if f.out.String() != want {
		t.Fatalf("dump mismatch:\n got %q\nwant %q", f.out.String(), want)
	}
}

func TestRunDumpsWhenNoUsableRows(t *testing.T) {
	f := newFakeTerm(80, 1)
	if err := Run(numberedLines(50), "doc", f); err != nil {
		t.Fatalf("run: %v", err)
	}
	if f.rawCalls != 0 {
		t.Fatalf("raw mode entered without usable rows")
	}
}

func TestRunQuitShowsFirstPage(t *testing.T) {
	f := newFakeTerm(80, 11, rn('q'))
	if err := Run(numberedLines(50), "doc", f); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := f.out.String()
	if !strings.Contains(out, "line 1\r\n") || !strings.Contains(out, "line 10\r\n") {
		t.Fatalf("first page not drawn: %q", out)
	}
	if strings.Contains(out, "line 11\r\n") {
		t.Fatalf("line beyond first page drawn: %q", out)
	}
	if !strings.Contains(out, " doc | lines 1-10 of 50 (20%) ") {
		t.Fatalf("status bar missing: %q", out)
	}
	if f.rawCalls != 1 || f.restoreCalls != 1 {
		t.Fatalf("raw/restore calls = %d/%d, want 1/1", f.rawCalls, f.restoreCalls)
	}
	if !strings.HasSuffix(out, "\r\n") {
		t.Fatalf("missing trailing newline after session")
	}
}

func TestRunNavigationClamps(t *testing.T) {
	// Page height 10 over 25 lines: maxOffset is 15.
	f := newFakeTerm(80, 11,
		rn(' '),             // -> 11-20
		rn(' '),             // -> 16-25, clamped
		rn(' '),             // stays 16-25
		Key{Kind: KeyUp},    // -> 15-24
		rn('g'),             // -> 1-10
		rn('b'),             // stays 1-10
		rn('G'),             // -> 16-25
		rn('u'),             // -> 11-20
		rn('d'),             // -> 16-25
		Key{Kind: KeyEnter}, // clamped, stays 16-25
		rn('q'),
	)
	if err := Run(numberedLines(25), "doc", f); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := f.out.String()
	var ranges []string
	for _, frame := range strings.Split(out, clearScreen) {
		if idx := strings.Index(frame, "| lines "); idx >= 0 {
			rest := frame[idx+2:]
			ranges = append(ranges, rest[:strings.Index(rest, " of")])
		}
	}
	want := []string{
		"lines 1-10", "lines 11-20", "lines 16-25", "lines 16-25",
		"lines 15-24", "lines 1-10", "lines 1-10", "lines 16-25",
		"lines 11-20", "lines 16-25", "lines 16-25",
	}
	if len(ranges) != len(want) {
		t.Fatalf("frame count = %d, want %d: %q", len(ranges), len(want), ranges)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Fatalf("frame %d = %q, want %q", i, ranges[i], want[i])
		}
	}
}

func TestRunUnmappedKeyDoesNotRedraw(t *testing.T) {
	f := newFakeTerm(80, 11, rn('x'), Key{Kind: KeyUnknown}, rn('q'))
	if err := Run(numberedLines(50), "doc", f); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(f.out.String(), clearScreen); n != 1 {
		t.Fatalf("draw count = %d, want 1", n)
	}
}

func TestDrawPadsShortPage(t *testing.T) {
	f := newFakeTerm(80, 11)
	if err := draw(f, numberedLines(3), 0, 10, "doc"); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if n := strings.Count(f.out.String(), "~\r\n"); n != 7 {
		t.Fatalf("filler rows = %d, want 7", n)
	}
}

func TestStatusBarWidthAndContent(t *testing.T) {
	f := newFakeTerm(100, 11)
	bar := statusBar(f, "notes.md", 0, 10, 50)
	if !strings.HasPrefix(bar, reverseVideo) || !strings.HasSuffix(bar, ansitext.Reset) {
		t.Fatalf("status bar not reverse-video wrapped: %q", bar)
	}
	if !strings.Contains(bar, " notes.md | lines 1-10 of 50 (20%) ") {
		t.Fatalf("status text mismatch: %q", bar)
	}
	if !strings.Contains(bar, helpLegend) {
		t.Fatalf("help legend missing: %q", bar)
	}
	if w := ansitext.VisibleWidth(bar); w != 100 {
		t.Fatalf("status bar width = %d, want 100", w)
	}
}

func TestStatusBarRounding(t *testing.T) {
	cases := []struct {
		end, total int
		want       string
	}{
		{10, 50, "(20%)"},
		{50, 50, "(100%)"},
		{1, 3, "(33%)"},
		{2, 3, "(67%)"},
		{0, 0, "(100%)"},
	}
	f := newFakeTerm(200, 24)
	for _, c := range cases {
		bar := statusBar(f, "t", 0, c.end, c.total)
		if !strings.Contains(bar, c.want) {
			t.Fatalf("statusBar(end=%d, total=%d) = %q, want %s", c.end, c.total, bar, c.want)
		}
	}
}

func TestRunReleasesRawOnReadError(t *testing.T) {
	f := newFakeTerm(80, 11) // empty script: first ReadKey fails
	err := Run(numberedLines(50), "doc", f)
	if !errors.Is(err, errScriptDone) {
		t.Fatalf("expected script error, got %v", err)
	}
	if f.restoreCalls != 1 {
		t.Fatalf("restore calls = %d, want 1", f.restoreCalls)
	}
}

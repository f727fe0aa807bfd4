package pager

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Terminal is the capability set the pager needs from the host
// terminal: dimensions, exclusive raw-mode input, key events, and a
// place to draw. Tests substitute a scripted implementation.
type Terminal interface {
	io.Writer
	// Size returns the terminal dimensions in character cells,
	// falling back to 80x24 when they cannot be determined.
	Size() (width, height int)
	// Raw switches the terminal into raw input mode for the duration
	// of a session. The returned restore function must be called
	// exactly once, on every exit path.
	Raw() (restore func() error, err error)
	// ReadKey blocks until one key event is available.
	ReadKey() (Key, error)
}

// TTY is a Terminal backed by a real terminal device, typically
// os.Stdin and os.Stdout.
type TTY struct {
	in  *os.File
	out *os.File
	r   *bufio.Reader
}

// NewTTY returns a Terminal reading keys from in and drawing to out.
func NewTTY(in, out *os.File) *TTY {
	return &TTY{in: in, out: out, r: bufio.NewReaderSize(in, 64)}
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size queries the output terminal, preferring it over the input side
// so paging a piped document still tracks the visible window.
func (t *TTY) Size() (int, int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

func (t *TTY) Raw() (func() error, error) {
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, err
	}
	return func() error {
		return term.Restore(int(t.in.Fd()), state)
	}, nil
}

func (t *TTY) ReadKey() (Key, error) {
	return decodeKey(t.r)
}

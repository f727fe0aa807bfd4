//go:build unix

package pager

import (
	"io"
	"testing"
	"time"

	"github.com/creack/pty"
)

// TestRunOnRealPTY drives a full pager session over a pseudo-terminal:
// raw mode, a drawn first page, and a clean quit.
func TestRunOnRealPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 10, Cols: 40}); err != nil {
		t.Fatalf("setsize: %v", err)
	}

	// Queue the quit key before the pager starts reading, and drain
	// everything it draws so writes never block.
	if _, err := ptmx.WriteString("q"); err != nil {
		t.Fatalf("write key: %v", err)
	}
	go io.Copy(io.Discard, ptmx)

	done := make(chan error, 1)
	go func() {
		done <- Run(numberedLines(50), "pty-doc", NewTTY(tty, tty))
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("pager did not exit")
	}
}

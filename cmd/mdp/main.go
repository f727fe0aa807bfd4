// Command mdp renders a Markdown document in the terminal and pages
// through it.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/mdp"
	"pkt.systems/mdp/pager"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	widthMargin      = 2
	fetchTimeout     = 30 * time.Second
)

func init() {
	version.SetDefaultModule("pkt.systems/mdp")
}

func main() {
	var (
		widthFlag   int
		themeName   string
		colorMode   string
		noWrap      bool
		noPager     bool
		listThemes  bool
		showVersion bool
	)
	flags := pflag.NewFlagSet("mdp", pflag.ExitOnError)
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.StringVarP(&colorMode, "color", "c", "auto", "Color output: auto|on|off")
	flags.BoolVar(&noWrap, "no-wrap", false, "Truncate long lines with an ellipsis instead of wrapping")
	flags.BoolVar(&noPager, "no-pager", false, "Print rendered output without paging")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: mdp [flags] [file|URL|-]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}
	if listThemes {
		for _, name := range mdp.AvailableThemes() {
			fmt.Println(name)
		}
		return
	}

	args := flags.Args()
	if len(args) > 1 {
		flags.Usage()
		os.Exit(2)
	}
	target := "-"
	if len(args) == 1 {
		target = args[0]
	}
	if target == "-" && isatty.IsTerminal(os.Stdin.Fd()) {
		flags.Usage()
		os.Exit(2)
	}

	src, title, err := readInput(target)
	if err != nil {
		fatalf("%v", err)
	}
	if err := mdp.ValidateInput(src); err != nil {
		fatalf("%s: %v", title, err)
	}
	body, meta := mdp.StripFrontMatter(src)
	if meta.Title != "" && (target == "-" || isURL(target)) {
		title = meta.Title
	}

	theme, ok := mdp.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		for _, name := range mdp.AvailableThemes() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(2)
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	color, err := resolveColor(colorMode, stdoutTTY)
	if err != nil {
		fatalf("invalid --color %q: %v", colorMode, err)
	}

	width := widthFlag
	if width <= 0 {
		width = terminalWidth(defaultWidth) - widthMargin
		if width < 1 {
			width = 1
		}
	}

	lines := mdp.Render(mdp.RenderRequest{
		Events: mdp.Parse(body),
		Width:  width,
		Theme:  theme,
		Color:  color,
		NoWrap: noWrap,
	})

	if noPager || !stdoutTTY {
		printLines(lines)
		return
	}
	in, closeIn, err := keyboardInput()
	if err != nil {
		// No controlling terminal for key input; fall back to a dump.
		printLines(lines)
		return
	}
	if closeIn != nil {
		defer closeIn()
	}
	if err := pager.Run(lines, title, pager.NewTTY(in, os.Stdout)); err != nil {
		fatalf("pager: %v", err)
	}
}

func printLines(lines []string) {
	w := os.Stdout
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// keyboardInput picks the file the pager reads keys from: stdin when
// it is a terminal, else the controlling terminal directly, so paging
// works for piped documents too.
func keyboardInput() (*os.File, func(), error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return os.Stdin, nil, nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, nil, err
	}
	return tty, func() { _ = tty.Close() }, nil
}

func readInput(target string) (src []byte, title string, err error) {
	switch {
	case target == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "(stdin)", nil
	case isURL(target):
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		data, err := mdp.Fetch(ctx, mdp.FetchRequest{URL: target})
		if err != nil {
			return nil, "", err
		}
		return data, target, nil
	default:
		data, err := os.ReadFile(target)
		if err != nil {
			return nil, "", err
		}
		return data, target, nil
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func resolveColor(mode string, tty bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return tty && mdp.DetectColorSupport(), nil
	case "on", "true", "1", "yes", "always":
		return true, nil
	case "off", "false", "0", "no", "never":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "mdp: "+format+"\n", args...)
	os.Exit(1)
}

package mdp

import (
	"sort"
	"strings"

	"pkt.systems/mdp/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Heading       [6]Style
	Emphasis      Style
	Strong        Style
	Strike        Style
	CodeInline    Style
	Quote         Style
	ListMarker    Style
	LinkURL       Style
	Rule          Style
	Border        Style
	TaskChecked   Style
	TaskUnchecked Style
}

// Theme provides named styles for Markdown rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Heading: [6]Style{
			style(palette.Bold, palette.Underline, p.H1),
			style(palette.Bold, p.H2),
			style(palette.Bold, p.H3),
			style(palette.Bold),
			style(palette.Bold),
			style(palette.Bold),
		},
		Emphasis:      style(palette.Italic),
		Strong:        style(palette.Bold),
		Strike:        style(palette.Strike),
		CodeInline:    style(p.CodeInline),
		Quote:         style(palette.Dim),
		ListMarker:    style(p.ListMarker),
		LinkURL:       style(palette.Dim),
		Rule:          style(palette.Dim),
		Border:        style(palette.Dim),
		TaskChecked:   style(palette.Bold, p.TaskChecked),
		TaskUnchecked: style(palette.Dim),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"mono":           theme{name: "mono", styles: stylesFromPalette(palette.PaletteMono)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDracula)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

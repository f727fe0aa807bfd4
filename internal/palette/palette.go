// Package palette defines ANSI SGR prefixes and the color palettes
// behind the built-in themes.
package palette

// Attribute prefixes shared by every palette.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Reverse   = "\x1b[7m"
	Strike    = "\x1b[9m"
)

// Palette carries the color half of a theme. Attributes such as bold
// headings or dim borders are applied structurally by the renderer and
// are the same for every palette.
type Palette struct {
	H1          string
	H2          string
	H3          string
	ListMarker  string
	TaskChecked string
	CodeInline  string
}

// PaletteDefault is the classic bright-ANSI look.
var PaletteDefault = Palette{
	H1:          "\x1b[97m",
	H2:          "\x1b[96m",
	H3:          "\x1b[93m",
	ListMarker:  "\x1b[36m",
	TaskChecked: "\x1b[32m",
	CodeInline:  "\x1b[48;5;236m",
}

// PaletteMono uses attributes only, no colors.
var PaletteMono = Palette{}

var PaletteGruvbox = Palette{
	H1:          "\x1b[38;5;223m",
	H2:          "\x1b[38;5;142m",
	H3:          "\x1b[38;5;214m",
	ListMarker:  "\x1b[38;5;109m",
	TaskChecked: "\x1b[38;5;142m",
	CodeInline:  "\x1b[48;5;237m",
}

var PaletteDracula = Palette{
	H1:          "\x1b[38;5;231m",
	H2:          "\x1b[38;5;212m",
	H3:          "\x1b[38;5;141m",
	ListMarker:  "\x1b[38;5;117m",
	TaskChecked: "\x1b[38;5;84m",
	CodeInline:  "\x1b[48;5;236m",
}

var PaletteSolarizedDark = Palette{
	H1:          "\x1b[38;5;230m",
	H2:          "\x1b[38;5;37m",
	H3:          "\x1b[38;5;136m",
	ListMarker:  "\x1b[38;5;33m",
	TaskChecked: "\x1b[38;5;64m",
	CodeInline:  "\x1b[48;5;235m",
}

var PaletteGithubLight = Palette{
	H1:          "\x1b[38;5;235m",
	H2:          "\x1b[38;5;26m",
	H3:          "\x1b[38;5;130m",
	ListMarker:  "\x1b[38;5;26m",
	TaskChecked: "\x1b[38;5;28m",
	CodeInline:  "\x1b[48;5;254m",
}

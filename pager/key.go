package pager

import "bufio"

// KeyKind identifies a decoded key event.
type KeyKind uint8

const (
	// KeyRune is a printable key; Rune holds the character.
	KeyRune KeyKind = iota
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyCtrlF
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	// KeyUnknown is any input the decoder does not map.
	KeyUnknown
)

// Key is one keyboard input event.
type Key struct {
	Kind KeyKind
	Rune rune
}

// decodeKey reads one key event from a raw-mode terminal stream. CSI
// and SS3 sequences arrive in a single write from the terminal, so a
// lone ESC with nothing buffered behind it is the Escape key itself;
// no inter-byte timeout is needed.
func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 0x03:
		return Key{Kind: KeyCtrlC}, nil
	case 0x06:
		return Key{Kind: KeyCtrlF}, nil
	case '\r', '\n':
		return Key{Kind: KeyEnter}, nil
	case 0x1b:
		return decodeEscape(r)
	}
	if b >= 0x20 && b < 0x7f {
		return Key{Kind: KeyRune, Rune: rune(b)}, nil
	}
	if b >= 0x80 {
		if err := r.UnreadByte(); err != nil {
			return Key{Kind: KeyUnknown}, nil
		}
		ru, _, err := r.ReadRune()
		if err != nil {
			return Key{}, err
		}
		return Key{Kind: KeyRune, Rune: ru}, nil
	}
	return Key{Kind: KeyUnknown}, nil
}

func decodeEscape(r *bufio.Reader) (Key, error) {
	if r.Buffered() == 0 {
		return Key{Kind: KeyEscape}, nil
	}
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != '[' && b != 'O' {
		return Key{Kind: KeyUnknown}, nil
	}
	b, err = r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	switch b {
	case 'A':
		return Key{Kind: KeyUp}, nil
	case 'B':
		return Key{Kind: KeyDown}, nil
	case 'H':
		return Key{Kind: KeyHome}, nil
	case 'F':
		return Key{Kind: KeyEnd}, nil
	}
	if b < '0' || b > '9' {
		return Key{Kind: KeyUnknown}, nil
	}
	num := []byte{b}
	for {
		b, err = r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if b >= '0' && b <= '9' {
			num = append(num, b)
			continue
		}
		if b != '~' {
			return Key{Kind: KeyUnknown}, nil
		}
		break
	}
	switch string(num) {
	case "1", "7":
		return Key{Kind: KeyHome}, nil
	case "4", "8":
		return Key{Kind: KeyEnd}, nil
	case "5":
		return Key{Kind: KeyPageUp}, nil
	case "6":
		return Key{Kind: KeyPageDown}, nil
	}
	return Key{Kind: KeyUnknown}, nil
}

package mdp

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// Meta holds the fields recognized in YAML front matter.
type Meta struct {
	Title string `yaml:"title"`
}

var frontMatterDelims = [][]byte{
	[]byte("---"),
	[]byte("+++"),
	[]byte(";;;"),
}

// StripFrontMatter removes a leading front-matter block from src and
// returns the document body. When the block is YAML (--- fences), any
// recognized metadata is decoded into Meta. Documents without a
// well-formed block pass through unchanged, including blocks whose
// closing delimiter never appears.
func StripFrontMatter(src []byte) ([]byte, Meta) {
	var meta Meta
	body := trimBOM(src)
	first, next, ok := cutLine(body)
	if !ok {
		return src, meta
	}
	delim := matchDelim(first)
	if delim == nil {
		return src, meta
	}
	second, _, ok := cutLine(body[next:])
	if !ok || !metadataLikely(second) {
		return src, meta
	}
	for off := next; off < len(body); {
		line, n, ok := cutLine(body[off:])
		if !ok {
			break
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			if bytes.Equal(delim, frontMatterDelims[0]) {
				_ = yaml.Unmarshal(body[next:off], &meta)
			}
			return body[off+n:], meta
		}
		off += n
	}
	return src, meta
}

// cutLine returns the first line of b without its terminator and the
// offset of the following line.
func cutLine(b []byte) (line []byte, next int, ok bool) {
	if len(b) == 0 {
		return nil, 0, false
	}
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return trimCR(b), len(b), true
	}
	return trimCR(b[:i]), i + 1, true
}

func matchDelim(line []byte) []byte {
	trimmed := bytes.TrimSpace(line)
	for _, d := range frontMatterDelims {
		if bytes.Equal(trimmed, d) {
			return d
		}
	}
	return nil
}

// metadataLikely reports whether a line looks like front-matter
// metadata rather than document text, so a leading thematic break is
// not mistaken for an opening fence.
func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsRune(trimmed, ':') || bytes.ContainsRune(trimmed, '=')
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}

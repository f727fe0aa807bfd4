package mdp

import "testing"

func TestStripFrontMatterYAML(t *testing.T) {
	src := []byte("---\ntitle: My Document\nauthor: amy\n---\n# Heading\n")
	body, meta := StripFrontMatter(src)
	if string(body) != "# Heading\n" {
		t.Fatalf("body = %q", body)
	}
	if meta.Title != "My Document" {
		t.Fatalf("title = %q", meta.Title)
	}
}

func TestStripFrontMatterTOMLDelims(t *testing.T) {
	src := []byte("+++\ntitle = \"Other\"\n+++\nbody\n")
	body, meta := StripFrontMatter(src)
	if string(body) != "body\n" {
		t.Fatalf("body = %q", body)
	}
	// Only YAML front matter is decoded.
	if meta.Title != "" {
		t.Fatalf("unexpected title %q from TOML block", meta.Title)
	}
}

func TestStripFrontMatterPassthrough(t *testing.T) {
	cases := [][]byte{
		[]byte("# Just a document\n"),
		[]byte("---\ntitle: never closed\nstill going\n"),
		[]byte("---\n\n---\nthematic breaks, not front matter\n"),
		[]byte(""),
	}
	for _, src := range cases {
		body, meta := StripFrontMatter(src)
		if string(body) != string(src) {
			t.Fatalf("input %q altered to %q", src, body)
		}
		if meta.Title != "" {
			t.Fatalf("input %q produced metadata %+v", src, meta)
		}
	}
}

func TestStripFrontMatterThematicBreakFirst(t *testing.T) {
	src := []byte("---\n\nA paragraph after a leading rule.\n")
	body, _ := StripFrontMatter(src)
	if string(body) != string(src) {
		t.Fatalf("leading thematic break consumed: %q", body)
	}
}

func TestStripFrontMatterCRLF(t *testing.T) {
	src := []byte("---\r\ntitle: CRLF\r\n---\r\nbody\r\n")
	body, meta := StripFrontMatter(src)
	if string(body) != "body\r\n" {
		t.Fatalf("body = %q", body)
	}
	if meta.Title != "CRLF" {
		t.Fatalf("title = %q", meta.Title)
	}
}

func TestStripFrontMatterBOM(t *testing.T) {
	src := []byte("\xef\xbb\xbf---\ntitle: BOM\n---\nbody\n")
	body, meta := StripFrontMatter(src)
	if string(body) != "body\n" {
		t.Fatalf("body = %q", body)
	}
	if meta.Title != "BOM" {
		t.Fatalf("title = %q", meta.Title)
	}
}

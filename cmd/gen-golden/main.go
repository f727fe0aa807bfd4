// Command gen-golden regenerates the golden render outputs under
// testdata/. Run it after deliberate rendering changes and review the
// diff before committing.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/mdp"
)

const goldenWidth = 80

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no markdown files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		body, _ := mdp.StripFrontMatter(src)
		lines := mdp.Render(mdp.RenderRequest{
			Events: mdp.Parse(body),
			Width:  goldenWidth,
			Theme:  mdp.DefaultTheme(),
		})
		goldenPath := strings.TrimSuffix(path, ".md") + ".golden"
		out := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(goldenPath, []byte(out), 0o644); err != nil {
			fatalf("write %s: %v", goldenPath, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", goldenPath)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

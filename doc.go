// Package mdp renders Markdown as ANSI-styled, width-constrained lines
// for terminal display.
//
// The package is split along one seam: Parse turns Markdown source into
// a flat stream of document events, and Render folds that stream into
// finished display lines. The two halves meet only at the event
// sequence, so either can be exercised on its own. Rendered lines are
// plain strings with styling already embedded; the pager subpackage
// displays them one screenful at a time.
//
// Example:
//
//	events := mdp.Parse([]byte("# Hello\n\nMarkdown in, ANSI out.\n"))
//	lines := mdp.Render(mdp.RenderRequest{
//		Events: events,
//		Width:  80,
//		Theme:  mdp.DefaultTheme(),
//		Color:  true,
//	})
//	for _, line := range lines {
//		fmt.Println(line)
//	}
//
// Render is pure: identical requests always produce identical lines.
package mdp

package mdp

import (
	"strings"

	"pkt.systems/mdp/internal/ansitext"
)

// minColumnWidth keeps degenerate columns wide enough for a border gap.
const minColumnWidth = 3

// renderTable lays out the accumulated rows as a box-drawn table and
// appends the result to the output. The first row is styled as a
// header and followed by a separator border. A table with no rows
// renders nothing.
func (s *renderState) renderTable() {
	defer func() {
		s.tableRows = nil
		s.tableAligns = nil
	}()
	if len(s.tableRows) == 0 {
		return
	}

	numCols := 0
	for _, row := range s.tableRows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	colWidths := make([]int, numCols)
	for _, row := range s.tableRows {
		for i, cell := range row {
			if w := ansitext.VisibleWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}
	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	s.tableBorder(colWidths, "┌", "┬", "┐")
	for rowIdx, row := range s.tableRows {
		s.tableDataRow(colWidths, numCols, row, rowIdx == 0)
		if rowIdx == 0 {
			s.tableBorder(colWidths, "├", "┼", "┤")
		}
	}
	s.tableBorder(colWidths, "└", "┴", "┘")
}

func (s *renderState) tableBorder(colWidths []int, left, mid, right string) {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(left)
	for i, w := range colWidths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(colWidths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	s.pushLine(ansitext.Styled(b.String(), s.color, s.styles.Border.Prefix))
}

func (s *renderState) tableDataRow(colWidths []int, numCols int, row []string, header bool) {
	bar := "  | "
	sep := " | "
	end := " |"
	if s.color {
		bar = "  " + s.styles.Border.Prefix + "│" + ansitext.Reset + " "
		sep = " " + s.styles.Border.Prefix + "│" + ansitext.Reset + " "
		end = " " + s.styles.Border.Prefix + "│" + ansitext.Reset
	}
	var b strings.Builder
	b.WriteString(bar)
	for i := 0; i < numCols; i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		padded := padCell(cell, colWidths[i])
		if header {
			padded = ansitext.Styled(padded, s.color, s.styles.Strong.Prefix)
		}
		b.WriteString(padded)
		if i < numCols-1 {
			b.WriteString(sep)
		}
	}
	b.WriteString(end)
	s.pushLine(b.String())
}

func padCell(cell string, width int) string {
	gap := width - ansitext.VisibleWidth(cell)
	if gap <= 0 {
		return cell
	}
	return cell + strings.Repeat(" ", gap)
}

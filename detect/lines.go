package detect

import "github.com/domino14/lextris/grid"

// posCell pairs a cell with its grid position so line scans can report the
// cells a match covers.
type posCell struct {
	pos  grid.Pos
	cell grid.Cell
}

func cols(cells [][]grid.Cell) int {
	if len(cells) == 0 {
		return 0
	}
	return len(cells[0])
}

func row(cells [][]grid.Cell, r int) []posCell {
	line := make([]posCell, len(cells[r]))
	for c := range cells[r] {
		line[c] = posCell{pos: grid.Pos{Row: r, Col: c}, cell: cells[r][c]}
	}
	return line
}

func column(cells [][]grid.Cell, c int) []posCell {
	line := make([]posCell, len(cells))
	for r := range cells {
		line[r] = posCell{pos: grid.Pos{Row: r, Col: c}, cell: cells[r][c]}
	}
	return line
}

func runWord(run []posCell) string {
	out := make([]rune, len(run))
	for i, pc := range run {
		out[i] = pc.cell.Letter
	}
	return string(out)
}

func runPositions(run []posCell) []grid.Pos {
	out := make([]grid.Pos, len(run))
	for i, pc := range run {
		out[i] = pc.pos
	}
	return out
}

// fullLineWord returns the line's letters and whether every cell is filled.
func fullLineWord(line []posCell) (string, bool) {
	out := make([]rune, len(line))
	for i, pc := range line {
		if pc.cell.Empty() {
			return "", false
		}
		out[i] = pc.cell.Letter
	}
	return string(out), true
}

package detect

import "github.com/domino14/lextris/grid"

// NeutralVowel is committed when no letter completes any word at a wildcard
// position.
const NeutralVowel = 'E'

// ResolveWildcard picks the concrete letter for a wildcard at (row, col):
// every letter of the alphabet is substituted into the position and the one
// yielding the longest dictionary word through the cell, horizontally or
// vertically, wins. Ties go to the alphabetically first letter.
func (d *Detector) ResolveWildcard(cells [][]grid.Cell, row, col int) rune {
	best := rune(NeutralVowel)
	bestLen := 0
	for ch := 'A'; ch <= 'Z'; ch++ {
		cells[row][col] = grid.Cell{Letter: ch}
		if n := d.longestThrough(cells, row, col); n > bestLen {
			best, bestLen = ch, n
		}
	}
	cells[row][col] = grid.Cell{}
	return best
}

// longestThrough returns the length of the longest dictionary word covering
// (row, col) along its row or column, or 0 if none.
func (d *Detector) longestThrough(cells [][]grid.Cell, row_, col_ int) int {
	h := d.longestInLine(row(cells, row_), col_)
	v := d.longestInLine(column(cells, col_), row_)
	if v > h {
		return v
	}
	return h
}

func (d *Detector) longestInLine(line []posCell, idx int) int {
	// Trim to the contiguous run containing idx.
	lo := idx
	for lo > 0 && !line[lo-1].cell.Empty() {
		lo--
	}
	hi := idx
	for hi < len(line)-1 && !line[hi+1].cell.Empty() {
		hi++
	}
	best := 0
	for i := lo; i <= idx; i++ {
		for j := idx + 1; j <= hi+1; j++ {
			if j-i < 2 || j-i <= best {
				continue
			}
			if d.lex.HasWord(runWord(line[i:j])) {
				best = j - i
			}
		}
	}
	return best
}

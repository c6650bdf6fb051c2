package grid

import (
	"errors"
	"strings"
	"unicode"
)

// ErrBadLayout signals layout rows that are empty or unequal in width.
var ErrBadLayout = errors.New("grid: layout rows must be non-empty and equal width")

const (
	// StandardRows and StandardCols are the dimensions of the shipped
	// Lextris board.
	StandardRows = 11
	StandardCols = 8

	StandardLayout = "Lextris"
)

// ParseRows builds a grid from string rows, one character per cell.
// Space and '.' mean empty; uppercase letters are concrete tiles; lowercase
// letters are tiles that were resolved from wildcards. All rows must be the
// same width. Used by tests and scripted starting positions.
func ParseRows(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrBadLayout
	}
	cols := len(rows[0])
	g := MakeGrid(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			return nil, ErrBadLayout
		}
		for c, ch := range line {
			if ch == ' ' || ch == '.' {
				continue
			}
			wildcard := unicode.IsLower(ch)
			if err := g.Set(r, c, unicode.ToUpper(ch), wildcard); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// String renders the grid in the same format ParseRows accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cell := g.sq[r][c]
			switch {
			case cell.Empty():
				sb.WriteByte('.')
			case cell.Wildcard:
				sb.WriteRune(unicode.ToLower(cell.Letter))
			default:
				sb.WriteRune(cell.Letter)
			}
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

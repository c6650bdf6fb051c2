package grid

import "errors"

// ErrOutOfBounds signals a coordinate outside the grid. Callers are expected
// to bounds-check before mutating; seeing this error is a programming error,
// never a player-visible condition.
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// Pos is a grid coordinate. Row 0 is the top of the grid.
type Pos struct {
	Row, Col int
}

// Cell is one square of the grid. The zero value is an empty cell.
// ID distinguishes cells placed in the same action, for swap/flash
// animations downstream; it is not needed for correctness.
type Cell struct {
	Letter   rune
	Wildcard bool
	ID       uint64
}

func (c Cell) Empty() bool {
	return c.Letter == 0
}

// Grid is the canonical board state. It is owned by the engine and mutated
// only through landing, clearing, gravity and power-up operations.
type Grid struct {
	rows, cols int
	sq         [][]Cell
	nextID     uint64
}

func MakeGrid(rows, cols int) *Grid {
	sq := make([][]Cell, rows)
	for i := range sq {
		sq[i] = make([]Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, sq: sq}
}

func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOccupied reports whether (row, col) holds a letter. Out-of-bounds
// coordinates count as empty.
func (g *Grid) IsOccupied(row, col int) bool {
	return g.InBounds(row, col) && !g.sq[row][col].Empty()
}

func (g *Grid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, ErrOutOfBounds
	}
	return g.sq[row][col], nil
}

// Set places a letter. Each placement gets a fresh cell ID.
func (g *Grid) Set(row, col int, letter rune, wildcard bool) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.nextID++
	g.sq[row][col] = Cell{Letter: letter, Wildcard: wildcard, ID: g.nextID}
	return nil
}

func (g *Grid) Clear(row, col int) error {
	if !g.InBounds(row, col) {
		return ErrOutOfBounds
	}
	g.sq[row][col] = Cell{}
	return nil
}

// Swap exchanges the contents of two cells, IDs included.
func (g *Grid) Swap(a, b Pos) error {
	if !g.InBounds(a.Row, a.Col) || !g.InBounds(b.Row, b.Col) {
		return ErrOutOfBounds
	}
	g.sq[a.Row][a.Col], g.sq[b.Row][b.Col] = g.sq[b.Row][b.Col], g.sq[a.Row][a.Col]
	return nil
}

func (g *Grid) ClearAll() {
	for r := range g.sq {
		for c := range g.sq[r] {
			g.sq[r][c] = Cell{}
		}
	}
}

// Snapshot returns a deep copy of the cells for scanning; mutating the copy
// does not affect the grid.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range g.sq {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.sq[r])
	}
	return out
}

// ApplyGravity compacts every column so occupied cells fall to the lowest
// open position, preserving relative order within the column. Returns the
// number of cells that moved; zero means the grid was already compact.
func (g *Grid) ApplyGravity() int {
	moved := 0
	for c := 0; c < g.cols; c++ {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			if g.sq[r][c].Empty() {
				continue
			}
			if r != write {
				g.sq[write][c] = g.sq[r][c]
				g.sq[r][c] = Cell{}
				moved++
			}
			write--
		}
	}
	return moved
}

// HasAdjacent reports whether any 4-directional neighbor of (row, col) is
// occupied. Out-of-grid neighbors count as empty.
func (g *Grid) HasAdjacent(row, col int) bool {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) && g.IsOccupied(r, c) {
			return true
		}
	}
	return false
}

// TopRowsCrowded reports whether any of the top n rows holds a letter.
// The generator switches to vowel-biased draws when this is true.
func (g *Grid) TopRowsCrowded(n int) bool {
	if n > g.rows {
		n = g.rows
	}
	for r := 0; r < n; r++ {
		for c := 0; c < g.cols; c++ {
			if g.IsOccupied(r, c) {
				return true
			}
		}
	}
	return false
}

func (g *Grid) OccupiedCount() int {
	n := 0
	for r := range g.sq {
		for c := range g.sq[r] {
			if !g.sq[r][c].Empty() {
				n++
			}
		}
	}
	return n
}

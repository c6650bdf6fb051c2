package game

import (
	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/tiles"
)

// Orientation of the falling block. The "-reversed" variants occupy the same
// cells as their base orientation but commit the letters in reverse read
// order.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	HorizontalReversed
	VerticalReversed
)

func (o Orientation) next() Orientation {
	return (o + 1) % 4
}

func (o Orientation) vertical() bool {
	return o == Vertical || o == VerticalReversed
}

func (o Orientation) reversed() bool {
	return o == HorizontalReversed || o == VerticalReversed
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case HorizontalReversed:
		return "horizontal-reversed"
	case VerticalReversed:
		return "vertical-reversed"
	default:
		return "horizontal"
	}
}

// placement is one cell of a falling block's footprint with the letter that
// would be committed there.
type placement struct {
	pos    grid.Pos
	letter tiles.Letter
}

// fallingBlock is the single block under player control. For 3-letter
// blocks the anchor is the middle letter; otherwise it is the first cell.
type fallingBlock struct {
	block  tiles.Block
	row    int
	col    int
	orient Orientation
}

// placementsAt computes the footprint for an arbitrary anchor/orientation,
// in ascending cell order. It does no bounds checking; callers validate.
func (fb *fallingBlock) placementsAt(row, col int, orient Orientation) []placement {
	w := fb.block.Width()
	letters := make([]tiles.Letter, w)
	copy(letters, fb.block.Letters)
	if orient.reversed() {
		for i, j := 0, w-1; i < j; i, j = i+1, j-1 {
			letters[i], letters[j] = letters[j], letters[i]
		}
	}

	out := make([]placement, w)
	for i := 0; i < w; i++ {
		off := i
		if w == 3 {
			off = i - 1 // center anchor
		}
		p := grid.Pos{Row: row, Col: col + off}
		if orient.vertical() {
			p = grid.Pos{Row: row + off, Col: col}
		}
		out[i] = placement{pos: p, letter: letters[i]}
	}
	return out
}

func (fb *fallingBlock) placements() []placement {
	return fb.placementsAt(fb.row, fb.col, fb.orient)
}

// word reads the footprint letters in cell order. Only meaningful when no
// letter is a wildcard.
func (fb *fallingBlock) word() string {
	ps := fb.placements()
	out := make([]rune, len(ps))
	for i, p := range ps {
		out[i] = p.letter.Rune
	}
	return string(out)
}

func (fb *fallingBlock) hasWildcard() bool {
	for _, l := range fb.block.Letters {
		if l.Wildcard {
			return true
		}
	}
	return false
}

// spawnColRange gives the inclusive legal anchor-column range for a block of
// the given width spawning horizontally on a board this wide.
func spawnColRange(width, cols int) (lo, hi int) {
	switch width {
	case 3:
		return 1, cols - 2
	case 2:
		return 0, cols - 2
	default:
		return 0, cols - 1
	}
}

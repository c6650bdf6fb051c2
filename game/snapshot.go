package game

import (
	"time"

	"github.com/samber/lo"

	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/tiles"
)

// BlockView is a queued block as the render sink sees it.
type BlockView struct {
	Letters []string
	Kind    string
}

// FallingView is the active block's footprint and letters in cell order.
type FallingView struct {
	Letters     []string
	Cells       []grid.Pos
	Orientation string
	Kind        string
}

// Snapshot is the read-only view emitted to the render/notification sink.
// Everything in it is a copy; holding one across ticks is safe.
type Snapshot struct {
	Rows, Cols int
	Cells      [][]grid.Cell

	Falling  *FallingView
	GhostRow int
	Queue    []BlockView

	Score      int
	LevelScore int
	Level      int
	Combo      int

	LastCleared []string
	History     []WordScore

	ScanCharges    int
	FlashTicksLeft int

	IsProcessing bool
	IsPaused     bool
	IsGameOver   bool
	IsLevelingUp bool

	DropInterval time.Duration
}

// Snapshot captures the current engine state for rendering.
func (g *Game) Snapshot() Snapshot {
	rows, cols := g.rules.Dims()
	snap := Snapshot{
		Rows:           rows,
		Cols:           cols,
		Cells:          g.grid.Snapshot(),
		GhostRow:       g.ghostRow(),
		Score:          g.score,
		LevelScore:     g.levelScore,
		Level:          g.level,
		Combo:          g.combo,
		LastCleared:    append([]string(nil), g.lastCleared...),
		History:        append([]WordScore(nil), g.history...),
		ScanCharges:    g.scanCharges,
		FlashTicksLeft: g.flashTicks,
		IsProcessing:   g.processing,
		IsPaused:       g.paused,
		IsGameOver:     g.gameOver,
		IsLevelingUp:   g.notifyTicks > 0,
		DropInterval:   g.DropInterval(),
	}
	snap.Queue = lo.Map(g.rack.Slots(), func(b tiles.Block, _ int) BlockView {
		return BlockView{
			Letters: lo.Map(b.Letters, func(l tiles.Letter, _ int) string {
				return l.String()
			}),
			Kind: b.Kind.String(),
		}
	})
	if fb := g.falling; fb != nil {
		ps := fb.placements()
		snap.Falling = &FallingView{
			Letters: lo.Map(ps, func(p placement, _ int) string {
				return p.letter.String()
			}),
			Cells: lo.Map(ps, func(p placement, _ int) grid.Pos {
				return p.pos
			}),
			Orientation: fb.orient.String(),
			Kind:        fb.block.Kind.String(),
		}
	}
	return snap
}

// ghostRow is the anchor row the falling block would land at if hard
// dropped, for the landing preview. -1 when no block is falling.
func (g *Game) ghostRow() int {
	fb := g.falling
	if fb == nil {
		return -1
	}
	row := fb.row
	for g.validAt(row+1, fb.col, fb.orient) {
		row++
	}
	return row
}

func (g *Game) validAt(row, col int, orient Orientation) bool {
	for _, p := range g.falling.placementsAt(row, col, orient) {
		if !g.grid.InBounds(p.pos.Row, p.pos.Col) ||
			g.grid.IsOccupied(p.pos.Row, p.pos.Col) {
			return false
		}
	}
	return true
}

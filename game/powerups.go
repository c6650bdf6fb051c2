package game

import (
	"github.com/rs/zerolog/log"

	"github.com/domino14/lextris/config"
	"github.com/domino14/lextris/detect"
	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/variant"
)

// impactOf locates the cell a bomb strikes: the occupied cell directly
// below its resting position, or the resting cell itself when it settles on
// the floor of an empty column.
func (g *Game) impactOf(fb *fallingBlock) grid.Pos {
	below := grid.Pos{Row: fb.row + 1, Col: fb.col}
	if g.grid.InBounds(below.Row, below.Col) && g.grid.IsOccupied(below.Row, below.Col) {
		return below
	}
	return grid.Pos{Row: fb.row, Col: fb.col}
}

// detonateLexical overwrites the impact cell with a random common vowel. It
// clears nothing itself; the cascade that follows may.
func (g *Game) detonateLexical(fb *fallingBlock) {
	p := g.impactOf(fb)
	vowel := g.bag.DrawVowel()
	g.grid.Set(p.Row, p.Col, vowel, false)
	log.Debug().Str("vowel", string(vowel)).
		Int("row", p.Row).Int("col", p.Col).Msg("lexical bomb")
	g.beginProcessing()
}

// detonateDestroyer clears the 3x3 neighborhood around the impact cell,
// 2 points per cleared cell, bypassing word validation.
func (g *Game) detonateDestroyer(fb *fallingBlock) {
	p := g.impactOf(fb)
	cleared := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := p.Row+dr, p.Col+dc
			if g.grid.InBounds(r, c) && g.grid.IsOccupied(r, c) {
				g.grid.Clear(r, c)
				cleared++
			}
		}
	}
	log.Debug().Int("cleared", cleared).Msg("destroyer bomb")
	g.addScore(2 * cleared)
	g.beginProcessing()
}

// ActivateScan consumes one charge and clears every column run that is a
// dictionary word. With zero charges it is a silent no-op and does not
// enter the cascade loop. A scan that finds nothing still costs its charge.
func (g *Game) ActivateScan() {
	if g.processing || g.paused || g.gameOver {
		return
	}
	if g.scanCharges == 0 {
		log.Debug().Msg("scan rejected: no charges")
		return
	}
	g.scanCharges--
	res := g.det.ScanColumns(g.grid.Snapshot(), variant.VarFreeScan.MinWordLength())
	if res.Points == 0 {
		return
	}
	g.applyScanResult(res)
	g.beginProcessing()
}

func (g *Game) applyScanResult(res detect.Result) {
	for p := range res.ClearSet() {
		g.grid.Clear(p.Row, p.Col)
	}
	var ledger []WordScore
	for _, w := range res.Words {
		ledger = append(ledger, WordScore{Word: w, Points: len(w) * len(w)})
	}
	g.recordWords(res.Words, ledger)
	log.Debug().Strs("words", res.Words).Int("points", res.Points).Msg("vertical scan")
	g.addScore(res.Points)
}

// ActivateFlashClear starts (or restarts) the timed buff that lowers the
// minimum clearable word length by one tier.
func (g *Game) ActivateFlashClear() {
	if g.paused || g.gameOver {
		return
	}
	g.flashTicks = g.cfgInt(config.ConfigFlashTicks)
	log.Debug().Int("ticks", g.flashTicks).Msg("flash clear active")
}

// ShuffleRack rearranges the letters held in the queue. It draws nothing
// new, so it stays available even while a cascade is processing; the rack
// is not part of the grid.
func (g *Game) ShuffleRack() {
	if g.paused || g.gameOver {
		return
	}
	g.rack.Shuffle()
}

// SwapSelect implements the two-step swap: the first call selects an
// occupied cell, the second swaps the pair and re-enters the cascade loop.
// Selecting the same cell again, or an empty one, cancels the selection.
func (g *Game) SwapSelect(row, col int) {
	if g.processing || g.paused || g.gameOver {
		return
	}
	if !g.grid.InBounds(row, col) {
		return
	}
	target := grid.Pos{Row: row, Col: col}
	if g.swapSel == nil {
		if g.grid.IsOccupied(row, col) {
			g.swapSel = &target
		}
		return
	}
	sel := *g.swapSel
	g.swapSel = nil
	if sel == target || !g.grid.IsOccupied(row, col) {
		return
	}
	g.grid.Swap(sel, target)
	log.Debug().
		Int("r1", sel.Row).Int("c1", sel.Col).
		Int("r2", target.Row).Int("c2", target.Col).Msg("swap")
	g.beginProcessing()
}

// Package game implements the cascading word-grid engine behind Lextris:
// a falling-block controller, word detection with cascade scoring, the
// power-up subsystem and level/score tracking. The engine is single-threaded
// and driven externally through Tick; a test harness can call Tick directly
// any number of times.
package game

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/lextris/config"
	"github.com/domino14/lextris/detect"
	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/tiles"
)

// WordScore is one ledger entry: a cleared word and the points it paid
// before any combo multiplier.
type WordScore struct {
	Word   string
	Points int
}

// Game owns all mutable session state. All mutation goes through its
// methods; there are no ambient globals.
type Game struct {
	rules *GameRules
	grid  *grid.Grid
	bag   *tiles.Bag
	rack  *tiles.Rack
	det   *detect.Detector
	rng   *frand.RNG

	falling    *fallingBlock
	processing bool
	paused     bool
	gameOver   bool

	score      int
	levelScore int
	level      int
	combo      int

	scanCharges int
	flashTicks  int
	notifyTicks int
	swapSel     *grid.Pos

	history     []WordScore
	lastCleared []string
	ticks       int
}

// NewGame builds a fresh session from the rules. The seed setting makes the
// whole session reproducible; seed 0 uses true entropy.
func NewGame(rules *GameRules) *Game {
	cfg := rules.Config()
	rows, cols := rules.Dims()
	bag := tiles.NewBag(rules.LetterDistribution(),
		uint64(cfg.GetInt(config.ConfigSeed)),
		cfg.GetFloat64(config.ConfigWildcardChance),
		cfg.GetFloat64(config.ConfigVowelBias))
	g := &Game{
		rules:       rules,
		grid:        grid.MakeGrid(rows, cols),
		bag:         bag,
		rack:        tiles.NewRack(bag, cfg.GetInt(config.ConfigBombCadence)),
		det:         detect.New(rules.Lexicon(), rules.Variant()),
		rng:         bag.RNG(),
		level:       1,
		scanCharges: cfg.GetInt(config.ConfigScanCharges),
	}
	log.Info().Str("lexicon", rules.LexiconName()).
		Str("variant", string(rules.Variant())).
		Int("rows", rows).Int("cols", cols).Msg("new game")
	return g
}

// Reset returns the session to its initial state. It is the only action
// accepted after game over.
func (g *Game) Reset() {
	g.grid.ClearAll()
	g.rack.Refill()
	g.falling = nil
	g.processing = false
	g.paused = false
	g.gameOver = false
	g.score = 0
	g.levelScore = 0
	g.level = 1
	g.combo = 0
	g.scanCharges = g.cfgInt(config.ConfigScanCharges)
	g.flashTicks = 0
	g.notifyTicks = 0
	g.swapSel = nil
	g.history = nil
	g.lastCleared = nil
	g.ticks = 0
	log.Info().Msg("game reset")
}

func (g *Game) cfgInt(key string) int {
	return g.rules.Config().GetInt(key)
}

// Tick advances the simulation one step: a cascade iteration while
// processing, otherwise a spawn or a one-row descent/landing of the falling
// block. Countdown timers (Flash Clear, level-up notification) also
// decrement here, so a test harness fast-forwards them by ticking.
func (g *Game) Tick() {
	if g.gameOver || g.paused {
		return
	}
	g.ticks++
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			log.Debug().Msg("flash clear expired")
		}
	}
	if g.notifyTicks > 0 {
		g.notifyTicks--
	}
	if g.processing {
		g.cascadeStep()
		return
	}
	if g.falling == nil {
		g.spawn()
		return
	}
	if !g.tryMove(g.falling.row+1, g.falling.col, g.falling.orient) {
		g.land()
	}
}

// tryMove validates the candidate footprint and commits the new anchor and
// orientation only if every cell is in-bounds and unoccupied. There is no
// partial-failure state.
func (g *Game) tryMove(row, col int, orient Orientation) bool {
	if !g.validAt(row, col, orient) {
		return false
	}
	g.falling.row, g.falling.col, g.falling.orient = row, col, orient
	return true
}

func (g *Game) spawn() {
	g.bag.SetVowelBias(g.grid.TopRowsCrowded(g.cfgInt(config.ConfigCrowdedRows)))
	block := g.rack.SpawnNext()
	_, cols := g.rules.Dims()
	lo, hi := spawnColRange(block.Width(), cols)
	fb := &fallingBlock{
		block:  block,
		row:    0,
		col:    lo + g.rng.Intn(hi-lo+1),
		orient: Horizontal,
	}
	for _, p := range fb.placements() {
		if g.grid.IsOccupied(p.pos.Row, p.pos.Col) {
			g.gameOver = true
			log.Info().Int("score", g.score).Int("level", g.level).
				Msg("game over: spawn blocked")
			return
		}
	}
	g.falling = fb
	log.Debug().Str("block", block.String()).Int("col", fb.col).Msg("spawn")
}

func (g *Game) land() {
	fb := g.falling
	g.falling = nil
	switch fb.block.Kind {
	case tiles.KindLexicalBomb:
		g.detonateLexical(fb)
	case tiles.KindDestroyerBomb:
		g.detonateDestroyer(fb)
	default:
		g.commitLanding(fb)
	}
}

// commitLanding writes a normal block into the grid. Wildcards resolve
// after the concrete letters are committed, so each resolution sees its
// blockmates. The solitary-word rule applies first: a 2-letter block that
// spells a word and touches no existing tile scores and vanishes without
// ever occupying the grid.
func (g *Game) commitLanding(fb *fallingBlock) {
	if fb.block.Width() == 2 && !fb.hasWildcard() {
		w := fb.word()
		if g.rules.Lexicon().HasWord(w) && !g.touchesGrid(fb) {
			pts := len(w) * len(w)
			g.recordWords([]string{w}, []WordScore{{Word: w, Points: pts}})
			g.addScore(pts)
			log.Debug().Str("word", w).Msg("solitary word bonus")
			return
		}
	}

	for _, p := range fb.placements() {
		if !p.letter.Wildcard {
			g.grid.Set(p.pos.Row, p.pos.Col, p.letter.Rune, false)
		}
	}
	for _, p := range fb.placements() {
		if p.letter.Wildcard {
			r := g.det.ResolveWildcard(g.grid.Snapshot(), p.pos.Row, p.pos.Col)
			g.grid.Set(p.pos.Row, p.pos.Col, r, true)
			log.Debug().Str("letter", string(r)).
				Int("row", p.pos.Row).Int("col", p.pos.Col).
				Msg("wildcard resolved")
		}
	}
	g.beginProcessing()
}

func (g *Game) touchesGrid(fb *fallingBlock) bool {
	for _, p := range fb.placements() {
		if g.grid.HasAdjacent(p.pos.Row, p.pos.Col) {
			return true
		}
	}
	return false
}

// beginProcessing enters the cascade loop. Spawns and block movement are
// gated until the loop exits on a scoreless pass.
func (g *Game) beginProcessing() {
	g.processing = true
	g.combo = 0
}

// cascadeStep runs one gravity-then-detect iteration. Points scored in pass
// n of a cascade are multiplied by 1 + 0.5*(n-1).
func (g *Game) cascadeStep() {
	g.grid.ApplyGravity()
	res := g.det.Scan(g.grid.Snapshot(), g.minWordLength())
	if res.Points == 0 {
		g.combo = 0
		g.processing = false
		return
	}
	g.combo++
	pts := res.Points + res.Points*(g.combo-1)/2
	for p := range res.ClearSet() {
		g.grid.Clear(p.Row, p.Col)
	}
	var ledger []WordScore
	for _, w := range res.Words {
		ledger = append(ledger, WordScore{Word: w, Points: len(w) * len(w)})
	}
	g.recordWords(res.Words, ledger)
	if res.Bingo != "" {
		log.Info().Str("word", res.Bingo).Msg("bingo")
	}
	log.Debug().Strs("words", res.Words).Int("points", pts).
		Int("combo", g.combo).Msg("cascade clear")
	g.addScore(pts)
}

func (g *Game) recordWords(words []string, ledger []WordScore) {
	g.lastCleared = words
	g.history = append(g.history, ledger...)
}

func (g *Game) addScore(pts int) {
	g.score += pts
	g.levelScore += pts
	if g.levelScore >= g.cfgInt(config.ConfigLevelThreshold) {
		g.levelUp()
	}
}

// levelUp clears the whole grid, discards any in-flight block and restores
// power-up charges.
func (g *Game) levelUp() {
	g.level++
	g.levelScore = 0
	g.grid.ClearAll()
	g.falling = nil
	g.processing = false
	g.combo = 0
	g.scanCharges = g.cfgInt(config.ConfigScanCharges)
	g.notifyTicks = g.cfgInt(config.ConfigNotifyTicks)
	log.Info().Int("level", g.level).Int("score", g.score).Msg("level up")
}

// minWordLength is the variant minimum, lowered one tier (never below 2)
// while Flash Clear is active.
func (g *Game) minWordLength() int {
	min := g.rules.Variant().MinWordLength()
	if g.flashTicks > 0 && min > 2 {
		min--
	}
	return min
}

func (g *Game) canAct() bool {
	return !g.processing && !g.paused && !g.gameOver && g.falling != nil
}

// MoveLeft shifts the falling block one column left. Rejections are silent
// no-ops, as with every movement action.
func (g *Game) MoveLeft() {
	if g.canAct() {
		g.tryMove(g.falling.row, g.falling.col-1, g.falling.orient)
	}
}

func (g *Game) MoveRight() {
	if g.canAct() {
		g.tryMove(g.falling.row, g.falling.col+1, g.falling.orient)
	}
}

// SoftDrop advances the block one row, landing it if it cannot descend.
func (g *Game) SoftDrop() {
	if !g.canAct() {
		return
	}
	if !g.tryMove(g.falling.row+1, g.falling.col, g.falling.orient) {
		g.land()
	}
}

// HardDrop sends the block straight down and lands it.
func (g *Game) HardDrop() {
	if !g.canAct() {
		return
	}
	for g.tryMove(g.falling.row+1, g.falling.col, g.falling.orient) {
	}
	g.land()
}

// Rotate cycles orientation. 2-letter blocks walk the full 4-state cycle;
// 3-letter blocks rotate about their center anchor. Single letters do not
// rotate.
func (g *Game) Rotate() {
	if g.canAct() && g.falling.block.Width() > 1 {
		g.tryMove(g.falling.row, g.falling.col, g.falling.orient.next())
	}
}

func (g *Game) Pause() {
	if !g.gameOver {
		g.paused = true
	}
}

func (g *Game) Resume() {
	g.paused = false
}

// DropInterval derives the tick interval from the level: geometric decay
// with a floor.
func (g *Game) DropInterval() time.Duration {
	cfg := g.rules.Config()
	ms := float64(cfg.GetInt(config.ConfigBaseDropMs)) *
		math.Pow(cfg.GetFloat64(config.ConfigDropDecay), float64(g.level-1))
	if floor := float64(cfg.GetInt(config.ConfigFloorDropMs)); ms < floor {
		ms = floor
	}
	return time.Duration(ms) * time.Millisecond
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Level() int {
	return g.level
}

func (g *Game) Combo() int {
	return g.combo
}

func (g *Game) ScanCharges() int {
	return g.scanCharges
}

func (g *Game) Processing() bool {
	return g.processing
}

func (g *Game) IsGameOver() bool {
	return g.gameOver
}

func (g *Game) IsPaused() bool {
	return g.paused
}

package game

import (
	"errors"

	"github.com/domino14/lextris/config"
	"github.com/domino14/lextris/lexicon"
	"github.com/domino14/lextris/tiles"
	"github.com/domino14/lextris/variant"
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	cfg      *config.Config
	dist     *tiles.LetterDistribution
	lexicon  lexicon.Lexicon
	variant  variant.Variant
	rows     int
	cols     int
	distname string
}

func (g GameRules) Config() *config.Config {
	return g.cfg
}

func (g GameRules) LetterDistribution() *tiles.LetterDistribution {
	return g.dist
}

func (g GameRules) Lexicon() lexicon.Lexicon {
	return g.lexicon
}

func (g GameRules) LexiconName() string {
	return g.lexicon.Name()
}

func (g GameRules) LetterDistributionName() string {
	return g.distname
}

func (g GameRules) Variant() variant.Variant {
	return g.variant
}

func (g GameRules) Dims() (rows, cols int) {
	return g.rows, g.cols
}

func NewBasicGameRules(cfg *config.Config, lex lexicon.Lexicon,
	v variant.Variant) (*GameRules, error) {

	dist, err := tiles.EnglishDistribution()
	if err != nil {
		return nil, err
	}

	switch v {
	case variant.VarFreeScan, variant.VarLineComplete, "":
		if v == "" {
			v = variant.VarFreeScan
		}
	default:
		return nil, errors.New("unsupported variant")
	}

	rows := cfg.GetInt(config.ConfigGridRows)
	cols := cfg.GetInt(config.ConfigGridCols)
	if rows < 4 || cols < 4 {
		return nil, errors.New("grid dimensions too small")
	}

	rules := &GameRules{
		cfg:      cfg,
		dist:     dist,
		distname: dist.Name,
		lexicon:  lex,
		variant:  v,
		rows:     rows,
		cols:     cols,
	}
	return rules, nil
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/lextris/config"
	"github.com/domino14/lextris/lexicon"
	"github.com/domino14/lextris/variant"
)

func TestNewBasicGameRules(t *testing.T) {
	cfg := config.NewConfig()
	lex := lexicon.NewWordSet("test", []string{"CAT"})

	rules, err := NewBasicGameRules(cfg, lex, variant.VarFreeScan)
	require.NoError(t, err)

	rows, cols := rules.Dims()
	assert.Equal(t, 11, rows)
	assert.Equal(t, 8, cols)
	assert.Equal(t, "test", rules.LexiconName())
	assert.Equal(t, "english", rules.LetterDistributionName())
	assert.Equal(t, variant.VarFreeScan, rules.Variant())
}

func TestRulesDefaultVariant(t *testing.T) {
	cfg := config.NewConfig()
	rules, err := NewBasicGameRules(cfg, &lexicon.AcceptAll{MaxLen: 15}, "")
	require.NoError(t, err)
	assert.Equal(t, variant.VarFreeScan, rules.Variant())
}

func TestRulesRejectsUnknownVariant(t *testing.T) {
	cfg := config.NewConfig()
	_, err := NewBasicGameRules(cfg, &lexicon.AcceptAll{MaxLen: 15}, "wordsmog")
	assert.Error(t, err)
}

func TestRulesRejectsTinyGrid(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Set(config.ConfigGridRows, 2)
	_, err := NewBasicGameRules(cfg, &lexicon.AcceptAll{MaxLen: 15}, variant.VarFreeScan)
	assert.Error(t, err)
}

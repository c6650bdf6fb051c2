package detect

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/lexicon"
	"github.com/domino14/lextris/variant"
)

func mustGrid(t *testing.T, rows []string) [][]grid.Cell {
	t.Helper()
	g, err := grid.ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g.Snapshot()
}

func TestFreeScanClearsLongestMatch(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"CAT", "AT"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"..CAT...",
	})
	res := d.Scan(cells, 2)

	// CAT wins over its inner AT; exactly 9 points.
	is.Equal(res.Points, 9)
	is.Equal(res.Words, []string{"CAT"})
	is.Equal(len(res.Matches), 1)
	is.Equal(len(res.ClearSet()), 3)
	is.True(res.ClearSet()[grid.Pos{Row: 10, Col: 2}])
	is.True(res.ClearSet()[grid.Pos{Row: 10, Col: 4}])
}

func TestFreeScanFindsColumns(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"GO"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"....",
		"G...",
		"O...",
		"X...",
	})
	res := d.Scan(cells, 2)
	is.Equal(res.Points, 4)
	is.Equal(res.Words, []string{"GO"})
	is.Equal(res.Matches[0].Cells, []grid.Pos{{Row: 1, Col: 0}, {Row: 2, Col: 0}})
}

func TestFreeScanDisjointWordsInOneRun(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"CAT", "DOG"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"CATDOG..",
	})
	res := d.Scan(cells, 2)
	is.Equal(res.Points, 18)
	is.Equal(len(res.Matches), 2)
}

func TestFreeScanBingo(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"SCRABBLE"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"........",
		"SCRABBLE",
	})
	res := d.Scan(cells, 2)
	is.Equal(res.Bingo, "SCRABBLE")
	// 64 for the word itself plus the full-row bonus.
	is.Equal(res.Points, 64+variant.VarFreeScan.BingoBonus())
}

func TestLineCompleteIgnoresPartialRows(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"CAT"})
	d := New(lex, variant.VarLineComplete)

	cells := mustGrid(t, []string{
		"..CAT...",
	})
	res := d.Scan(cells, 3)
	is.Equal(res.Points, 0)
	is.Equal(len(res.Matches), 0)
}

func TestLineCompleteOverlappingSubstrings(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"SCARED", "CARED"})
	d := New(lex, variant.VarLineComplete)

	cells := mustGrid(t, []string{
		"SCAREDLY",
	})
	res := d.Scan(cells, 3)

	// Both overlapping words award; LY is untouched.
	is.Equal(res.Points, 36+25)
	is.Equal(len(res.Matches), 2)
	set := res.ClearSet()
	is.Equal(len(set), 6)
	is.True(!set[grid.Pos{Row: 0, Col: 6}])
	is.True(!set[grid.Pos{Row: 0, Col: 7}])
}

func TestScanColumnsOnly(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"AT", "TA"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"A.",
		"T.",
		"AT", // row AT must not be matched by a column-only scan
	})
	res := d.ScanColumns(cells, 2)
	// Column 0 run is ATA: AT and TA overlap; one survives.
	is.Equal(res.Points, 4)
	is.Equal(len(res.Matches), 1)
}

func TestDedupLedgerWords(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"AT"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"AT.AT...",
	})
	res := d.Scan(cells, 2)
	// Two AT matches score independently but the ledger lists AT once.
	is.Equal(res.Points, 8)
	is.Equal(len(res.Matches), 2)
	is.Equal(res.Words, []string{"AT"})
}

func TestResolveWildcardPicksCompletingLetter(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"CAT"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"....",
		"C.T.",
	})
	is.Equal(d.ResolveWildcard(cells, 1, 1), 'A')
}

func TestResolveWildcardPrefersLongerWord(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"ON", "TON", "IN"})
	d := New(lex, variant.VarFreeScan)

	// Horizontal completion makes TON (3); vertical would make IN (2).
	cells := mustGrid(t, []string{
		".I.",
		"T.N",
	})
	is.Equal(d.ResolveWildcard(cells, 1, 1), 'O')
}

func TestResolveWildcardDefaultsToNeutralVowel(t *testing.T) {
	is := is.New(t)
	lex := lexicon.NewWordSet("t", []string{"ZZ"})
	d := New(lex, variant.VarFreeScan)

	cells := mustGrid(t, []string{
		"....",
		"C.T.",
	})
	is.Equal(d.ResolveWildcard(cells, 1, 1), rune(NeutralVowel))
}

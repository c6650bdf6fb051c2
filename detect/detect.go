// Package detect scans the grid for clearable dictionary words and resolves
// wildcard tiles. It never mutates the grid; callers pass a snapshot and
// apply the returned clear set themselves.
package detect

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/lextris/grid"
	"github.com/domino14/lextris/lexicon"
	"github.com/domino14/lextris/variant"
)

// Match is one dictionary word found on the grid, with the cells it covers.
type Match struct {
	Word   string
	Cells  []grid.Pos
	Points int
}

// Result is the outcome of one evaluation pass. Words is deduplicated for
// the ledger; Points counts every match, duplicates included.
type Result struct {
	Matches []Match
	Words   []string
	Points  int
	Bingo   string
}

func (r Result) ClearSet() map[grid.Pos]bool {
	set := make(map[grid.Pos]bool)
	for _, m := range r.Matches {
		for _, p := range m.Cells {
			set[p] = true
		}
	}
	return set
}

type Detector struct {
	lex lexicon.Lexicon
	v   variant.Variant
}

func New(lex lexicon.Lexicon, v variant.Variant) *Detector {
	return &Detector{lex: lex, v: v}
}

func (d *Detector) Variant() variant.Variant {
	return d.v
}

// Scan runs one evaluation pass under the detector's clearing policy.
// minLen is the effective minimum word length (the variant minimum, lowered
// during a Flash Clear buff).
func (d *Detector) Scan(cells [][]grid.Cell, minLen int) Result {
	var res Result
	if d.v == variant.VarLineComplete {
		res = d.scanFullRows(cells, minLen)
	} else {
		res = d.scanFree(cells, minLen)
	}
	res.Words = lo.Uniq(res.Words)
	return res
}

// ScanColumns scans only the columns, as the Vertical Scan power-up does.
// Runs use the free-scan minimum and selection regardless of variant.
func (d *Detector) ScanColumns(cells [][]grid.Cell, minLen int) Result {
	var res Result
	for c := 0; c < cols(cells); c++ {
		d.scanLine(column(cells, c), minLen, false, &res)
	}
	res.Words = lo.Uniq(res.Words)
	return res
}

// scanFree scans every row and column for maximal contiguous runs. Within a
// run, overlapping dictionary substrings collapse to a maximal
// non-overlapping set, longest first ("CAT" beats its inner "AT"). A full
// row spelling a single word additionally pays the bingo bonus.
func (d *Detector) scanFree(cells [][]grid.Cell, minLen int) Result {
	var res Result
	for r := 0; r < len(cells); r++ {
		d.scanLine(row(cells, r), minLen, false, &res)
	}
	for c := 0; c < cols(cells); c++ {
		d.scanLine(column(cells, c), minLen, false, &res)
	}
	for r := 0; r < len(cells); r++ {
		line := row(cells, r)
		if word, full := fullLineWord(line); full && d.lex.HasWord(word) {
			res.Bingo = word
			res.Points += d.v.BingoBonus()
		}
	}
	return res
}

// scanFullRows implements the line-complete policy: only entirely filled
// rows are considered, and every dictionary substring within such a row
// contributes, overlapping matches included.
func (d *Detector) scanFullRows(cells [][]grid.Cell, minLen int) Result {
	var res Result
	for r := 0; r < len(cells); r++ {
		line := row(cells, r)
		if _, full := fullLineWord(line); !full {
			continue
		}
		d.scanLine(line, minLen, true, &res)
	}
	return res
}

// scanLine finds every maximal contiguous run on the line and tests its
// substrings of at least minLen letters against the lexicon.
func (d *Detector) scanLine(line []posCell, minLen int, overlap bool, res *Result) {
	start := 0
	for start < len(line) {
		for start < len(line) && line[start].cell.Empty() {
			start++
		}
		end := start
		for end < len(line) && !line[end].cell.Empty() {
			end++
		}
		d.scanRun(line[start:end], minLen, overlap, res)
		start = end
	}
}

type span struct {
	i, j int // [i, j) within the run
}

func (d *Detector) scanRun(run []posCell, minLen int, overlap bool, res *Result) {
	var spans []span
	for i := 0; i < len(run); i++ {
		for j := i + minLen; j <= len(run); j++ {
			if d.lex.HasWord(runWord(run[i:j])) {
				spans = append(spans, span{i, j})
			}
		}
	}
	if !overlap {
		spans = selectMaximal(spans)
	}
	for _, s := range spans {
		m := Match{
			Word:   runWord(run[s.i:s.j]),
			Cells:  runPositions(run[s.i:s.j]),
			Points: (s.j - s.i) * (s.j - s.i),
		}
		res.Matches = append(res.Matches, m)
		res.Words = append(res.Words, m.Word)
		res.Points += m.Points
	}
}

// selectMaximal greedily keeps a non-overlapping subset of spans, preferring
// longer matches, then leftmost.
func selectMaximal(spans []span) []span {
	sort.Slice(spans, func(a, b int) bool {
		la, lb := spans[a].j-spans[a].i, spans[b].j-spans[b].i
		if la != lb {
			return la > lb
		}
		return spans[a].i < spans[b].i
	})
	var kept []span
	for _, s := range spans {
		clash := false
		for _, k := range kept {
			if s.i < k.j && k.i < s.j {
				clash = true
				break
			}
		}
		if !clash {
			kept = append(kept, s)
		}
	}
	sort.Slice(kept, func(a, b int) bool { return kept[a].i < kept[b].i })
	return kept
}

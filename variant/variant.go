package variant

type Variant string

const (
	// VarFreeScan clears any contiguous dictionary run found anywhere on
	// the grid after a landing.
	VarFreeScan Variant = "freescan"
	// VarLineComplete only scans rows that are entirely filled.
	// The two policies are genuinely divergent rule sets, not tunings of
	// one another, so we treat them as separate variants.
	VarLineComplete Variant = "linecomplete"
)

// MinWordLength is the shortest run the detector will clear under this
// variant, before any Flash Clear adjustment.
func (v Variant) MinWordLength() int {
	if v == VarLineComplete {
		return 3
	}
	return 2
}

// BingoBonus is awarded when a full row spells a single dictionary word.
// Only the free-scan variant pays it; line-complete scores substrings only.
func (v Variant) BingoBonus() int {
	if v == VarFreeScan {
		return 50
	}
	return 0
}

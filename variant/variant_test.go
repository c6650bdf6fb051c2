package variant

import (
	"testing"

	"github.com/matryer/is"
)

func TestMinWordLength(t *testing.T) {
	is := is.New(t)
	is.Equal(VarFreeScan.MinWordLength(), 2)
	is.Equal(VarLineComplete.MinWordLength(), 3)
}

func TestBingoBonus(t *testing.T) {
	is := is.New(t)
	is.Equal(VarFreeScan.BingoBonus(), 50)
	is.Equal(VarLineComplete.BingoBonus(), 0)
}

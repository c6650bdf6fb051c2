package tiles

import "strings"

// Letter is one tile of a block. A wildcard has no concrete rune until it
// is resolved at landing time.
type Letter struct {
	Rune     rune
	Wildcard bool
}

func (l Letter) String() string {
	if l.Wildcard {
		return "?"
	}
	return string(l.Rune)
}

type BlockKind int

const (
	KindNormal BlockKind = iota
	KindLexicalBomb
	KindDestroyerBomb
)

func (k BlockKind) String() string {
	switch k {
	case KindLexicalBomb:
		return "lexical-bomb"
	case KindDestroyerBomb:
		return "destroyer-bomb"
	default:
		return "normal"
	}
}

// Block is a 1-3 letter piece waiting in the rack or under player control.
type Block struct {
	Letters []Letter
	Kind    BlockKind
}

func (b Block) Width() int {
	return len(b.Letters)
}

func (b Block) String() string {
	var sb strings.Builder
	for _, l := range b.Letters {
		sb.WriteString(l.String())
	}
	if b.Kind != KindNormal {
		sb.WriteString("[" + b.Kind.String() + "]")
	}
	return sb.String()
}

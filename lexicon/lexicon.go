package lexicon

import (
	"bufio"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon answers word-validity queries for the engine. It is supplied once
// at construction and never mutated afterwards.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
	// WordsOfLength enumerates every word of exactly n letters. Used by
	// generation-side heuristics; the slice must not be modified.
	WordsOfLength(n int) []string
}

var upper = cases.Upper(language.English)

// WordSet is an immutable in-memory Lexicon, partitioned by word length.
type WordSet struct {
	name  string
	words map[string]struct{}
	byLen map[int][]string
}

// NewWordSet builds a WordSet from raw word strings. Words are normalized
// to uppercase; duplicates collapse.
func NewWordSet(name string, words []string) *WordSet {
	ws := &WordSet{
		name:  name,
		words: make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		w = upper.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := ws.words[w]; ok {
			continue
		}
		ws.words[w] = struct{}{}
		ws.byLen[len(w)] = append(ws.byLen[len(w)], w)
	}
	return ws
}

func (ws *WordSet) Name() string {
	return ws.name
}

func (ws *WordSet) HasWord(word string) bool {
	_, ok := ws.words[word]
	return ok
}

func (ws *WordSet) WordsOfLength(n int) []string {
	return ws.byLen[n]
}

func (ws *WordSet) Len() int {
	return len(ws.words)
}

// LoadFile reads a newline-delimited word list.
func LoadFile(name, path string) (*WordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	ws := NewWordSet(name, words)
	log.Info().Str("lexicon", name).Int("words", ws.Len()).Msg("loaded lexicon")
	return ws, nil
}

// AcceptAll is a pass-all lexicon for tests and benchmarks. It claims every
// string up to MaxLen letters is a word.
type AcceptAll struct {
	MaxLen int
}

func (a *AcceptAll) Name() string {
	return "AcceptAll"
}

func (a *AcceptAll) HasWord(word string) bool {
	return len(word) <= a.MaxLen
}

func (a *AcceptAll) WordsOfLength(n int) []string {
	return nil
}

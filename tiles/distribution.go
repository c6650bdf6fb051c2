package tiles

import (
	_ "embed"
	"errors"

	"gopkg.in/yaml.v3"
)

//go:embed english.yaml
var englishYAML []byte

// LetterWeight is one entry of a letter-frequency table.
type LetterWeight struct {
	Letter string  `yaml:"letter"`
	Weight float64 `yaml:"weight"`
	Vowel  bool    `yaml:"vowel"`
}

// LetterDistribution is a Scrabble-like frequency table the bag samples
// from. Immutable after construction.
type LetterDistribution struct {
	Name    string         `yaml:"name"`
	Letters []LetterWeight `yaml:"letters"`

	vowels map[rune]bool
}

// EnglishDistribution parses the embedded English table.
func EnglishDistribution() (*LetterDistribution, error) {
	return parseDistribution(englishYAML)
}

func parseDistribution(raw []byte) (*LetterDistribution, error) {
	ld := &LetterDistribution{}
	if err := yaml.Unmarshal(raw, ld); err != nil {
		return nil, err
	}
	if len(ld.Letters) == 0 {
		return nil, errors.New("tiles: distribution has no letters")
	}
	ld.vowels = make(map[rune]bool)
	for _, lw := range ld.Letters {
		if len(lw.Letter) != 1 {
			return nil, errors.New("tiles: distribution letters must be single characters")
		}
		if lw.Vowel {
			ld.vowels[rune(lw.Letter[0])] = true
		}
	}
	return ld, nil
}

func (ld *LetterDistribution) Runes() []rune {
	out := make([]rune, len(ld.Letters))
	for i, lw := range ld.Letters {
		out[i] = rune(lw.Letter[0])
	}
	return out
}

func (ld *LetterDistribution) Weights() []float64 {
	out := make([]float64, len(ld.Letters))
	for i, lw := range ld.Letters {
		out[i] = lw.Weight
	}
	return out
}

func (ld *LetterDistribution) IsVowel(r rune) bool {
	return ld.vowels[r]
}

func (ld *LetterDistribution) Vowels() []rune {
	var out []rune
	for _, lw := range ld.Letters {
		if lw.Vowel {
			out = append(out, rune(lw.Letter[0]))
		}
	}
	return out
}

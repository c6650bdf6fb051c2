package tiles

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"lukechampine.com/frand"
)

// SeededRNG builds a frand generator from a 64-bit seed, so game runs are
// reproducible. Seed 0 gets true entropy.
func SeededRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// Bag draws letters from a weighted frequency table. Unlike a physical
// Scrabble bag it never empties; every draw is independent.
type Bag struct {
	dist         *LetterDistribution
	sampler      distuv.Categorical
	vowelSampler distuv.Categorical
	runes        []rune
	vowels       []rune
	rng          *frand.RNG

	wildcardChance float64
	vowelBias      float64
	vowelBiased    bool
}

// NewBag builds a bag over the distribution. wildcardChance is the
// per-letter probability of drawing a blank; vowelBias is the probability
// of forcing a vowel while the bag is in vowel-biased mode.
func NewBag(dist *LetterDistribution, seed uint64, wildcardChance, vowelBias float64) *Bag {
	vowels := dist.Vowels()
	vowelWeights := make([]float64, len(vowels))
	for i, v := range vowels {
		for _, lw := range dist.Letters {
			if rune(lw.Letter[0]) == v {
				vowelWeights[i] = lw.Weight
			}
		}
	}
	rng := SeededRNG(seed)
	// The categorical samplers need their own seed. Seed 0 means true
	// entropy, so their streams must not collapse to a fixed sequence;
	// derive a random seed from the entropy-backed rng instead.
	srcSeed := seed
	for srcSeed == 0 {
		srcSeed = rng.Uint64n(math.MaxUint64)
	}
	return &Bag{
		dist:           dist,
		sampler:        distuv.NewCategorical(dist.Weights(), rand.NewSource(srcSeed)),
		vowelSampler:   distuv.NewCategorical(vowelWeights, rand.NewSource(srcSeed+1)),
		runes:          dist.Runes(),
		vowels:         vowels,
		rng:            rng,
		wildcardChance: wildcardChance,
		vowelBias:      vowelBias,
	}
}

// SetVowelBias toggles vowel-biased drawing. The engine turns it on while
// the top rows of the grid are crowded, to reduce dead positions.
func (b *Bag) SetVowelBias(on bool) {
	b.vowelBiased = on
}

// Draw produces one letter: possibly a wildcard, possibly vowel-forced.
func (b *Bag) Draw() Letter {
	if b.rng.Float64() < b.wildcardChance {
		return Letter{Wildcard: true}
	}
	if b.vowelBiased && b.rng.Float64() < b.vowelBias {
		return Letter{Rune: b.DrawVowel()}
	}
	return Letter{Rune: b.runes[int(b.sampler.Rand())]}
}

// DrawVowel produces a vowel weighted by the distribution. Also used by the
// lexical bomb when it converts a cell.
func (b *Bag) DrawVowel() rune {
	return b.vowels[int(b.vowelSampler.Rand())]
}

// GenerateBlock draws width letters as a normal block.
func (b *Bag) GenerateBlock(width int) Block {
	letters := make([]Letter, width)
	for i := range letters {
		letters[i] = b.Draw()
	}
	return Block{Letters: letters, Kind: KindNormal}
}

func (b *Bag) Distribution() *LetterDistribution {
	return b.dist
}

// RNG exposes the bag's random source so rack and engine share one stream.
func (b *Bag) RNG() *frand.RNG {
	return b.rng
}

package tiles

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// RackSize is the fixed look-ahead depth.
const RackSize = 3

// Rack is the 3-slot look-ahead queue of pending blocks. Slot widths follow
// the 1 -> 2 -> 3 -> 1 cycle.
type Rack struct {
	bag   *Bag
	rng   *frand.RNG
	slots []Block

	nextWidth   int
	spawnCount  int
	bombCadence int
}

// NewRack fills the queue with blocks of widths 1, 2, 3. bombCadence is the
// spawn interval at which a bomb block replaces a freshly generated one;
// zero disables bombs.
func NewRack(bag *Bag, bombCadence int) *Rack {
	r := &Rack{
		bag:         bag,
		rng:         bag.RNG(),
		bombCadence: bombCadence,
		nextWidth:   1,
	}
	r.Refill()
	return r
}

// Refill discards the queue and regenerates it from scratch. Used at game
// start and reset.
func (r *Rack) Refill() {
	r.slots = r.slots[:0]
	r.nextWidth = 1
	for i := 0; i < RackSize; i++ {
		r.slots = append(r.slots, r.bag.GenerateBlock(r.nextWidth))
		r.cycleWidth()
	}
}

func (r *Rack) cycleWidth() {
	r.nextWidth++
	if r.nextWidth > RackSize {
		r.nextWidth = 1
	}
}

// Slots returns a copy of the queue, head first.
func (r *Rack) Slots() []Block {
	out := make([]Block, len(r.slots))
	copy(out, r.slots)
	return out
}

// SpawnNext pops the head block and appends a newly generated block of the
// next cyclic width. On the bomb cadence, the appended block is a width-1
// bomb instead; a coin flip picks lexical vs destroyer.
func (r *Rack) SpawnNext() Block {
	head := r.slots[0]
	copy(r.slots, r.slots[1:])

	r.spawnCount++
	tail := r.bag.GenerateBlock(r.nextWidth)
	if r.bombCadence > 0 && r.spawnCount%r.bombCadence == 0 {
		kind := KindLexicalBomb
		if r.rng.Intn(2) == 0 {
			kind = KindDestroyerBomb
		}
		tail = Block{Letters: []Letter{{Rune: '*'}}, Kind: kind}
		log.Debug().Int("spawn", r.spawnCount).Str("kind", kind.String()).
			Msg("bomb queued")
	}
	r.slots[RackSize-1] = tail
	r.cycleWidth()
	return head
}

// Shuffle redistributes the letters currently held in normal blocks across
// those same slots uniformly at random. It is a rearrangement, not a
// re-draw: the multiset of (letter, wildcard) pairs is preserved exactly.
// Bomb slots are left alone.
func (r *Rack) Shuffle() {
	var letters []Letter
	for _, b := range r.slots {
		if b.Kind != KindNormal {
			continue
		}
		letters = append(letters, b.Letters...)
	}
	r.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	idx := 0
	for si, b := range r.slots {
		if b.Kind != KindNormal {
			continue
		}
		for li := range b.Letters {
			r.slots[si].Letters[li] = letters[idx]
			idx++
		}
	}
}

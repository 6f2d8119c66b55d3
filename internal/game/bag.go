package game

// The bag is an infinite, seeded letter stream. Its generator, weight
// table, and selection walk are normative: every platform must draw the
// same letters for a given seed.

// letterWeights holds the standard tile distribution for A..Z, derived
// from English letter frequencies and biased to avoid dead hands.
var letterWeights = [26]uint32{
	14, // A
	4,  // B
	5,  // C
	6,  // D
	16, // E
	3,  // F
	4,  // G
	4,  // H
	10, // I
	1,  // J
	3,  // K
	8,  // L
	4,  // M
	7,  // N
	11, // O
	5,  // P
	1,  // Q
	9,  // R
	10, // S
	8,  // T
	6,  // U
	2,  // V
	3,  // W
	1,  // X
	4,  // Y
	1,  // Z
}

const totalLetterWeight uint32 = 150

// xorshift64* constants. The generator is fully specified so that
// native and browser builds draw identical sequences.
const (
	bagMultiplier  uint64 = 0x2545F4914F6CDD1D
	bagZeroedState uint64 = 0x9E3779B97F4A7C15
)

// Bag draws letters from the weighted distribution using a seeded
// xorshift64* stream. The bag never empties.
type Bag struct {
	state uint64
	drawn int
}

// NewBag seeds a bag. A zero seed is remapped to a fixed constant
// because the xorshift state must be nonzero.
func NewBag(seed uint64) *Bag {
	if seed == 0 {
		seed = bagZeroedState
	}
	return &Bag{state: seed}
}

func (b *Bag) nextU32() uint32 {
	b.state ^= b.state >> 12
	b.state ^= b.state << 25
	b.state ^= b.state >> 27
	return uint32((b.state * bagMultiplier) >> 32)
}

// Draw produces the next letter in the stream.
func (b *Bag) Draw() rune {
	r := b.nextU32() % totalLetterWeight
	var cumulative uint32
	for i, w := range letterWeights {
		cumulative += w
		if cumulative > r {
			b.drawn++
			return rune('A' + i)
		}
	}
	// Unreachable: the weights sum to totalLetterWeight.
	b.drawn++
	return 'Z'
}

// Peek returns the next n letters without consuming them.
func (b *Bag) Peek(n int) []rune {
	copied := *b
	out := make([]rune, n)
	for i := range out {
		out[i] = copied.Draw()
	}
	return out
}

// Drawn reports how many letters have been drawn so far.
func (b *Bag) Drawn() int {
	return b.drawn
}

// Clone returns an independent bag at the same stream position.
func (b *Bag) Clone() *Bag {
	copied := *b
	return &copied
}

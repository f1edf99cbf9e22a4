package dice

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

// randomRoller implements Roller with a pseudo random source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRoller creates a roller that repeats the same sequence for the same seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, errors.InvalidArgumentf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rng.IntN(sides) + 1
	}
	return newResult(rolls, sides, bonus), nil
}

package mockdice

import (
	"sync"

	"github.com/KirkDiggler/metamagic/internal/dice"
	"github.com/KirkDiggler/metamagic/internal/errors"
)

// ManualMockRoller hands out scripted dice in order. Saves under test read as
// written: SetRolls([]int{15, 4}) is a first save of 15 and a reroll of 4.
type ManualMockRoller struct {
	mu      sync.Mutex
	queue   []int
	history []*dice.RollResult
}

func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetNextRoll queues one more die
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, roll)
}

// SetRolls replaces the queue
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append([]int(nil), rolls...)
}

// Remaining reports how many scripted dice are unused
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// History returns every result handed out so far
func (m *ManualMockRoller) History() []*dice.RollResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*dice.RollResult(nil), m.history...)
}

func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if count > len(m.queue) {
		return nil, errors.Internalf("roller has %d scripted dice, %d requested", len(m.queue), count)
	}
	rolls := m.queue[:count:count]
	for _, r := range rolls {
		if r < 1 || r > sides {
			return nil, errors.InvalidArgumentf("scripted roll %d does not fit a d%d", r, sides)
		}
	}
	m.queue = m.queue[count:]

	result := dice.NewResult(rolls, sides, bonus)
	m.history = append(m.history, result)
	return result, nil
}

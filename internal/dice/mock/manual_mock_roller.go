package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-arena/internal/dice"
)

// ManualMockRoller replays a script of die faces, one face per die rolled
type ManualMockRoller struct {
	mu     sync.Mutex
	faces  []int
	rolled int
}

// NewManualMockRoller creates a roller with an empty script
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{}
}

// SetNextRoll queues a single face
func (m *ManualMockRoller) SetNextRoll(face int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = append(m.faces, face)
}

// SetRolls replaces the script
func (m *ManualMockRoller) SetRolls(faces []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = append([]int(nil), faces...)
	m.rolled = 0
}

// SetPercentiles queues draws for dice.Percentile. Percentile p is the d101 face p+1.
func (m *ManualMockRoller) SetPercentiles(percentiles ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range percentiles {
		m.faces = append(m.faces, p+1)
	}
}

// Reset drops the remaining script
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = nil
	m.rolled = 0
}

// Remaining returns how many scripted faces have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.faces)
}

// Roll consumes count faces. Every face must fit the die, a short or
// mismatched script is an error so tests notice unexpected draws.
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if count > len(m.faces) {
		return nil, fmt.Errorf("script exhausted: %dd%d wanted after %d faces, %d left", count, sides, m.rolled, len(m.faces))
	}

	rolls := make([]int, count)
	sum := 0
	for i := range rolls {
		face := m.faces[i]
		if face < 1 || face > sides {
			return nil, fmt.Errorf("scripted face %d does not fit a d%d", face, sides)
		}
		rolls[i] = face
		sum += face
	}
	m.faces = m.faces[count:]
	m.rolled += count

	return &dice.RollResult{
		Total:    sum + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: sum,
	}, nil
}

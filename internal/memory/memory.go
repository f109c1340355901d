// ABOUTME: SessionMemory is the bounded chronological buffer of conversation turns
// ABOUTME: FIFO eviction past capacity; reads return snapshots, never live slices
package memory

import (
	"fmt"
	"sync"

	"github.com/harper/jarvis-standalone/internal/models"
)

// DefaultCapacity is the default number of retained turns per session.
const DefaultCapacity = 10

// SessionMemory holds the most recent turns of one session in chronological
// order. Length never exceeds capacity: appending past capacity evicts the
// oldest turn. The engine is single-threaded per session, but exports and
// stats may be read from other goroutines, so access is mutex-guarded.
type SessionMemory struct {
	capacity int
	turns    []models.Turn
	mu       sync.Mutex
}

// New creates an empty SessionMemory with the given capacity.
func New(capacity int) (*SessionMemory, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", capacity)
	}
	return &SessionMemory{
		capacity: capacity,
		turns:    make([]models.Turn, 0, capacity),
	}, nil
}

// Append records a turn, evicting the oldest if the buffer is full.
func (m *SessionMemory) Append(turn models.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.turns) == m.capacity {
		copy(m.turns, m.turns[1:])
		m.turns = m.turns[:len(m.turns)-1]
	}
	m.turns = append(m.turns, turn)
}

// Window returns up to the last n turns in chronological order as a copy.
func (m *SessionMemory) Window(n int) []models.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n > len(m.turns) {
		n = len(m.turns)
	}
	if n <= 0 {
		return nil
	}
	out := make([]models.Turn, n)
	copy(out, m.turns[len(m.turns)-n:])
	return out
}

// Turns returns a snapshot of all retained turns in chronological order.
func (m *SessionMemory) Turns() []models.Turn {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Len returns the number of retained turns.
func (m *SessionMemory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.turns)
}

// Capacity returns the configured maximum number of retained turns.
func (m *SessionMemory) Capacity() int {
	return m.capacity
}

// Clear discards all retained turns. Capacity is unchanged.
func (m *SessionMemory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = m.turns[:0]
}

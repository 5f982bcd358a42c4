// Package randutil builds the random sources that drive dice rolls.
package randutil

import (
	rand "math/rand/v2"
	"sync"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so every game seeded with the
// same value replays the same dice.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Locked is a generator that may be shared between goroutines.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLocked wraps a seeded generator behind a mutex.
func NewLocked(seed int64) *Locked {
	return &Locked{r: New(seed)}
}

// IntN returns a value in [0, n).
func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// Scripted replays a fixed sequence of die faces. Once the script runs out
// every draw lands on face 1.
type Scripted struct {
	faces []int
	next  int
}

// NewScripted queues faces (1-6) in the order they will be drawn.
func NewScripted(faces ...int) *Scripted {
	return &Scripted{faces: append([]int(nil), faces...)}
}

// Queue appends more faces to the script.
func (s *Scripted) Queue(faces ...int) {
	s.faces = append(s.faces, faces...)
}

// IntN returns the next scripted face as a zero-based offset.
func (s *Scripted) IntN(n int) int {
	if s.next >= len(s.faces) {
		return 0
	}
	face := s.faces[s.next]
	s.next++
	return (face - 1) % n
}

// Drawn reports how many scripted faces have been consumed.
func (s *Scripted) Drawn() int {
	return s.next
}

// Remaining reports how many scripted faces are left.
func (s *Scripted) Remaining() int {
	return len(s.faces) - s.next
}

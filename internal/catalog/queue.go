package catalog

import "math/rand"

// Queue is the order the TUI steps through signal names in. Next and
// Previous wrap around, so the queue never runs out. It is only mutated
// from Bubbletea's single-threaded Update loop.
type Queue struct {
	names        []string
	current      int
	shuffleOrder []int // maps shuffle position → original index
	shufflePos   int
	shuffled     bool
	rng          *rand.Rand
}

// NewQueue creates a queue over names starting at the first one. rng drives
// shuffling and random picks.
func NewQueue(names []string, rng *rand.Rand) *Queue {
	return &Queue{names: append([]string(nil), names...), rng: rng}
}

// Current returns the current name, or "" if the queue is empty.
func (q *Queue) Current() string {
	if q.current < 0 || q.current >= len(q.names) {
		return ""
	}
	return q.names[q.current]
}

func (q *Queue) Len() int { return len(q.names) }

// CurrentIndex returns the zero-based index of the current name.
func (q *Queue) CurrentIndex() int { return q.current }

// Next moves to the following name in playback order and returns it.
func (q *Queue) Next() string {
	if len(q.names) == 0 {
		return ""
	}
	if q.shuffled {
		q.shufflePos = (q.shufflePos + 1) % len(q.shuffleOrder)
		q.current = q.shuffleOrder[q.shufflePos]
	} else {
		q.current = (q.current + 1) % len(q.names)
	}
	return q.Current()
}

// Previous moves to the preceding name in playback order and returns it.
func (q *Queue) Previous() string {
	if len(q.names) == 0 {
		return ""
	}
	if q.shuffled {
		q.shufflePos = (q.shufflePos - 1 + len(q.shuffleOrder)) % len(q.shuffleOrder)
		q.current = q.shuffleOrder[q.shufflePos]
	} else {
		q.current = (q.current - 1 + len(q.names)) % len(q.names)
	}
	return q.Current()
}

// Random jumps to a random name other than the current one, when there is
// more than one.
func (q *Queue) Random() string {
	n := len(q.names)
	if n == 0 {
		return ""
	}
	if n > 1 {
		i := q.rng.Intn(n - 1)
		if i >= q.current {
			i++
		}
		q.SetCurrentIndex(i)
	}
	return q.Current()
}

// Append adds name at the end unless it is already queued, and returns its
// index.
func (q *Queue) Append(name string) int {
	for i, n := range q.names {
		if n == name {
			return i
		}
	}
	q.names = append(q.names, name)
	if q.shuffled {
		q.shuffleOrder = append(q.shuffleOrder, len(q.names)-1)
	}
	return len(q.names) - 1
}

// Select makes name current. It reports false if name is not queued.
func (q *Queue) Select(name string) bool {
	for i, n := range q.names {
		if n == name {
			q.SetCurrentIndex(i)
			return true
		}
	}
	return false
}

// SetCurrentIndex sets the current index directly.
// Also syncs the shuffle position when shuffle mode is active.
func (q *Queue) SetCurrentIndex(i int) {
	if i < 0 || i >= len(q.names) {
		return
	}
	q.current = i
	if !q.shuffled {
		return
	}
	for pos, idx := range q.shuffleOrder {
		if idx == i {
			q.shufflePos = pos
			return
		}
	}
}

// IsShuffled returns whether shuffle mode is active.
func (q *Queue) IsShuffled() bool { return q.shuffled }

// EnableShuffle activates shuffle mode. The current name stays at position 0
// in the shuffle order; all other indices are randomized via Fisher-Yates.
func (q *Queue) EnableShuffle() {
	n := len(q.names)
	if n <= 1 {
		return
	}
	q.shuffled = true
	q.shuffleOrder = make([]int, 0, n-1)
	for i := range n {
		if i != q.current {
			q.shuffleOrder = append(q.shuffleOrder, i)
		}
	}
	for i := len(q.shuffleOrder) - 1; i > 0; i-- {
		j := q.rng.Intn(i + 1)
		q.shuffleOrder[i], q.shuffleOrder[j] = q.shuffleOrder[j], q.shuffleOrder[i]
	}
	q.shuffleOrder = append([]int{q.current}, q.shuffleOrder...)
	q.shufflePos = 0
}

// DisableShuffle deactivates shuffle mode, keeping the current name.
func (q *Queue) DisableShuffle() {
	q.shuffled = false
	q.shuffleOrder = nil
	q.shufflePos = 0
}

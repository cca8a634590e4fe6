package game

import "github.com/vovakirdan/snake-tui/internal/core"

// Snapshot captures the complete observable game state for determinism
// verification and replay comparisons.
type Snapshot struct {
	Head       core.Vec
	Body       []core.Vec
	Fruit      core.Vec
	Dir        core.Vec
	Score      int
	Terminated bool
}

// Snapshot returns a copy of the current game state.
func (w *World) Snapshot() Snapshot {
	body := make([]core.Vec, len(w.body))
	copy(body, w.body)

	return Snapshot{
		Head:       w.head,
		Body:       body,
		Fruit:      w.fruit,
		Dir:        w.dir,
		Score:      len(w.body),
		Terminated: w.terminated,
	}
}

// Equal reports whether two snapshots describe identical states.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Head != o.Head || s.Fruit != o.Fruit || s.Dir != o.Dir ||
		s.Score != o.Score || s.Terminated != o.Terminated {
		return false
	}
	if len(s.Body) != len(o.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}

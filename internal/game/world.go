// Package game implements the snake simulation core: deterministic
// state evolution, collision detection, and pseudo-random fruit
// placement. It is driven by the platform layer, which paces ticks and
// maps raw input to actions.
package game

import "github.com/vovakirdan/snake-tui/internal/core"

// World owns the complete game state for one session: snake head and
// body, fruit, heading, and the random generator. All mutation happens
// through HandleInput and Tick, processed strictly sequentially by a
// single owner. Given a fixed seed and event order, the state evolution
// is fully reproducible.
type World struct {
	head       core.Vec
	body       []core.Vec // trailing segments, nearest-to-head first
	fruit      core.Vec
	dir        core.Vec
	rng        *LCG
	fieldSize  int
	terminated bool
}

// NewWorld creates a world with the head at the field's center cell, an
// empty body, no heading, and an initial fruit. The generator is
// exclusively owned by the world from here on.
func NewWorld(rng *LCG, fieldSize int) *World {
	w := &World{
		head:      core.Vec{X: fieldSize / 2, Y: fieldSize / 2},
		body:      make([]core.Vec, 0, 20),
		dir:       core.DirNone,
		rng:       rng,
		fieldSize: fieldSize,
	}
	w.placeFruit()
	return w
}

// HandleInput overwrites the heading from a movement action; other
// actions leave it unchanged. Inputs arriving between ticks collapse to
// the most recent one, applied at the next Tick. There is no guard
// against reversing into the first body segment; doing so ends the game
// through the normal self-collision check.
func (w *World) HandleInput(a core.Action) {
	switch a {
	case core.ActionUp:
		w.dir = core.DirUp
	case core.ActionLeft:
		w.dir = core.DirLeft
	case core.ActionDown:
		w.dir = core.DirDown
	case core.ActionRight:
		w.dir = core.DirRight
	}
}

// Tick advances the simulation by one step. redraw reports whether the
// visible state changed; terminated reports that the head left the field
// or entered the body. Terminated is a sink state: the owning loop must
// stop issuing ticks, and any further calls are no-ops.
func (w *World) Tick() (redraw, terminated bool) {
	if w.terminated {
		return false, true
	}
	if w.dir == core.DirNone {
		return false, false
	}

	// Follow the leader: each segment takes the position its predecessor
	// held before this tick, the front takes the pre-move head cell.
	if len(w.body) > 0 {
		copy(w.body[1:], w.body[:len(w.body)-1])
		w.body[0] = w.head
	}
	w.head = w.head.Add(w.dir)

	if w.head == w.fruit {
		w.grow()
		w.placeFruit()
	}

	if !w.inField(w.head) || w.onBody(w.head) {
		w.terminated = true
	}

	return true, w.terminated
}

// grow appends a tail segment one cell behind the current tail, opposite
// the direction of travel. When the body is empty the segment trails the
// head, which has already moved, so it lands on the head's previous cell.
func (w *World) grow() {
	tail := w.head
	if len(w.body) > 0 {
		tail = w.body[len(w.body)-1]
	}
	w.body = append(w.body, tail.Add(w.dir.Neg()))
}

// placeFruit draws candidate cells until one is free of the snake.
// Almost surely terminates while free cells exist; a snake filling the
// whole field would loop forever, accepted at the 20x20 scale this is
// tuned for.
func (w *World) placeFruit() {
	for {
		x := w.randomPos()
		y := w.randomPos()
		f := core.Vec{X: x, Y: y}
		if f != w.head && !w.onBody(f) {
			w.fruit = f
			return
		}
	}
}

func (w *World) randomPos() int {
	return int(w.rng.Next() % uint32(w.fieldSize))
}

func (w *World) inField(p core.Vec) bool {
	return p.X >= 0 && p.X < w.fieldSize && p.Y >= 0 && p.Y < w.fieldSize
}

func (w *World) onBody(p core.Vec) bool {
	for _, seg := range w.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the current head cell.
func (w *World) Head() core.Vec {
	return w.head
}

// Body returns the trailing segments, nearest to head first. The slice
// is owned by the world; callers must not mutate it.
func (w *World) Body() []core.Vec {
	return w.body
}

// Fruit returns the current fruit cell.
func (w *World) Fruit() core.Vec {
	return w.fruit
}

// Dir returns the current heading, DirNone until the first input.
func (w *World) Dir() core.Vec {
	return w.dir
}

// FieldSize returns the square field's side length in cells.
func (w *World) FieldSize() int {
	return w.fieldSize
}

// Terminated reports whether the session has ended.
func (w *World) Terminated() bool {
	return w.terminated
}

// Score is the number of fruits eaten, which equals the body length.
func (w *World) Score() int {
	return len(w.body)
}

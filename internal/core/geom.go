// Package core provides fundamental types and utilities for the snake
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

// Vec is an integer 2D point or direction on the grid. It is a pure value
// type: equality is componentwise via ==.
type Vec struct {
	X, Y int
}

// Add returns the componentwise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Unit direction vectors. DirNone means "not yet moving".
var (
	DirNone  = Vec{X: 0, Y: 0}
	DirUp    = Vec{X: 0, Y: -1}
	DirLeft  = Vec{X: -1, Y: 0}
	DirDown  = Vec{X: 0, Y: 1}
	DirRight = Vec{X: 1, Y: 0}
)

package physics

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned by Normalize when the vector has zero
// length and its direction is undefined.
var ErrDegenerateVector = errors.New("physics: cannot normalize a zero-length vector")

// Vec2 is an immutable 2D vector. Every operation returns a new value;
// components are never mutated in place.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector pointing in v's direction.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, ErrDegenerateVector
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, nil
}

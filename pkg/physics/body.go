package physics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
)

// InvalidBodyParameterError reports a non-positive radius or mass passed to
// a body constructor. Construction fails; a Body never exists in this state.
type InvalidBodyParameterError struct {
	Param string
	Value float64
}

func (e *InvalidBodyParameterError) Error() string {
	return fmt.Sprintf("physics: body %s must be > 0, got %g", e.Param, e.Value)
}

// Body is a rigid circular mass on the plane. Mass equals radius by
// convention, so larger disks are proportionally heavier. Velocity is in
// units per tick.
type Body struct {
	ID     uuid.UUID
	Pos    Vec2
	Radius float64
	Mass   float64
	Vel    Vec2

	// Render-only. The physics never reads these.
	Color       color.RGBA
	StrokeWidth float32
}

// NewBody builds a body at pos moving with the given speed along angleDeg
// (degrees, counterclockwise from +x).
func NewBody(pos Vec2, radius, speed, angleDeg float64) (*Body, error) {
	if radius <= 0 {
		return nil, &InvalidBodyParameterError{Param: "radius", Value: radius}
	}
	rad := angleDeg * math.Pi / 180
	return &Body{
		ID:     uuid.New(),
		Pos:    pos,
		Radius: radius,
		Mass:   radius,
		Vel:    Vec2{X: speed * math.Cos(rad), Y: speed * math.Sin(rad)},
		Color:  color.RGBA{255, 255, 255, 255},
	}, nil
}

// ReflectWalls flips a velocity component when the body's edge crosses the
// plane bound on that axis: leading edge past width/height, or trailing edge
// below zero. The check runs against the position before this tick's
// Integrate, and only velocity changes — the position is not clamped, so a
// fast body may sit outside the plane for a tick until the flipped velocity
// carries it back.
func (b *Body) ReflectWalls(width, height float64) {
	if b.Pos.X+b.Radius > width || b.Pos.X-b.Radius < 0 {
		b.Vel = Vec2{X: -b.Vel.X, Y: b.Vel.Y}
	}
	if b.Pos.Y+b.Radius > height || b.Pos.Y-b.Radius < 0 {
		b.Vel = Vec2{X: b.Vel.X, Y: -b.Vel.Y}
	}
}

// Integrate advances the position by one tick of velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Contains reports whether p lies on or inside the disk.
func (b *Body) Contains(p Vec2) bool {
	return b.Pos.Sub(p).Len() <= b.Radius
}

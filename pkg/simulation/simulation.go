// Package simulation owns the dynamic collection of bodies and advances it
// one tick at a time. A single goroutine drives it from the frame loop;
// nothing here locks or blocks.
package simulation

import (
	"ballsim/pkg/physics"

	"go.uber.org/zap"
)

// Simulation holds the bodies in insertion order on a fixed-size plane.
// Insertion order only fixes pair iteration and first-match removal; it has
// no physical meaning.
type Simulation struct {
	width  float64
	height float64
	bodies []*physics.Body
	paused bool
	log    *zap.Logger
}

// New builds a simulation from a scene. A seed with an invalid radius fails
// construction here; Step itself never returns an error.
func New(scene *Scene, log *zap.Logger) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Simulation{
		width:  scene.Width,
		height: scene.Height,
		bodies: make([]*physics.Body, 0, len(scene.Balls)),
		log:    log,
	}
	for _, seed := range scene.Balls {
		b, err := physics.NewBody(physics.NewVec2(seed.Pos[0], seed.Pos[1]), seed.Radius, seed.Speed, seed.Angle)
		if err != nil {
			return nil, err
		}
		b.Color = parseColor(seed.Color)
		b.StrokeWidth = float32(seed.Stroke)
		s.bodies = append(s.bodies, b)
	}
	return s, nil
}

// Step advances every body one tick and then resolves every unordered pair
// once. Bodies reflect off the walls before integrating, as the original
// behavior does: bounds are checked against the pre-update position and the
// possibly-flipped velocity is what gets added.
//
// Pair resolution is sequential: resolving (A,B) and then (A,C) uses A's
// velocity as already updated by the first pair. A no-op while paused.
func (s *Simulation) Step() {
	if s.paused {
		return
	}
	for _, b := range s.bodies {
		b.ReflectWalls(s.width, s.height)
		b.Integrate()
	}
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			physics.Resolve(s.bodies[i], s.bodies[j])
		}
	}
}

// Spawn appends a new body. Only the radius is validated.
func (s *Simulation) Spawn(pos physics.Vec2, radius, speed, angleDeg float64) error {
	b, err := physics.NewBody(pos, radius, speed, angleDeg)
	if err != nil {
		return err
	}
	s.bodies = append(s.bodies, b)
	s.log.Debug("ball spawned",
		zap.String("id", b.ID.String()),
		zap.Float64("radius", radius),
		zap.Float64("speed", speed),
		zap.Float64("angle", angleDeg),
	)
	return nil
}

// Remove deletes the first body, in insertion order, whose disk contains
// pos. Returns false if no body matched.
func (s *Simulation) Remove(pos physics.Vec2) bool {
	for i, b := range s.bodies {
		if b.Contains(pos) {
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			s.log.Debug("ball removed", zap.String("id", b.ID.String()))
			return true
		}
	}
	return false
}

// SetPaused freezes or resumes Step. Spawn and Remove stay available while
// paused.
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Simulation) Paused() bool {
	return s.paused
}

// Bodies exposes the collection for rendering. Callers must not mutate it.
func (s *Simulation) Bodies() []*physics.Body {
	return s.bodies
}

func (s *Simulation) Len() int {
	return len(s.bodies)
}

// Bounds returns the plane size, fixed for the session.
func (s *Simulation) Bounds() (width, height float64) {
	return s.width, s.height
}

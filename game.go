package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"ballsim/pkg/physics"
	"ballsim/pkg/simulation"
)

// Shell constants
const (
	DefaultSpawnRadius = 30.0
	MinSpawnRadius     = 5.0
	WheelRadiusStep    = 5.0
	SpawnSpeedDivisor  = 20.0 // drag pixels per unit of spawn speed
	XRayScale          = 30.0 // velocity vector draw length multiplier
)

// Game translates ebiten input into simulation calls and draws the result.
// It owns no physics state beyond what a spawn gesture needs.
type Game struct {
	sim *simulation.Simulation
	log *zap.Logger

	pendingRadius float64
	dragging      bool
	dragStart     physics.Vec2
}

func NewGame(sim *simulation.Simulation, log *zap.Logger) *Game {
	return &Game{
		sim:           sim,
		log:           log,
		pendingRadius: DefaultSpawnRadius,
	}
}

// Update is called once per tick by ebiten.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.sim.Step()
	return nil
}

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetPaused(!g.sim.Paused())
		g.log.Info("pause toggled", zap.Bool("paused", g.sim.Paused()))
	}

	// Pending spawn radius
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.pendingRadius += wheelY * WheelRadiusStep
		if g.pendingRadius < MinSpawnRadius {
			g.pendingRadius = MinSpawnRadius
		}
	}

	mx, my := ebiten.CursorPosition()
	cursor := physics.NewVec2(float64(mx), float64(my))

	// Drag to spawn: press anchors the ball, release fires it along the
	// drag with speed proportional to drag length.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragStart = cursor
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging {
		g.dragging = false
		drag := cursor.Sub(g.dragStart)
		speed := drag.Len() / SpawnSpeedDivisor
		angle := math.Atan2(drag.Y, drag.X) * 180 / math.Pi
		if err := g.sim.Spawn(g.dragStart, g.pendingRadius, speed, angle); err != nil {
			g.log.Warn("spawn rejected", zap.Error(err))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if !g.sim.Remove(cursor) {
			g.log.Debug("remove missed", zap.Int("x", mx), zap.Int("y", my))
		}
	}

	return nil
}

// Draw is called once per frame by ebiten.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, b := range g.sim.Bodies() {
		if b.StrokeWidth == 0 {
			vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), b.Color, true)
		} else {
			vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), b.StrokeWidth, b.Color, true)
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		g.drawXRay(screen)
	}

	if g.dragging {
		mx, my := ebiten.CursorPosition()
		col := color.RGBA{255, 255, 255, 120}
		vector.StrokeCircle(screen, float32(g.dragStart.X), float32(g.dragStart.Y), float32(g.pendingRadius), 1, col, true)
		vector.StrokeLine(screen, float32(g.dragStart.X), float32(g.dragStart.Y), float32(mx), float32(my), 1, col, true)
	}

	hud := fmt.Sprintf("TPS: %.1f  FPS: %.1f\nballs: %d  spawn radius: %.0f\npaused: %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.sim.Len(), g.pendingRadius, g.sim.Paused())
	ebitenutil.DebugPrint(screen, hud)
}

// drawXRay overlays each ball's velocity vector and its axis components.
func (g *Game) drawXRay(screen *ebiten.Image) {
	for _, b := range g.sim.Bodies() {
		x := float32(b.Pos.X)
		y := float32(b.Pos.Y)
		vx := float32(b.Vel.X * XRayScale)
		vy := float32(b.Vel.Y * XRayScale)
		vector.StrokeLine(screen, x, y, x+vx, y+vy, 5, color.RGBA{100, 100, 255, 255}, true)
		vector.StrokeLine(screen, x, y, x, y+vy, 5, color.RGBA{100, 255, 100, 255}, true)
		vector.StrokeLine(screen, x, y, x+vx, y, 5, color.RGBA{255, 100, 100, 255}, true)
	}
}

// Layout returns the plane size; the render surface is fixed for the session.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Bounds()
	return int(w), int(h)
}

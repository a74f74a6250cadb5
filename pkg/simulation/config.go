package simulation

import (
	"fmt"
	"image/color"
	"os"

	"github.com/aquilax/go-perlin"
	"gopkg.in/yaml.v3"
)

// Scene describes the plane and the starting balls. Either list balls
// explicitly, give a scatter block to generate them, or both.
type Scene struct {
	Name    string       `yaml:"name"`
	Width   float64      `yaml:"width"`
	Height  float64      `yaml:"height"`
	Balls   []BallSeed   `yaml:"balls,omitempty"`
	Scatter *ScatterSpec `yaml:"scatter,omitempty"`
}

// BallSeed seeds one starting ball.
type BallSeed struct {
	Pos    [2]float64 `yaml:"pos"`
	Radius float64    `yaml:"radius"`
	Speed  float64    `yaml:"speed"`
	Angle  float64    `yaml:"angle"`
	Color  string     `yaml:"color,omitempty"`
	Stroke int        `yaml:"stroke,omitempty"`
}

// ScatterSpec generates balls from a Perlin noise field, so the same seed
// always reproduces the same scene.
type ScatterSpec struct {
	Count     int     `yaml:"count"`
	Seed      int64   `yaml:"seed"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

const (
	defaultWidth  = 1920
	defaultHeight = 1080
)

// LoadScene reads a YAML scene file and expands any scatter block into
// concrete ball seeds.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene %s: %w", path, err)
	}
	if scene.Width <= 0 {
		scene.Width = defaultWidth
	}
	if scene.Height <= 0 {
		scene.Height = defaultHeight
	}
	if scene.Scatter != nil {
		scene.Balls = append(scene.Balls, scene.Scatter.expand(scene.Width, scene.Height)...)
	}
	return &scene, nil
}

// DefaultScene is the classic eight-ball layout.
func DefaultScene(width, height float64) *Scene {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Scene{
		Name:   "classic",
		Width:  width,
		Height: height,
		Balls: []BallSeed{
			{Pos: [2]float64{500, 680}, Radius: 150, Speed: 2, Angle: 45},
			{Pos: [2]float64{700, 100}, Radius: 75, Speed: 3, Angle: 45},
			{Pos: [2]float64{100, 100}, Radius: 100, Speed: 2, Angle: 0},
			{Pos: [2]float64{1000, 800}, Radius: 25, Speed: 5, Angle: 0},
			{Pos: [2]float64{1500, 900}, Radius: 150, Speed: 5, Angle: 15},
			{Pos: [2]float64{1200, 800}, Radius: 25, Speed: 5, Angle: 360},
			{Pos: [2]float64{1300, 800}, Radius: 50, Speed: 5, Angle: 75},
			{Pos: [2]float64{1000, 900}, Radius: 25, Speed: 5, Angle: 94},
		},
	}
}

// expand samples the noise field once per ball. Positions stay inside a 10%
// margin so freshly generated balls start on the plane.
func (sp *ScatterSpec) expand(width, height float64) []BallSeed {
	count := sp.Count
	if count <= 0 {
		count = 8
	}
	minR := sp.MinRadius
	if minR <= 0 {
		minR = 20
	}
	maxR := sp.MaxRadius
	if maxR < minR {
		maxR = minR
	}
	maxSpeed := sp.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = 5
	}

	p := perlin.NewPerlin(2, 2, 3, sp.Seed)
	seeds := make([]BallSeed, 0, count)
	for i := 0; i < count; i++ {
		fx := float64(i) * 0.731
		x := unit(p.Noise2D(fx, 0.17))
		y := unit(p.Noise2D(fx, 5.43))
		r := unit(p.Noise2D(fx, 11.29))
		v := unit(p.Noise2D(fx, 17.03))
		a := unit(p.Noise2D(fx, 23.91))
		seeds = append(seeds, BallSeed{
			Pos:    [2]float64{width * (0.1 + 0.8*x), height * (0.1 + 0.8*y)},
			Radius: minR + (maxR-minR)*r,
			Speed:  maxSpeed * v,
			Angle:  360 * a,
		})
	}
	return seeds
}

// unit maps a Perlin sample from roughly [-1, 1] into [0, 1].
func unit(n float64) float64 {
	u := (n + 1) / 2
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}

// parseColor reads a #rrggbb string, defaulting to white.
func parseColor(hex string) color.RGBA {
	var r, g, b uint8
	if len(hex) == 7 && hex[0] == '#' {
		n, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
		if err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}
		}
	}
	return color.RGBA{255, 255, 255, 255}
}

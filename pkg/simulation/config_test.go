package simulation

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultScene(t *testing.T) {
	scene := DefaultScene(0, 0)
	require.Equal(t, "classic", scene.Name)
	require.Len(t, scene.Balls, 8)
	require.Equal(t, float64(defaultWidth), scene.Width)
	require.Equal(t, 150.0, scene.Balls[0].Radius)
}

func TestLoadSceneYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := []byte(`
name: duo
width: 800
height: 600
balls:
  - { pos: [100, 200], radius: 40, speed: 3, angle: 90, color: "#ff0000" }
  - { pos: [300, 200], radius: 25, speed: 2, angle: 270, stroke: 2 }
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	scene, err := LoadScene(path)
	require.NoError(t, err)
	require.Equal(t, "duo", scene.Name)
	require.Equal(t, 800.0, scene.Width)
	require.Len(t, scene.Balls, 2)
	require.Equal(t, [2]float64{100, 200}, scene.Balls[0].Pos)
	require.Equal(t, "#ff0000", scene.Balls[0].Color)
	require.Equal(t, 2, scene.Balls[1].Stroke)
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadSceneExpandsScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scatter.yaml")
	data := []byte(`
name: scatter
width: 1000
height: 1000
scatter:
  count: 6
  seed: 7
  min_radius: 10
  max_radius: 50
  max_speed: 4
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	scene, err := LoadScene(path)
	require.NoError(t, err)
	require.Len(t, scene.Balls, 6)
	for _, seed := range scene.Balls {
		require.GreaterOrEqual(t, seed.Radius, 10.0)
		require.LessOrEqual(t, seed.Radius, 50.0)
		require.GreaterOrEqual(t, seed.Pos[0], 100.0)
		require.LessOrEqual(t, seed.Pos[0], 900.0)
	}
}

func TestScatterIsDeterministic(t *testing.T) {
	spec := &ScatterSpec{Count: 10, Seed: 42, MinRadius: 20, MaxRadius: 80, MaxSpeed: 5}
	first := spec.expand(1920, 1080)
	second := spec.expand(1920, 1080)
	require.Equal(t, first, second)

	other := &ScatterSpec{Count: 10, Seed: 43, MinRadius: 20, MaxRadius: 80, MaxSpeed: 5}
	require.NotEqual(t, first, other.expand(1920, 1080))
}

func TestParseColor(t *testing.T) {
	require.Equal(t, color.RGBA{255, 0, 0, 255}, parseColor("#ff0000"))
	require.Equal(t, color.RGBA{18, 52, 86, 255}, parseColor("#123456"))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, parseColor(""))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, parseColor("red"))
}

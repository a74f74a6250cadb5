package physics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2Algebra(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-1, 2)

	require.Equal(t, Vec2{X: 2, Y: 6}, a.Add(b))
	require.Equal(t, Vec2{X: 4, Y: 2}, a.Sub(b))
	require.Equal(t, Vec2{X: 6, Y: 8}, a.Mul(2))
	require.InDelta(t, 5.0, a.Dot(b), 1e-12) // 3*-1 + 4*2
	require.InDelta(t, 5.0, a.Len(), 1e-12)
}

func TestVec2OperationsDoNotMutate(t *testing.T) {
	v := NewVec2(1, 1)
	_ = v.Add(NewVec2(5, 5))
	_ = v.Mul(10)
	require.Equal(t, Vec2{X: 1, Y: 1}, v)
}

func TestNormalizeUnitLength(t *testing.T) {
	vectors := []Vec2{
		{X: 1, Y: 0},
		{X: 0, Y: -7},
		{X: 3, Y: 4},
		{X: -0.001, Y: 0.002},
		{X: 1e6, Y: -2e6},
	}
	for _, v := range vectors {
		n, err := v.Normalize()
		require.NoError(t, err)
		require.InDelta(t, 1.0, n.Len(), 1e-9, "normalize(%v)", v)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	_, err := Vec2{}.Normalize()
	require.ErrorIs(t, err, ErrDegenerateVector)
}

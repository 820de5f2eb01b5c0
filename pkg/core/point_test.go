package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Arithmetic(t *testing.T) {
	p := NewPoint(1, 2, 3)
	q := NewPoint(4, 6, 3)

	assert.Equal(t, NewVec3(3, 4, 0), q.Subtract(p))
	assert.Equal(t, q, p.Add(q.Subtract(p)))
	assert.InDelta(t, 5.0, p.DistanceTo(q), tolerance)
	assert.Equal(t, NewPoint(2, 4, 6), p.Multiply(2))
	assert.Equal(t, NewPoint(1, 4, 9), p.MultiplyVec(NewVec3(1, 2, 3)))
}

func TestPoint_Divide(t *testing.T) {
	p, err := NewPoint(2, 4, 8).Divide(4)
	require.NoError(t, err)
	assert.True(t, p.ApproxEqual(NewPoint(0.5, 1, 2), tolerance))

	_, err = NewPoint(2, 4, 8).Divide(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewPoint(1, 1, 1), NewVec3(0, 0, -10))

	assert.InDelta(t, 1.0, ray.Direction.Length(), tolerance)
	assert.True(t, ray.At(2).ApproxEqual(NewPoint(1, 1, -1), tolerance))
}

package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)

	assert.Equal(t, NewVec3(-1, 2.5, 7), a.Add(b))
	assert.Equal(t, NewVec3(3, 1.5, -1), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(-2, 1, 12), a.MultiplyVec(b))
	assert.Equal(t, NewVec3(-1, -2, -3), a.Negate())
	assert.InDelta(t, 11.0, a.Dot(b), tolerance)
	assert.InDelta(t, 14.0, a.LengthSquared(), tolerance)
	assert.InDelta(t, math.Sqrt(14), a.Length(), tolerance)
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"x cross y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(0, 0, 1)},
		{"y cross z", NewVec3(0, 1, 0), NewVec3(0, 0, 1), NewVec3(1, 0, 0)},
		{"z cross x", NewVec3(0, 0, 1), NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"parallel", NewVec3(2, 2, 2), NewVec3(1, 1, 1), NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Cross(tt.b)
			assert.InDelta(t, 0, result.Subtract(tt.expected).Length(), tolerance)
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(-1e-3, 2e-3, 5e-4),
		NewVec3(1e6, -3e6, 7e5),
		NewVec3(0, 0, -9),
	}

	for _, v := range vectors {
		assert.InDelta(t, 1.0, v.Normalize().Length(), 1e-6, "normalize(%v)", v)
	}

	assert.Equal(t, Vec3{}, Vec3{}.Normalize(), "zero vector must normalize to itself")
}

func TestVec3_Divide(t *testing.T) {
	v, err := NewVec3(2, 4, 6).Divide(2)
	require.NoError(t, err)
	assert.Equal(t, NewVec3(1, 2, 3), v)

	_, err = NewVec3(1, 1, 1).Divide(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestVec3_Reflect(t *testing.T) {
	t.Run("mirror about floor", func(t *testing.T) {
		d := NewVec3(1, -1, 0)
		n := NewVec3(0, 1, 0)
		r := d.Reflect(n)
		expected := NewVec3(1, 1, 0).Normalize()
		assert.InDelta(t, 0, r.Subtract(expected).Length(), tolerance)
	})

	t.Run("head on", func(t *testing.T) {
		r := NewVec3(0, 0, -5).Reflect(NewVec3(0, 0, 1))
		assert.InDelta(t, 0, r.Subtract(NewVec3(0, 0, 1)).Length(), tolerance)
	})

	t.Run("always unit", func(t *testing.T) {
		normals := []Vec3{
			NewVec3(0, 1, 0),
			NewVec3(1, 1, 1).Normalize(),
			NewVec3(-0.3, 0.2, 0.9).Normalize(),
		}
		directions := []Vec3{
			NewVec3(1, -1, 0),
			NewVec3(12, 3, -40),
			NewVec3(-0.001, 0.0002, 0.003),
			NewVec3(0.5, 0.5, 0.5),
		}
		for _, n := range normals {
			for _, d := range directions {
				assert.InDelta(t, 1.0, d.Reflect(n).Length(), 1e-6, "reflect(%v, %v)", d, n)
			}
		}
	})
}

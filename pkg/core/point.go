package core

import (
	"fmt"
	"math"
)

// Point is a position in space. Point - Point is a Vec3, Point + Vec3 is a Point.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add translates the point by a direction
func (p Point) Add(v Vec3) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point) Subtract(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Multiply scales each coordinate
func (p Point) Multiply(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar, p.Z * scalar}
}

// Divide scales each coordinate by 1/scalar. Dividing by zero fails with ErrDivideByZero.
func (p Point) Divide(scalar float64) (Point, error) {
	inv, err := inverse(scalar)
	if err != nil {
		return Point{}, fmt.Errorf("point %v: %w", p, err)
	}
	return p.Multiply(inv), nil
}

// MultiplyVec returns the component-wise product of the coordinates with v
func (p Point) MultiplyVec(v Vec3) Point {
	return Point{p.X * v.X, p.Y * v.Y, p.Z * v.Z}
}

// DistanceTo returns the euclidean distance between two points
func (p Point) DistanceTo(other Point) float64 {
	return p.Subtract(other).Length()
}

// ApproxEqual compares two points within tolerance on every axis
func (p Point) ApproxEqual(other Point, tolerance float64) bool {
	return math.Abs(p.X-other.X) <= tolerance &&
		math.Abs(p.Y-other.Y) <= tolerance &&
		math.Abs(p.Z-other.Z) <= tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("[%g, %g, %g]", p.X, p.Y, p.Z)
}

package core

import (
	"fmt"
	"image/color"
	"math"
)

// ColorEpsilon is the per-channel tolerance used by Color.Equals
const ColorEpsilon = 1e-6

// Color is a linear RGB color, nominally in [0,1] per channel.
// Intermediate shading results may exceed that range until clamped.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color
var Black = Color{}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Divide scales every channel by 1/scalar. Dividing by zero fails with ErrDivideByZero.
func (c Color) Divide(scalar float64) (Color, error) {
	inv, err := inverse(scalar)
	if err != nil {
		return Color{}, fmt.Errorf("color %v: %w", c, err)
	}
	return c.Multiply(inv), nil
}

// MultiplyColor returns the Schur (channel-wise) product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp projects each channel into [0,1]
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// ExceedsOne reports whether c + other exceeds 1 on any channel
func (c Color) ExceedsOne(other Color) bool {
	return c.R+other.R > 1.0 || c.G+other.G > 1.0 || c.B+other.B > 1.0
}

// Equals compares two colors channel by channel within ColorEpsilon
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < ColorEpsilon &&
		math.Abs(c.G-other.G) < ColorEpsilon &&
		math.Abs(c.B-other.B) < ColorEpsilon
}

// ToRGBA converts to an opaque 8-bit color. Each channel is clamped on its own,
// so out-of-range values never wrap even if Clamp was skipped.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: 255,
	}
}

// ToRGB24 packs the color as 0xFFRRGGBB
func (c Color) ToRGB24() uint32 {
	rgba := c.ToRGBA()
	return 0xFF000000 | uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

func clamp01(v float64) float64 {
	return max(0.0, min(1.0, v))
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp01(v) * 255.0))
}

package math

import (
	m "math"
)

func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Point is a position in the local map frame, in metres.
type Point struct {
	X float64
	Y float64
	Z float64
}

func (p Point) Subtract(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Dot2 is the planar dot product, z is ignored.
func (p Point) Dot2(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

func (p Point) DistanceTo(end Point) float64 {
	d := end.Subtract(p)
	return m.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Clamp keeps val inside [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return m.Max(lo, m.Min(hi, val))
}

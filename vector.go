package spheres

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D vector used for screen-space UV coordinates and for the
// (near, far) distance pair returned by IntersectSphere.
type Vec2 struct {
	X, Y float32
}

// Add returns the componentwise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// AddScalar adds s to every component.
func (v Vec2) AddScalar(s float32) Vec2 { return Vec2{v.X + s, v.Y + s} }

// Sub returns the componentwise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// SubScalar subtracts s from every component.
func (v Vec2) SubScalar(s float32) Vec2 { return Vec2{v.X - s, v.Y - s} }

// Mul returns the componentwise product.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// MulScalar scales every component by s.
func (v Vec2) MulScalar(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns the componentwise quotient. Zero divisors yield Inf or NaN.
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{v.X / o.X, v.Y / o.Y} }

// DivScalar divides every component by s.
func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y)
}

// Vec3 is a 3D vector used for points and directions. All methods take and
// return values; nothing is modified in place.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the componentwise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float32) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }

// Sub returns the componentwise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// SubScalar subtracts s from every component.
func (v Vec3) SubScalar(s float32) Vec3 { return Vec3{v.X - s, v.Y - s, v.Z - s} }

// Mul returns the componentwise product.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// MulScalar scales every component by s.
func (v Vec3) MulScalar(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div returns the componentwise quotient. Zero divisors yield Inf or NaN.
func (v Vec3) Div(o Vec3) Vec3 { return Vec3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// DivScalar divides every component by s.
func (v Vec3) DivScalar(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Dot returns the dot product v·o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 {
	return sqrt32(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector produces NaN
// components; callers only pass directions known to be non-zero.
func (v Vec3) Normalize() Vec3 {
	return v.DivScalar(v.Len())
}

// MGL converts v to an mgl32.Vec3.
func (v Vec3) MGL() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMGL converts an mgl32.Vec3 to a Vec3.
func Vec3FromMGL(m mgl32.Vec3) Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

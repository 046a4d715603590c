package spheres

import (
	"fmt"
	"math"
)

// lightSpeed is the orbit angle, in radians, advanced per frame.
const lightSpeed = 0.01

// World is the animation state: the light direction and a frame counter.
// It is mutated only by Tick; Draw reads it.
type World struct {
	// Light is the direction toward the light. It is not normalized.
	Light Vec3
	// Frame counts ticks and wraps at 2^32.
	Frame uint32
}

// NewWorld returns a world at frame 0 with the light at its starting
// position on the orbit.
func NewWorld() *World {
	return &World{Light: LightAt(0)}
}

// LightAt returns the light direction for the given frame. The XY part
// traces the unit circle while Z stays at -1, so the result has length √2.
func LightAt(frame uint32) Vec3 {
	a := float64(float32(frame) * lightSpeed)
	return Vec3{float32(math.Sin(a)), float32(math.Cos(a)), -1}
}

// Tick advances the world by one frame.
func (w *World) Tick() {
	w.Frame++ // wraps to 0 after math.MaxUint32
	w.Light = LightAt(w.Frame)
}

// Draw renders the scene into pix, a row-major RGBA buffer of width*height
// pixels. pix is not retained after Draw returns. Draw panics if the buffer
// size does not match the dimensions.
func (w *World) Draw(pix []byte, width, height int) {
	if len(pix) != width*height*4 {
		panic(fmt.Sprintf("spheres: Draw buffer is %d bytes, want %d for %dx%d",
			len(pix), width*height*4, width, height))
	}

	size := Vec2{float32(width), float32(height)}
	aspect := Vec2{float32(width) / float32(height), 1}

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			uv := Vec2{float32(x), float32(y)}.Div(size).MulScalar(2).SubScalar(1).Mul(aspect)
			c := w.shadePixel(uv)
			copy(pix[i:i+4], c[:])
			i += 4
		}
	}
}

// shadePixel casts the primary ray through uv and returns its colour.
func (w *World) shadePixel(uv Vec2) [4]byte {
	rd := PrimaryRay(uv)

	ro := Scene[0].Origin(Eye)
	ix1 := IntersectSphere(ro, rd, Scene[0].Radius).X
	ix2 := Scene[1].Intersect(Eye, rd).X

	// The larger distance wins. This is not a nearest-hit test; the image
	// depends on it, so keep it. Built-in max yields NaN if either side is
	// NaN, and the check below then treats the pixel as a miss.
	ix := max(ix1, ix2)
	if !(ix > 0) {
		return background
	}
	// Shading always uses the first sphere's ray, whichever sphere won.
	return ShadeHit(ro.Add(rd.MulScalar(ix)), w.Light)
}

// PrimaryRay returns the pinhole camera ray direction for view-plane
// coordinate uv. The camera looks down +X.
func PrimaryRay(uv Vec2) Vec3 {
	return Vec3{1, uv.X, uv.Y}.Normalize()
}

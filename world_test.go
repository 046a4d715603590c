package spheres

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testW = 640
	testH = 480
)

func pixelAt(pix []byte, width, x, y int) [4]byte {
	i := (y*width + x) * 4
	return [4]byte{pix[i], pix[i+1], pix[i+2], pix[i+3]}
}

// refHitDistance recomputes the visible hit distance for pixel (x, y) in
// float64, without going through the package's vector types. grazing is set
// when either discriminant is close enough to zero that float32 rounding
// could flip hit and miss.
func refHitDistance(x, y, width, height int) (ix float64, grazing bool) {
	w, h := float64(width), float64(height)
	u := (float64(x)/w*2 - 1) * (w / h)
	v := float64(y)/h*2 - 1
	l := math.Sqrt(1 + u*u + v*v)
	rd := [3]float64{1 / l, u / l, v / l}

	near := func(ro [3]float64, r float64) float64 {
		b := ro[0]*rd[0] + ro[1]*rd[1] + ro[2]*rd[2]
		c := ro[0]*ro[0] + ro[1]*ro[1] + ro[2]*ro[2] - r*r
		d := b*b - c
		if math.Abs(d) < 1e-3 {
			grazing = true
		}
		if d < 0 {
			return -1
		}
		return -b - math.Sqrt(d)
	}
	ix = math.Max(near([3]float64{-5, 0, 0}, 2), near([3]float64{-3, 2, -2}, 2))
	return ix, grazing
}

func TestNewWorld(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, uint32(0), w.Frame)
	assert.Equal(t, Vec3{0, 1, -1}, w.Light)
}

func TestTickAdvancesLight(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 100; i++ {
		w.Tick()
	}
	assert.Equal(t, uint32(100), w.Frame)
	assert.InDelta(t, math.Sin(1), w.Light.X, epsilon)
	assert.InDelta(t, math.Cos(1), w.Light.Y, epsilon)
	assert.Equal(t, float32(-1), w.Light.Z)
}

func TestTickLightIsNotNormalized(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 37; i++ {
		w.Tick()
		assert.InDelta(t, math.Sqrt2, w.Light.Len(), epsilon, "frame %d", w.Frame)
	}
}

func TestTickWrapsFrame(t *testing.T) {
	w := &World{Frame: math.MaxUint32}
	w.Tick()
	assert.Equal(t, uint32(0), w.Frame)
	assert.Equal(t, LightAt(0), w.Light)
}

func TestDrawCenterPixelHitsPrimarySphere(t *testing.T) {
	w := NewWorld()
	pix := make([]byte, testW*testH*4)
	w.Draw(pix, testW, testH)

	p := pixelAt(pix, testW, 320, 240)
	assert.Equal(t, byte(0), p[0], "red")
	assert.Equal(t, byte(0), p[1], "green")
	assert.GreaterOrEqual(t, p[2], byte(3), "blue")
	assert.Equal(t, byte(255), p[3], "alpha")
	// The center normal is (-1, 0, 0), perpendicular to (0, 1, -1).
	assert.Equal(t, byte(3), p[2])
}

func TestDrawCornerPixelMatchesReference(t *testing.T) {
	w := NewWorld()
	pix := make([]byte, testW*testH*4)
	w.Draw(pix, testW, testH)

	ix, grazing := refHitDistance(0, 0, testW, testH)
	require.False(t, grazing)
	require.LessOrEqual(t, ix, 0.0, "reference ray through (0,0) should miss")
	assert.Equal(t, [4]byte{0, 0, 0, 255}, pixelAt(pix, testW, 0, 0))
}

func TestDrawHitMaskMatchesReference(t *testing.T) {
	const width, height = 64, 48
	w := NewWorld()
	pix := make([]byte, width*height*4)
	w.Draw(pix, width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ix, grazing := refHitDistance(x, y, width, height)
			if grazing {
				continue
			}
			p := pixelAt(pix, width, x, y)
			if ix > 0 {
				assert.GreaterOrEqual(t, p[2], byte(3), "pixel (%d,%d) should be lit", x, y)
			} else {
				assert.Equal(t, [4]byte{0, 0, 0, 255}, p, "pixel (%d,%d) should be black", x, y)
			}
		}
	}
}

func TestDrawWritesOnlyBlueAndOpaqueAlpha(t *testing.T) {
	const width, height = 80, 60
	w := NewWorld()
	for i := 0; i < 250; i++ {
		w.Tick()
	}
	pix := make([]byte, width*height*4)
	for i := range pix {
		pix[i] = 0xAA
	}
	w.Draw(pix, width, height)

	lit := 0
	for i := 0; i < len(pix); i += 4 {
		require.Equal(t, byte(0), pix[i], "red at byte %d", i)
		require.Equal(t, byte(0), pix[i+1], "green at byte %d", i)
		require.Equal(t, byte(255), pix[i+3], "alpha at byte %d", i)
		if b := pix[i+2]; b != 0 {
			require.GreaterOrEqual(t, b, byte(3))
			lit++
		}
	}
	assert.Positive(t, lit)
	assert.Less(t, lit, width*height)
}

func TestDrawDeterministic(t *testing.T) {
	const width, height = 96, 72
	a, b := NewWorld(), NewWorld()
	for i := 0; i < 42; i++ {
		a.Tick()
		b.Tick()
	}
	pa := make([]byte, width*height*4)
	pb := make([]byte, width*height*4)
	a.Draw(pa, width, height)
	b.Draw(pb, width, height)
	assert.True(t, bytes.Equal(pa, pb), "identical worlds produced different frames")

	a.Draw(pb, width, height)
	assert.True(t, bytes.Equal(pa, pb), "redraw produced a different frame")
}

func TestDrawLightChangesShading(t *testing.T) {
	const width, height = 64, 48
	w := &World{Light: Vec3{-0.5, 0, 0}}
	pix := make([]byte, width*height*4)
	w.Draw(pix, width, height)
	// Center ray hits at (-2, 0, 0); normal (-1, 0, 0) dotted with the light
	// gives 0.5, scaled to 10.
	assert.Equal(t, [4]byte{0, 0, 10, 255}, pixelAt(pix, width, 32, 24))

	w.Light = Vec3{-20, 0, 0}
	w.Draw(pix, width, height)
	assert.Equal(t, [4]byte{0, 0, 255, 255}, pixelAt(pix, width, 32, 24))
}

func TestDrawPanicsOnSizeMismatch(t *testing.T) {
	w := NewWorld()
	assert.Panics(t, func() { w.Draw(make([]byte, 10), 4, 4) })
	assert.NotPanics(t, func() { w.Draw(make([]byte, 64), 4, 4) })
}

func TestPrimaryRay(t *testing.T) {
	assert.Equal(t, Vec3{1, 0, 0}, PrimaryRay(Vec2{}))
	rd := PrimaryRay(Vec2{-4.0 / 3, -1})
	assert.InDelta(t, 1, rd.Len(), epsilon)
	assert.Greater(t, rd.X, float32(0))
	assert.Less(t, rd.Y, float32(0))
	assert.Less(t, rd.Z, float32(0))
}

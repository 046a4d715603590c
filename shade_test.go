package spheres

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampShade(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1000, 3},
		{-1, 3},
		{0, 3},
		{2, 3},
		{3, 3},
		{4, 4},
		{128, 128},
		{255, 255},
		{256, 255},
		{math.MaxInt, 255},
		{math.MinInt, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampShade(tt.in, 255, 3), "ClampShade(%d)", tt.in)
	}
}

func TestClampShadeIdempotentAndBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 10000; i++ {
		v := int(r.Int64()) >> r.IntN(63)
		if r.IntN(2) == 0 {
			v = -v
		}
		once := ClampShade(v, 255, 3)
		assert.Equal(t, once, ClampShade(once, 255, 3), "v=%d", v)
		assert.GreaterOrEqual(t, once, 3)
		assert.LessOrEqual(t, once, 255)
	}
}

func TestShadeHit(t *testing.T) {
	tests := []struct {
		name  string
		p     Vec3
		light Vec3
		blue  byte
	}{
		{"perpendicular", Vec3{-2, 0, 0}, Vec3{0, 1, -1}, 3},
		{"facing away", Vec3{-2, 0, 0}, Vec3{1, 0, 0}, 3},
		{"half lit", Vec3{-2, 0, 0}, Vec3{-0.5, 0, 0}, 10},
		{"fully lit", Vec3{0, 0, -3}, Vec3{0, 0, -1}, 20},
		{"overbright", Vec3{0, 0, -3}, Vec3{0, 0, -100}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, [4]byte{0, 0, tt.blue, 0xff}, ShadeHit(tt.p, tt.light))
		})
	}
}

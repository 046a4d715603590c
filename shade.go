package spheres

const (
	// shadeScale maps the Lambertian term onto the blue channel.
	shadeScale = 20
	shadeMax   = 255
	shadeMin   = 3
)

// ClampShade clamps v into [lo, hi]. The lower bound keeps lit surfaces from
// going fully black; the upper bound stops the byte conversion wrapping.
func ClampShade(v, hi, lo int) int {
	return max(min(v, hi), lo)
}

// ShadeHit returns the RGBA colour for a surface point p on a sphere centred
// at the origin, lit from direction light. Only the blue channel varies.
func ShadeHit(p, light Vec3) [4]byte {
	n := p.Normalize()
	diff := n.Dot(light)
	blue := ClampShade(int(diff*shadeScale), shadeMax, shadeMin)
	return [4]byte{0, 0, byte(blue), 0xff}
}

// background is written wherever no sphere is in front of the eye.
var background = [4]byte{0, 0, 0, 0xff}

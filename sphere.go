package spheres

// NoHit is returned by IntersectSphere when the ray misses.
var NoHit = Vec2{-1, -1}

// Sphere is an analytic sphere. Radius must be positive.
type Sphere struct {
	Center Vec3
	Radius float32
}

// Eye is the camera position shared by every primary ray.
var Eye = Vec3{-5, 0, 0}

// Scene is the fixed two-sphere scene. Seen from Eye, the per-object ray
// origins are (-5, 0, 0) and (-3, 2, -2).
var Scene = [2]Sphere{
	{Center: Vec3{0, 0, 0}, Radius: 2},
	{Center: Vec3{-2, -2, 2}, Radius: 2},
}

// IntersectSphere solves the ray/sphere quadratic for a sphere of radius r
// centred at the origin of ro's coordinate system. rd must be unit length.
//
// The result holds the entry (X) and exit (Y) distances along the ray, which
// may be negative when the sphere lies behind ro. A tangent ray returns
// entry == exit. Degenerate input propagates NaN or Inf.
func IntersectSphere(ro, rd Vec3, r float32) Vec2 {
	b := ro.Dot(rd)
	c := ro.Dot(ro) - r*r
	h := b*b - c
	if h < 0 {
		return NoHit
	}
	h = sqrt32(h)
	return Vec2{-b - h, -b + h}
}

// Origin returns eye translated into the sphere's object space.
func (s Sphere) Origin(eye Vec3) Vec3 {
	return eye.Sub(s.Center)
}

// Intersect casts a ray from eye along rd against s.
func (s Sphere) Intersect(eye, rd Vec3) Vec2 {
	return IntersectSphere(s.Origin(eye), rd, s.Radius)
}

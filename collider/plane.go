package collider

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// Plane is an infinite plane, such as the playfield or the glass, limited to bounds for indexing.
type Plane struct {
	base
	normal   mgl32.Vec3
	distance float32
	bounds   game.AABB
}

// NewPlane returns a plane of all points x where normal·x = distance. The normal is normalised.
func NewPlane(h Header, normal mgl32.Vec3, distance float32, bounds game.AABB) *Plane {
	n, ok := game.Normalize(normal)
	if !ok {
		n = mgl32.Vec3{0, 0, 1}
	}
	return &Plane{base: base{hdr: h}, normal: n, distance: distance, bounds: bounds}
}

func (p *Plane) Normal() mgl32.Vec3 { return p.normal }
func (p *Plane) Bounds() game.AABB  { return p.bounds }

func (p *Plane) HitTime(s Sphere, dTime float32) (Hit, bool) {
	return planeHitTime(p.normal, p.distance, s, dTime)
}

// planeHitTime computes the impact of a sphere against the front side of a plane.
func planeHitTime(n mgl32.Vec3, d float32, s Sphere, dTime float32) (Hit, bool) {
	gap := n.Dot(s.Pos) - d - s.Radius
	vn := n.Dot(s.Vel)

	if gap <= game.ContactTolerance {
		// Centre behind the plane: the sphere is on the other side, not touching the front.
		if gap < -s.Radius || vn >= 0 {
			return Hit{}, false
		}
		return Hit{Time: 0, Normal: n, Distance: gap}, true
	}
	if vn >= 0 {
		return Hit{}, false
	}

	t := -gap / vn
	if t > dTime {
		return Hit{}, false
	}
	return Hit{Time: t, Normal: n, Distance: gap}, true
}

package collider

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// Circle is a vertical cylinder standing on the playfield, such as a bumper body or a kicker hole.
type Circle struct {
	base
	center      mgl32.Vec2
	radius      float32
	zLow, zHigh float32
	// trigger circles report the moment the sphere centre enters them instead of the moment the surfaces
	// touch, and never report a sphere that is already inside.
	trigger bool
}

// NewCircle returns a solid cylinder.
func NewCircle(h Header, center mgl32.Vec2, radius, zLow, zHigh float32) *Circle {
	return &Circle{base: base{hdr: h}, center: center, radius: radius, zLow: zLow, zHigh: zHigh}
}

// NewTriggerCircle returns a cylinder that is hit when the sphere centre crosses its radius.
func NewTriggerCircle(h Header, center mgl32.Vec2, radius, zLow, zHigh float32) *Circle {
	c := NewCircle(h, center, radius, zLow, zHigh)
	c.trigger = true
	return c
}

func (c *Circle) Center() mgl32.Vec2 { return c.center }
func (c *Circle) Radius() float32    { return c.radius }
func (c *Circle) Trigger() bool      { return c.trigger }

func (c *Circle) Bounds() game.AABB {
	return game.NewAABB(
		c.center.X()-c.radius, c.center.X()+c.radius,
		c.center.Y()-c.radius, c.center.Y()+c.radius,
		c.zLow, c.zHigh,
	)
}

func (c *Circle) HitTime(s Sphere, dTime float32) (Hit, bool) {
	reach := c.radius
	if !c.trigger {
		reach += s.Radius
	}

	dx, dy := s.Pos.X()-c.center.X(), s.Pos.Y()-c.center.Y()
	vx, vy := s.Vel.X(), s.Vel.Y()

	a := vx*vx + vy*vy
	b := 2 * (dx*vx + dy*vy)
	cc := dx*dx + dy*dy - reach*reach
	gap := math32.Sqrt(dx*dx+dy*dy) - reach

	var t float32
	switch {
	case gap <= game.ContactTolerance:
		// Touching or inside: a trigger only fires on entry, a solid only when the sphere moves towards the axis.
		if c.trigger || b >= 0 {
			return Hit{}, false
		}
		t = 0
	case a == 0:
		return Hit{}, false
	default:
		disc := b*b - 4*a*cc
		if disc < 0 {
			return Hit{}, false
		}
		t = (-b - math32.Sqrt(disc)) / (2 * a)
		if t < 0 || t > dTime {
			return Hit{}, false
		}
	}

	at := s.At(t)
	if at.Z() < c.zLow || at.Z() > c.zHigh {
		return Hit{}, false
	}
	n, ok := game.Normalize(mgl32.Vec3{at.X() - c.center.X(), at.Y() - c.center.Y(), 0})
	if !ok {
		return Hit{}, false
	}
	return Hit{Time: t, Normal: n, Distance: gap}, true
}

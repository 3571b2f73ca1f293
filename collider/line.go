package collider

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// Line is a vertical wall between two playfield points, extruded from zLow to zHigh. Only its front side,
// on the left when walking from v1 to v2 with Y pointing down the table, collides.
type Line struct {
	base
	v1, v2      mgl32.Vec2
	zLow, zHigh float32

	normal mgl32.Vec3
	dir    mgl32.Vec2
	length float32
}

// NewLine returns a wall from v1 to v2.
func NewLine(h Header, v1, v2 mgl32.Vec2, zLow, zHigh float32) *Line {
	l := &Line{base: base{hdr: h}, v1: v1, v2: v2, zLow: zLow, zHigh: zHigh}
	seg := v2.Sub(v1)
	l.length = seg.Len()
	if l.length > 0 {
		l.dir = seg.Mul(1 / l.length)
	}
	l.normal = mgl32.Vec3{l.dir.Y(), -l.dir.X(), 0}
	return l
}

func (l *Line) Normal() mgl32.Vec3 { return l.normal }

func (l *Line) Bounds() game.AABB {
	return game.NewAABB(
		math32.Min(l.v1.X(), l.v2.X()), math32.Max(l.v1.X(), l.v2.X()),
		math32.Min(l.v1.Y(), l.v2.Y()), math32.Max(l.v1.Y(), l.v2.Y()),
		l.zLow, l.zHigh,
	)
}

func (l *Line) HitTime(s Sphere, dTime float32) (Hit, bool) {
	if l.length == 0 {
		return Hit{}, false
	}
	d := l.normal.X()*l.v1.X() + l.normal.Y()*l.v1.Y()
	hit, ok := planeHitTime(l.normal, d, s, dTime)
	if !ok {
		return Hit{}, false
	}

	// The impact has to land on the segment and within its height.
	at := s.At(hit.Time)
	along := (at.X()-l.v1.X())*l.dir.X() + (at.Y()-l.v1.Y())*l.dir.Y()
	if along < 0 || along > l.length {
		return Hit{}, false
	}
	if at.Z() < l.zLow || at.Z() > l.zHigh {
		return Hit{}, false
	}
	return hit, true
}

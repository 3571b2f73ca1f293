package collider

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// Box is a solid axis aligned block, such as a drop target or a hit target face.
type Box struct {
	base
	box game.AABB
}

// NewBox returns a block occupying bb.
func NewBox(h Header, bb game.AABB) *Box {
	return &Box{base: base{hdr: h}, box: bb}
}

func (b *Box) Bounds() game.AABB { return b.box }

// HitTime traces the sphere centre against the box grown by the sphere radius. The grown box has square
// edges, so impacts near an edge or corner are reported slightly early.
func (b *Box) HitTime(s Sphere, dTime float32) (Hit, bool) {
	if b.box.IsEmpty() {
		return Hit{}, false
	}
	grown := b.box.Grow(s.Radius)

	if grown.IntersectSphere(s.Pos, 0) {
		n, depth := leastPenetration(grown, s.Pos)
		if depth > s.Radius || s.Vel.Dot(n) >= 0 {
			return Hit{}, false
		}
		return Hit{Time: 0, Normal: n, Distance: -depth}, true
	}

	speed := s.Vel.Len()
	if speed == 0 {
		return Hit{}, false
	}
	res, ok := trace.BBoxIntercept(grown.ToBBox(), s.Pos, s.At(dTime))
	if !ok {
		return Hit{}, false
	}
	dist := res.Position().Sub(s.Pos).Len()
	n := faceNormal(grown, res.Position())
	if s.Vel.Dot(n) >= 0 {
		return Hit{}, false
	}

	t := dist / speed
	if t > dTime {
		t = dTime
	}
	return Hit{Time: t, Normal: n, Distance: surfaceGap(b.box, s.Pos) - s.Radius}, true
}

// surfaceGap returns the distance from p, which lies outside bb, to the closest point of bb.
func surfaceGap(bb game.AABB, p mgl32.Vec3) float32 {
	dx := math32.Max(math32.Max(bb.Left-p.X(), p.X()-bb.Right), 0)
	dy := math32.Max(math32.Max(bb.Top-p.Y(), p.Y()-bb.Bottom), 0)
	dz := math32.Max(math32.Max(bb.ZLow-p.Z(), p.Z()-bb.ZHigh), 0)
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// leastPenetration returns the outward normal of the face of bb closest to p, which lies inside bb, together
// with the depth of p below that face.
func leastPenetration(bb game.AABB, p mgl32.Vec3) (mgl32.Vec3, float32) {
	depths := [6]float32{
		p.X() - bb.Left, bb.Right - p.X(),
		p.Y() - bb.Top, bb.Bottom - p.Y(),
		p.Z() - bb.ZLow, bb.ZHigh - p.Z(),
	}
	best := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] < depths[best] {
			best = i
		}
	}
	return faceNormals[best], depths[best]
}

// faceNormal returns the outward normal of the face of bb that p lies closest to.
func faceNormal(bb game.AABB, p mgl32.Vec3) mgl32.Vec3 {
	dists := [6]float32{
		math32.Abs(p.X() - bb.Left), math32.Abs(bb.Right - p.X()),
		math32.Abs(p.Y() - bb.Top), math32.Abs(bb.Bottom - p.Y()),
		math32.Abs(p.Z() - bb.ZLow), math32.Abs(bb.ZHigh - p.Z()),
	}
	best := 0
	for i := 1; i < len(dists); i++ {
		if dists[i] < dists[best] {
			best = i
		}
	}
	return faceNormals[best]
}

var faceNormals = [6]mgl32.Vec3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

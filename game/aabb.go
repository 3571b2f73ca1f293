package game

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// AABB is an axis aligned bounding box in table space. Left/Right bound the X axis, Top/Bottom the Y axis
// and ZLow/ZHigh the Z axis.
type AABB struct {
	Left, Right float32
	Top, Bottom float32
	ZLow, ZHigh float32
}

// NewAABB returns a box from its six bounds.
func NewAABB(left, right, top, bottom, zLow, zHigh float32) AABB {
	return AABB{Left: left, Right: right, Top: top, Bottom: bottom, ZLow: zLow, ZHigh: zHigh}
}

// EmptyAABB returns a box in the empty sentinel state.
func EmptyAABB() AABB {
	var a AABB
	a.Clear()
	return a
}

// AABBFromBBox converts a spatial index volume into an AABB.
func AABBFromBBox(bb cube.BBox) AABB {
	min, max := bb.Min(), bb.Max()
	return AABB{
		Left: min.X(), Right: max.X(),
		Top: min.Y(), Bottom: max.Y(),
		ZLow: min.Z(), ZHigh: max.Z(),
	}
}

// ToBBox converts the AABB into the spatial index volume type. An empty box has no valid volume and
// converts to the zero box, so callers check IsEmpty first.
func (a AABB) ToBBox() cube.BBox {
	if a.IsEmpty() {
		return cube.BBox{}
	}
	return cube.Box(a.Left, a.Top, a.ZLow, a.Right, a.Bottom, a.ZHigh)
}

// Clear resets the box to the empty sentinel: min at +Inf and max at -Inf, so that the next Extend
// establishes real bounds.
func (a *AABB) Clear() {
	a.Left, a.Top, a.ZLow = math32.Inf(1), math32.Inf(1), math32.Inf(1)
	a.Right, a.Bottom, a.ZHigh = math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)
}

// IsEmpty reports whether the box is inverted on any axis, which includes the cleared sentinel.
func (a AABB) IsEmpty() bool {
	return a.Left > a.Right || a.Top > a.Bottom || a.ZLow > a.ZHigh
}

// Extend grows the box to the union of itself and other.
func (a *AABB) Extend(other AABB) {
	a.Left = math32.Min(a.Left, other.Left)
	a.Right = math32.Max(a.Right, other.Right)
	a.Top = math32.Min(a.Top, other.Top)
	a.Bottom = math32.Max(a.Bottom, other.Bottom)
	a.ZLow = math32.Min(a.ZLow, other.ZLow)
	a.ZHigh = math32.Max(a.ZHigh, other.ZHigh)
}

// ExtendPoint grows the box to contain p.
func (a *AABB) ExtendPoint(p mgl32.Vec3) {
	a.Extend(AABB{Left: p.X(), Right: p.X(), Top: p.Y(), Bottom: p.Y(), ZLow: p.Z(), ZHigh: p.Z()})
}

// Grow returns the box expanded by d on every side.
func (a AABB) Grow(d float32) AABB {
	return AABB{
		Left: a.Left - d, Right: a.Right + d,
		Top: a.Top - d, Bottom: a.Bottom + d,
		ZLow: a.ZLow - d, ZHigh: a.ZHigh + d,
	}
}

func (a AABB) Width() float32  { return a.Right - a.Left }
func (a AABB) Height() float32 { return a.Bottom - a.Top }
func (a AABB) Depth() float32  { return a.ZHigh - a.ZLow }

func (a AABB) Min() mgl32.Vec3 { return mgl32.Vec3{a.Left, a.Top, a.ZLow} }
func (a AABB) Max() mgl32.Vec3 { return mgl32.Vec3{a.Right, a.Bottom, a.ZHigh} }

// Size returns the width, height and depth of the box as a vector.
func (a AABB) Size() mgl32.Vec3 {
	return mgl32.Vec3{a.Width(), a.Height(), a.Depth()}
}

// Center returns the middle point of the box.
func (a AABB) Center() mgl32.Vec3 {
	return mgl32.Vec3{(a.Left + a.Right) * 0.5, (a.Top + a.Bottom) * 0.5, (a.ZLow + a.ZHigh) * 0.5}
}

// IntersectSphere reports whether a sphere at center with the given squared radius touches the box. Only the
// distance by which the center lies outside the box on each axis contributes.
func (a AABB) IntersectSphere(center mgl32.Vec3, radiusSqr float32) bool {
	ex := math32.Max(a.Left-center.X(), 0) + math32.Max(center.X()-a.Right, 0)
	ey := math32.Max(a.Top-center.Y(), 0) + math32.Max(center.Y()-a.Bottom, 0)
	ez := math32.Max(a.ZLow-center.Z(), 0) + math32.Max(center.Z()-a.ZHigh, 0)
	return ex*ex+ey*ey+ez*ez <= radiusSqr
}

// IntersectRect reports whether two boxes overlap. Intervals are closed, so boxes that share a face intersect.
func (a AABB) IntersectRect(other AABB) bool {
	return a.Right >= other.Left && a.Bottom >= other.Top &&
		a.Left <= other.Right && a.Top <= other.Bottom &&
		a.ZLow <= other.ZHigh && a.ZHigh >= other.ZLow
}

// Equal compares every bound exactly.
func (a AABB) Equal(other AABB) bool {
	return a == other
}

// Hash returns a 64-bit hash of the six bounds. Boxes that are Equal hash equally.
func (a AABB) Hash() uint64 {
	var buf [24]byte
	for i, v := range [6]float32{a.Left, a.Right, a.Top, a.Bottom, a.ZLow, a.ZHigh} {
		if v == 0 {
			// -0 and +0 compare equal.
			v = 0
		}
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return xxh3.Hash(buf[:])
}

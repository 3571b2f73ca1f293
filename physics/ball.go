package physics

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/game"
)

// Ball is the dynamic state of a single ball. Balls are stored in a slice owned by the caller and referenced by
// index, so indices stay stable while balls are frozen and unfrozen.
type Ball struct {
	ID     int32
	Pos    mgl32.Vec3
	Vel    mgl32.Vec3
	Radius float32
	Mass   float32
	// IsFrozen excludes the ball from the simulation. A frozen ball is never read or written by a cycle.
	IsFrozen bool
}

// NewBall returns a ball of the default size resting at pos.
func NewBall(id int32, pos mgl32.Vec3) Ball {
	return Ball{ID: id, Pos: pos, Radius: game.DefaultBallRadius, Mass: game.DefaultBallMass}
}

// Sphere returns the ball as a moving sphere for collision tests.
func (b *Ball) Sphere() collider.Sphere {
	return collider.Sphere{Pos: b.Pos, Vel: b.Vel, Radius: b.Radius}
}

// SweptBounds returns the volume the ball can reach while moving for dt.
func (b *Ball) SweptBounds(dt float32) game.AABB {
	bb := game.EmptyAABB()
	bb.ExtendPoint(b.Pos)
	bb.ExtendPoint(b.Pos.Add(b.Vel.Mul(dt)))
	return bb.Grow(b.Radius)
}

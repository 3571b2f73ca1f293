package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/octree"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-3
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y()) && approx(a.Z(), b.Z())
}

func header(id int32, kind collider.Kind, elasticity, friction float32) collider.Header {
	return collider.Header{
		ID:       id,
		ItemID:   id,
		Kind:     kind,
		Material: collider.Material{Elasticity: elasticity, Friction: friction},
	}
}

// wallX returns a plane at x facing along normalX, which is either 1 or -1.
func wallX(id int32, x, normalX, elasticity float32) collider.Collider {
	return collider.NewPlane(header(id, collider.KindWall, elasticity, 0), mgl32.Vec3{normalX, 0, 0}, normalX*x,
		game.NewAABB(x, x, -1000, 1000, -1000, 1000))
}

func wallY(id int32, y, normalY, elasticity float32) collider.Collider {
	return collider.NewPlane(header(id, collider.KindWall, elasticity, 0), mgl32.Vec3{0, normalY, 0}, normalY*y,
		game.NewAABB(-1000, 1000, y, y, -1000, 1000))
}

func buildIndex(colliders ...collider.Collider) *octree.Octree {
	return octree.New(game.NewAABB(-1000, 1000, -1000, 1000, -1000, 1000).ToBBox(), colliders)
}

// weightlessState returns a state without gravity, so balls move in straight lines.
func weightlessState() *State {
	s := NewState()
	s.Gravity = mgl32.Vec3{}
	return s
}

func testBall(pos, vel mgl32.Vec3, radius float32) Ball {
	b := NewBall(1, pos)
	b.Vel = vel
	b.Radius = radius
	return b
}

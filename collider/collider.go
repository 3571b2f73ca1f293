package collider

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// Kind is the kind of table item a collider belongs to. It decides how a contact with the collider is
// resolved and which element, if any, receives the hit event.
type Kind uint8

const (
	KindWall Kind = iota
	KindBumper
	KindDropTarget
	KindHitTarget
	KindKicker
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBumper:
		return "bumper"
	case KindDropTarget:
		return "drop target"
	case KindHitTarget:
		return "hit target"
	case KindKicker:
		return "kicker"
	default:
		return "unknown"
	}
}

// Material holds the response coefficients used when a ball bounces off a collider.
type Material struct {
	Elasticity float32
	Friction   float32
}

// Header is the data shared by every collider.
type Header struct {
	ID     int32
	ItemID int32
	Kind   Kind

	Material Material
	// Threshold is the minimum approaching speed along the normal for the hit to raise an event.
	Threshold float32
	// FireEvents is true if hits on this collider are reported to its item.
	FireEvents bool
}

// Sphere is a ball moving linearly during a time slice.
type Sphere struct {
	Pos    mgl32.Vec3
	Vel    mgl32.Vec3
	Radius float32
}

// At returns the position of the sphere centre after t.
func (s Sphere) At(t float32) mgl32.Vec3 {
	return s.Pos.Add(s.Vel.Mul(t))
}

// Hit is the earliest impact of a sphere against a collider.
type Hit struct {
	// Time is the time to impact from the start of the slice.
	Time float32
	// Normal points away from the collider surface at the point of impact.
	Normal mgl32.Vec3
	// Distance is the gap between the sphere surface and the collider at the start of the slice. It is
	// negative when the sphere already penetrates the collider.
	Distance float32
}

// Collider is a static piece of table geometry a ball can hit.
type Collider interface {
	// Header returns the shared collider data.
	Header() Header
	// Bounds returns the volume the collider occupies, used to build the spatial index.
	Bounds() game.AABB
	// HitTime returns the earliest impact of s within [0, dTime]. Only contacts the sphere is approaching count.
	HitTime(s Sphere, dTime float32) (Hit, bool)
}

type base struct {
	hdr Header
}

func (b *base) Header() Header {
	return b.hdr
}

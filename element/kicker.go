package element

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/assert"
	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/utils"
)

// KickerStatic is the configuration of a kicker.
type KickerStatic struct {
	Center mgl32.Vec2
	Radius float32
	// HitAccuracy scales the hole mesh relative to Radius. The leading edge of the ball must be over the mesh
	// for the kicker to capture it.
	HitAccuracy float32
	// LegacyMode captures every ball that enters the kicker radius, ignoring the hole mesh.
	LegacyMode bool
	// PinSpeed is the speed in units per ms the kick pin travels at.
	PinSpeed float32
	// PinTravel is how far the kick pin moves out when kicking.
	PinTravel float32
	// AutoKickDelay, when non-zero, kicks a held ball out after it was held for this many ms.
	AutoKickDelay uint32
	AutoKickAngle float32
	AutoKickSpeed float32
}

// KickerAnimation is the state of a kicker and its kick pin.
type KickerAnimation struct {
	HasBall   bool
	BallIndex int
	HitEvent  bool

	// KickRequested is set while a kick waits to be applied by the next physics cycle.
	KickRequested bool
	KickAngle     float32
	KickSpeed     float32

	PinOffset    float32
	PinAnimation bool
	PinMovingOut bool
	HeldSince    uint32
	TimeMsec     uint32
}

// KickerState is a kicker item. It owns the collision mesh of its hole, which must be released with Dispose.
type KickerState struct {
	ItemID      int32
	Static      KickerStatic
	Animation   KickerAnimation
	Mesh        *Mesh
	RenderItems []int32
}

// NewKickerState returns an empty kicker and builds its hole mesh.
func NewKickerState(itemID int32, static KickerStatic, renderItems ...int32) *KickerState {
	if static.HitAccuracy <= 0 {
		static.HitAccuracy = 1
	}
	return &KickerState{
		ItemID:      itemID,
		Static:      static,
		Mesh:        NewMesh(itemID, static.Center, static.Radius*static.HitAccuracy, game.KickerMeshSegments),
		RenderItems: renderItems,
	}
}

// Dispose releases the hole mesh of the kicker.
func (k *KickerState) Dispose() {
	k.Mesh.Dispose()
}

// CanCapture reports whether a ball at pos moving with vel and the given radius falls into the kicker.
func (k *KickerState) CanCapture(pos, vel mgl32.Vec3, radius float32) bool {
	if k.Animation.HasBall || k.Animation.KickRequested {
		return false
	}
	if k.Static.LegacyMode {
		return true
	}
	leading := mgl32.Vec2{pos.X(), pos.Y()}
	if dir := (mgl32.Vec2{vel.X(), vel.Y()}); dir.Len() > 1e-6 {
		leading = leading.Add(dir.Normalize().Mul(radius))
	}
	return k.Mesh.Contains(leading)
}

// Capture marks the ball at index as held by the kicker.
func (k *KickerState) Capture(index int) {
	k.Animation.HasBall = true
	k.Animation.BallIndex = index
	k.Animation.HitEvent = true
}

// Kick requests the held ball to be kicked out at angle degrees with the given speed. It reports false if the
// kicker holds no ball.
func Kick(anim *KickerAnimation, angle, speed float32) bool {
	if !anim.HasBall || anim.KickRequested {
		return false
	}
	anim.KickRequested = true
	anim.KickAngle = angle
	anim.KickSpeed = speed
	anim.PinAnimation = true
	anim.PinMovingOut = true
	return true
}

// Release clears the held ball after a requested kick was applied and returns its index.
func (k *KickerState) Release() int {
	index := k.Animation.BallIndex
	k.Animation.HasBall = false
	k.Animation.KickRequested = false
	k.Animation.BallIndex = 0
	return index
}

// UpdateKicker advances the kick pin and the auto kick timer.
func UpdateKicker(anim *KickerAnimation, static *KickerStatic, currentTimeMsec uint32) {
	dt := elapsed(&anim.TimeMsec, currentTimeMsec)

	if anim.HitEvent {
		anim.HitEvent = false
		anim.HeldSince = currentTimeMsec
	}
	if anim.HasBall && !anim.KickRequested && static.AutoKickDelay > 0 {
		if currentTimeMsec < anim.HeldSince {
			anim.HeldSince = currentTimeMsec
		} else if currentTimeMsec-anim.HeldSince >= static.AutoKickDelay {
			Kick(anim, static.AutoKickAngle, static.AutoKickSpeed)
		}
	}
	if !anim.PinAnimation {
		return
	}

	step := static.PinSpeed * dt
	if anim.PinMovingOut {
		anim.PinOffset += step
		if anim.PinOffset >= static.PinTravel {
			anim.PinOffset = static.PinTravel
			anim.PinMovingOut = false
		}
		return
	}

	anim.PinOffset -= step
	if anim.PinOffset <= 0 {
		anim.PinOffset = 0
		anim.PinAnimation = false
	}
}

// Mesh is the polygon a kicker uses to decide whether a ball is over its hole. Its vertex buffer is taken from a
// pool when the mesh is built and handed back by Dispose.
type Mesh struct {
	owner    int32
	vertices *[]mgl32.Vec2
}

// NewMesh builds a regular polygon with the given number of segments around center.
func NewMesh(owner int32, center mgl32.Vec2, radius float32, segments int) *Mesh {
	vertices := utils.GetVec2List()
	for i := range segments {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		*vertices = append(*vertices, mgl32.Vec2{center.X() + radius*math32.Cos(a), center.Y() + radius*math32.Sin(a)})
	}
	return &Mesh{owner: owner, vertices: vertices}
}

// Vertices returns the vertices of the mesh. The slice is only valid until Dispose.
func (m *Mesh) Vertices() []mgl32.Vec2 {
	assert.IsTrue(m.vertices != nil, game.ErrorMeshDisposed, m.owner)
	return *m.vertices
}

// Contains reports whether p lies inside the mesh polygon.
func (m *Mesh) Contains(p mgl32.Vec2) bool {
	vs := m.Vertices()
	inside := false
	for i, j := 0, len(vs)-1; i < len(vs); j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) &&
			p.X() < (b.X()-a.X())*(p.Y()-a.Y())/(b.Y()-a.Y())+a.X() {
			inside = !inside
		}
	}
	return inside
}

// Disposed reports whether the mesh was released.
func (m *Mesh) Disposed() bool {
	return m.vertices == nil
}

// Dispose hands the vertex buffer back to the pool. Disposing a mesh twice panics.
func (m *Mesh) Dispose() {
	assert.IsTrue(m.vertices != nil, game.ErrorMeshDoubleDispose, m.owner)
	utils.PutVec2List(m.vertices)
	m.vertices = nil
}

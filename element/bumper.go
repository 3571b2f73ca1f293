package element

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/game"
)

// BumperStatic is the configuration of a bumper.
type BumperStatic struct {
	Center mgl32.Vec2
	Radius float32
	// Force is the extra speed added along the contact normal when the ball hits the bumper hard enough.
	Force float32
	// RingSpeed is the speed in units per ms the ring moves at.
	RingSpeed float32
	// RingDropOffset is how far the ring moves down when the bumper fires.
	RingDropOffset float32
}

// BumperRingAnimation is the ring of a bumper, which pulls down when the bumper fires.
type BumperRingAnimation struct {
	Offset      float32
	IsHit       bool
	AnimateDown bool
	DoAnimate   bool
	TimeMsec    uint32
}

// BumperSkirtAnimation is the skirt of a bumper, which tilts towards the ball that fired it.
type BumperSkirtAnimation struct {
	// Rotation is the tilt around the X and Y axes in degrees.
	Rotation  mgl32.Vec2
	HitEvent  bool
	BallPos   mgl32.Vec3
	DoAnimate bool
	// TimeStamp is the time the skirt started tilting at.
	TimeStamp uint32
	TimeMsec  uint32
}

// BumperState is a bumper item.
type BumperState struct {
	ItemID      int32
	Static      BumperStatic
	Ring        BumperRingAnimation
	Skirt       BumperSkirtAnimation
	RenderItems []int32
}

// NewBumperState returns a bumper at rest.
func NewBumperState(itemID int32, static BumperStatic, renderItems ...int32) *BumperState {
	return &BumperState{ItemID: itemID, Static: static, RenderItems: renderItems}
}

// Fire raises the hit events of the ring and the skirt for a ball at ballPos.
func (b *BumperState) Fire(ballPos mgl32.Vec3) {
	b.Ring.IsHit = true
	b.Skirt.HitEvent = true
	b.Skirt.BallPos = ballPos
}

// UpdateBumper advances both the ring and the skirt of a bumper.
func UpdateBumper(b *BumperState, currentTimeMsec uint32) {
	UpdateBumperRing(&b.Ring, &b.Static, currentTimeMsec)
	UpdateBumperSkirt(&b.Skirt, &b.Static, currentTimeMsec)
}

// UpdateBumperRing moves the ring down to RingDropOffset after a hit and back up to zero.
func UpdateBumperRing(anim *BumperRingAnimation, static *BumperStatic, currentTimeMsec uint32) {
	dt := elapsed(&anim.TimeMsec, currentTimeMsec)

	if anim.IsHit {
		anim.IsHit = false
		anim.DoAnimate = true
		anim.AnimateDown = true
	}
	if !anim.DoAnimate {
		return
	}

	step := static.RingSpeed * dt
	if anim.AnimateDown {
		anim.Offset -= step
		if anim.Offset <= -static.RingDropOffset {
			anim.Offset = -static.RingDropOffset
			anim.AnimateDown = false
		}
		return
	}

	anim.Offset += step
	if anim.Offset >= 0 {
		anim.Offset = 0
		anim.DoAnimate = false
	}
}

// UpdateBumperSkirt tilts the skirt towards the ball for SkirtDuration ms after a hit, then levels it again.
func UpdateBumperSkirt(anim *BumperSkirtAnimation, static *BumperStatic, currentTimeMsec uint32) {
	elapsed(&anim.TimeMsec, currentTimeMsec)

	if anim.HitEvent {
		anim.HitEvent = false
		anim.DoAnimate = true
		anim.TimeStamp = currentTimeMsec

		dir := mgl32.Vec2{anim.BallPos.X() - static.Center.X(), anim.BallPos.Y() - static.Center.Y()}
		if l := dir.Len(); l > 1e-6 {
			dir = dir.Mul(1 / l)
			anim.Rotation = mgl32.Vec2{-dir.Y() * game.SkirtTilt, dir.X() * game.SkirtTilt}
		} else {
			anim.Rotation = mgl32.Vec2{}
		}
	}
	if !anim.DoAnimate {
		return
	}

	if currentTimeMsec < anim.TimeStamp || currentTimeMsec-anim.TimeStamp >= game.SkirtDuration {
		anim.Rotation = mgl32.Vec2{}
		anim.DoAnimate = false
	}
}

// SkirtAngle returns the magnitude of the skirt tilt in degrees.
func (a *BumperSkirtAnimation) SkirtAngle() float32 {
	return math32.Hypot(a.Rotation.X(), a.Rotation.Y())
}

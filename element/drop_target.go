package element

import "github.com/oomph-ac/pinball/game"

// DropTargetStatic is the configuration of a drop target.
type DropTargetStatic struct {
	// Speed is the fall and rise speed in table units per ms.
	Speed float32
	// RaiseDelay is how long, in ms, a raised target waits before it starts moving up.
	RaiseDelay uint32
}

// DropTargetAnimation is the fall state of a drop target. ZOffset runs from 0 (up) to -DropTargetLimit (down).
type DropTargetAnimation struct {
	ZOffset       float32
	HitEvent      bool
	IsDropped     bool
	MoveDown      bool
	MoveAnimation bool
	// TimeStamp is the time the last raise was requested at.
	TimeStamp uint32
	TimeMsec  uint32
}

// DropTargetState is a drop target item.
type DropTargetState struct {
	ItemID      int32
	Static      DropTargetStatic
	Animation   DropTargetAnimation
	RenderItems []int32
}

// NewDropTargetState returns a drop target standing up.
func NewDropTargetState(itemID int32, static DropTargetStatic, renderItems ...int32) *DropTargetState {
	return &DropTargetState{ItemID: itemID, Static: static, RenderItems: renderItems}
}

// Collidable reports whether balls can hit the target. A target stops colliding as soon as it starts to fall
// and collides again once it is fully raised.
func (a *DropTargetAnimation) Collidable() bool {
	return !a.IsDropped && !a.MoveDown
}

// RaiseDropTarget requests a dropped or falling target to come back up after the configured delay. The target
// counts as dropped until it is fully raised.
func RaiseDropTarget(anim *DropTargetAnimation, currentTimeMsec uint32) {
	if !anim.IsDropped && !anim.MoveDown {
		return
	}
	anim.IsDropped = true
	anim.MoveDown = false
	anim.MoveAnimation = true
	anim.TimeStamp = currentTimeMsec
}

// DropDropTarget drops a standing target without a ball hitting it.
func DropDropTarget(anim *DropTargetAnimation) {
	if anim.MoveDown || (anim.IsDropped && !anim.MoveAnimation) {
		return
	}
	anim.MoveDown = true
	anim.MoveAnimation = true
}

// UpdateDropTarget advances the fall or rise of the target.
func UpdateDropTarget(anim *DropTargetAnimation, static *DropTargetStatic, currentTimeMsec uint32) {
	dt := elapsed(&anim.TimeMsec, currentTimeMsec)

	if anim.HitEvent {
		anim.HitEvent = false
		DropDropTarget(anim)
	}
	if !anim.MoveAnimation {
		return
	}

	step := static.Speed
	if anim.MoveDown {
		step = -step
	} else {
		start := anim.TimeStamp + static.RaiseDelay
		if currentTimeMsec < anim.TimeStamp || currentTimeMsec < start {
			step = 0
		} else if since := float32(currentTimeMsec - start); since < dt {
			// Only the part of the tick after the delay counts.
			dt = since
		}
	}
	anim.ZOffset += step * dt

	if anim.MoveDown {
		if anim.ZOffset <= -game.DropTargetLimit {
			anim.ZOffset = -game.DropTargetLimit
			anim.MoveDown = false
			anim.MoveAnimation = false
			anim.IsDropped = true
		}
		return
	}
	if anim.ZOffset >= 0 {
		anim.ZOffset = 0
		anim.MoveAnimation = false
		anim.IsDropped = false
	}
}

package element

// HitTargetStatic is the configuration of a hit target.
type HitTargetStatic struct {
	// Speed is the swing speed in degrees per ms.
	Speed float32
	// MaxAngle is the angle at which the target swings back.
	MaxAngle float32
}

// HitTargetAnimation is the swing state of a hit target. MoveDirection is true while swinging out.
type HitTargetAnimation struct {
	XRotation     float32
	MoveAnimation bool
	MoveDirection bool
	HitEvent      bool
	TimeMsec      uint32
}

// HitTargetState is a hit target item.
type HitTargetState struct {
	ItemID    int32
	Static    HitTargetStatic
	Animation HitTargetAnimation
	// RenderItems are the render entities that follow XRotation.
	RenderItems []int32
}

// NewHitTargetState returns an idle hit target, ready to swing out.
func NewHitTargetState(itemID int32, static HitTargetStatic, renderItems ...int32) *HitTargetState {
	return &HitTargetState{
		ItemID:      itemID,
		Static:      static,
		Animation:   HitTargetAnimation{MoveDirection: true},
		RenderItems: renderItems,
	}
}

// UpdateHitTarget advances the swing. A pending hit starts a swing out to MaxAngle, after which the target
// swings back to zero and becomes idle again.
func UpdateHitTarget(anim *HitTargetAnimation, static *HitTargetStatic, currentTimeMsec uint32) {
	dt := elapsed(&anim.TimeMsec, currentTimeMsec)

	if anim.HitEvent {
		anim.HitEvent = false
		anim.MoveAnimation = true
	}
	if !anim.MoveAnimation {
		return
	}

	step := static.Speed * dt
	if anim.MoveDirection {
		anim.XRotation += step
		if anim.XRotation >= static.MaxAngle {
			anim.XRotation = static.MaxAngle
			anim.MoveDirection = false
		}
		return
	}

	anim.XRotation -= step
	if anim.XRotation <= 0 {
		anim.XRotation = 0
		anim.MoveAnimation = false
		anim.MoveDirection = true
	}
}

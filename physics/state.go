package physics

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/element"
	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/utils"
)

// DefaultEventCapacity is the amount of hit events kept between two drains.
const DefaultEventCapacity = 256

// HitEvent reports a ball hitting a table item, for consumers such as sound and scoring.
type HitEvent struct {
	ItemID    int32
	Kind      collider.Kind
	BallIndex int
	BallID    int32
	Normal    mgl32.Vec3
	// Speed is the approaching speed of the ball along the normal.
	Speed    float32
	TimeMsec uint32
}

// State is the mutable simulation state shared between ticks. It owns the element states, keyed by item id in
// insertion order, the set of disabled items and the queue of hit events.
type State struct {
	// Gravity is the acceleration applied to every moving ball, in units per ms².
	Gravity mgl32.Vec3
	// TimeMsec is the current simulation time.
	TimeMsec uint32

	HitTargets  *orderedmap.OrderedMap[int32, *element.HitTargetState]
	DropTargets *orderedmap.OrderedMap[int32, *element.DropTargetState]
	Bumpers     *orderedmap.OrderedMap[int32, *element.BumperState]
	Kickers     *orderedmap.OrderedMap[int32, *element.KickerState]

	Stats Stats

	disabled map[int32]struct{}
	events   *utils.CircularQueue[HitEvent]
}

// NewState returns an empty state with the default gravity.
func NewState() *State {
	return &State{
		Gravity:     mgl32.Vec3{0, game.DefaultGravityY, game.DefaultGravityZ},
		HitTargets:  orderedmap.NewOrderedMap[int32, *element.HitTargetState](),
		DropTargets: orderedmap.NewOrderedMap[int32, *element.DropTargetState](),
		Bumpers:     orderedmap.NewOrderedMap[int32, *element.BumperState](),
		Kickers:     orderedmap.NewOrderedMap[int32, *element.KickerState](),
		disabled:    make(map[int32]struct{}),
		events:      utils.NewCircularQueue[HitEvent](DefaultEventCapacity),
	}
}

// HasItem reports whether any element is registered under itemID.
func (s *State) HasItem(itemID int32) bool {
	_, ht := s.HitTargets.Get(itemID)
	_, dt := s.DropTargets.Get(itemID)
	_, b := s.Bumpers.Get(itemID)
	_, k := s.Kickers.Get(itemID)
	return ht || dt || b || k
}

// SetDisabled enables or disables every collider of the item.
func (s *State) SetDisabled(itemID int32, disabled bool) {
	if disabled {
		s.disabled[itemID] = struct{}{}
		return
	}
	delete(s.disabled, itemID)
}

// IsDisabled reports whether the colliders of the item are ignored by the broad phase.
func (s *State) IsDisabled(itemID int32) bool {
	_, ok := s.disabled[itemID]
	return ok
}

// UpdateElements advances every element once to currentTimeMsec and syncs the drop target colliders with the
// new drop target states.
func (s *State) UpdateElements(currentTimeMsec uint32) {
	s.TimeMsec = currentTimeMsec

	for el := s.HitTargets.Front(); el != nil; el = el.Next() {
		element.UpdateHitTarget(&el.Value.Animation, &el.Value.Static, currentTimeMsec)
	}
	for el := s.DropTargets.Front(); el != nil; el = el.Next() {
		element.UpdateDropTarget(&el.Value.Animation, &el.Value.Static, currentTimeMsec)
	}
	s.syncDropTargets()
	for el := s.Bumpers.Front(); el != nil; el = el.Next() {
		element.UpdateBumper(el.Value, currentTimeMsec)
	}
	for el := s.Kickers.Front(); el != nil; el = el.Next() {
		element.UpdateKicker(&el.Value.Animation, &el.Value.Static, currentTimeMsec)
	}
}

// syncDropTargets disables the colliders of every drop target that is not standing up, including targets
// dropped or raised from outside the physics since the last update.
func (s *State) syncDropTargets() {
	for el := s.DropTargets.Front(); el != nil; el = el.Next() {
		s.SetDisabled(el.Key, !el.Value.Animation.Collidable())
	}
}

// pushEvent queues a hit event, dropping the oldest one if nobody drained the queue for too long.
func (s *State) pushEvent(ev HitEvent) {
	ev.TimeMsec = s.TimeMsec
	if dropped, _ := s.events.Append(ev); dropped {
		s.Stats.DroppedEvents.Inc()
	}
	s.Stats.Events.Inc()
}

// DrainEvents appends all queued hit events to dst in the order they happened and empties the queue.
func (s *State) DrainEvents(dst []HitEvent) []HitEvent {
	for {
		ev, ok := s.events.Pop()
		if !ok {
			return dst
		}
		dst = append(dst, ev)
	}
}

// Close releases the resources owned by the elements, such as the kicker meshes.
func (s *State) Close() {
	for el := s.Kickers.Front(); el != nil; el = el.Next() {
		el.Value.Dispose()
	}
}

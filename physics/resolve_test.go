package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/element"
	"github.com/oomph-ac/pinball/game"
)

func bumperTable(threshold float32) (*State, []collider.Collider) {
	state := weightlessState()
	state.Bumpers.Set(10, element.NewBumperState(10, element.BumperStatic{
		Center: mgl32.Vec2{0, 0}, Radius: 10, Force: 2, RingSpeed: 1, RingDropOffset: 10,
	}))
	h := header(10, collider.KindBumper, 1, 0)
	h.Threshold = threshold
	return state, []collider.Collider{collider.NewCircle(h, mgl32.Vec2{0, 0}, 10, -5, 5)}
}

func TestBumperAddsForce(t *testing.T) {
	state, colliders := bumperTable(0.5)
	balls := []Ball{testBall(mgl32.Vec3{-20, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)}

	Simulate(10, state, buildIndex(colliders...), balls)

	if !approxVec(balls[0].Vel, mgl32.Vec3{-3, 0, 0}) {
		t.Fatalf("expected bumper to kick the ball back at speed 3, got %v", balls[0].Vel)
	}
	if !approxVec(balls[0].Pos, mgl32.Vec3{-14, 0, 0}) {
		t.Fatalf("unexpected position %v", balls[0].Pos)
	}

	b, _ := state.Bumpers.Get(10)
	if !b.Ring.IsHit || !b.Skirt.HitEvent {
		t.Fatalf("bumper hit events not raised: %+v", b)
	}
	events := state.DrainEvents(nil)
	if len(events) != 1 || events[0].Kind != collider.KindBumper || events[0].ItemID != 10 || !approx(events[0].Speed, 1) {
		t.Fatalf("unexpected events %+v", events)
	}
	if len(state.DrainEvents(nil)) != 0 {
		t.Fatal("events should be drained")
	}
}

func TestBumperBelowThreshold(t *testing.T) {
	state, colliders := bumperTable(0.5)
	balls := []Ball{testBall(mgl32.Vec3{-20, 0, 0}, mgl32.Vec3{0.2, 0, 0}, 1)}

	Simulate(50, state, buildIndex(colliders...), balls)

	if !approxVec(balls[0].Vel, mgl32.Vec3{-0.2, 0, 0}) {
		t.Fatalf("expected a plain bounce, got %v", balls[0].Vel)
	}
	b, _ := state.Bumpers.Get(10)
	if b.Ring.IsHit {
		t.Fatal("soft hit should not fire the bumper")
	}
	if len(state.DrainEvents(nil)) != 0 {
		t.Fatal("soft hit should not raise an event")
	}
}

func TestHitTargetRaisesEvent(t *testing.T) {
	state := weightlessState()
	state.HitTargets.Set(11, element.NewHitTargetState(11, element.HitTargetStatic{Speed: 1, MaxAngle: 30}))
	target := collider.NewPlane(header(11, collider.KindHitTarget, 0.8, 0), mgl32.Vec3{-1, 0, 0}, -10,
		game.NewAABB(10, 10, -50, 50, -50, 50))
	balls := []Ball{testBall(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)}

	Simulate(10, state, buildIndex(target), balls)

	h, _ := state.HitTargets.Get(11)
	if !h.Animation.HitEvent {
		t.Fatal("hit target event not raised")
	}
	state.UpdateElements(16)
	if h.Animation.HitEvent || !h.Animation.MoveAnimation {
		t.Fatalf("hit event not consumed by the update: %+v", h.Animation)
	}
}

func TestDropTargetDisablesCollider(t *testing.T) {
	state := weightlessState()
	state.DropTargets.Set(20, element.NewDropTargetState(20, element.DropTargetStatic{Speed: 1}))
	index := buildIndex(collider.NewBox(header(20, collider.KindDropTarget, 1, 0), game.NewAABB(10, 12, -5, 5, -5, 5)))

	balls := []Ball{testBall(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)}
	Simulate(12, state, index, balls)

	d, _ := state.DropTargets.Get(20)
	if !d.Animation.HitEvent {
		t.Fatal("drop target event not raised")
	}
	if balls[0].Vel.X() >= 0 {
		t.Fatalf("ball should bounce off a standing drop target, got %v", balls[0].Vel)
	}

	state.UpdateElements(16)
	if !state.IsDisabled(20) {
		t.Fatal("falling drop target should disable its collider")
	}

	balls[0] = testBall(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)
	Simulate(20, state, index, balls)
	if balls[0].Pos != (mgl32.Vec3{20, 0, 0}) {
		t.Fatalf("ball should pass a dropped target, got %v", balls[0].Pos)
	}

	element.RaiseDropTarget(&d.Animation, 16)
	state.UpdateElements(1000)
	if state.IsDisabled(20) {
		t.Fatal("raised drop target should enable its collider again")
	}
}

func TestDropTargetDroppedBetweenTicks(t *testing.T) {
	state := weightlessState()
	d := element.NewDropTargetState(20, element.DropTargetStatic{Speed: 1})
	state.DropTargets.Set(20, d)
	index := buildIndex(collider.NewBox(header(20, collider.KindDropTarget, 1, 0), game.NewAABB(10, 12, -5, 5, -5, 5)))

	element.DropDropTarget(&d.Animation)
	balls := []Ball{testBall(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)}
	Simulate(20, state, index, balls)

	if balls[0].Pos != (mgl32.Vec3{20, 0, 0}) {
		t.Fatalf("ball should pass a target dropped before the tick, got %v", balls[0].Pos)
	}
	if !state.IsDisabled(20) {
		t.Fatal("dropped target should be disabled by the tick")
	}
	if n := len(state.DrainEvents(nil)); n != 0 {
		t.Fatalf("dropped target raised %d events", n)
	}
}

func TestKickerCaptureAndKick(t *testing.T) {
	state := weightlessState()
	k := element.NewKickerState(30, element.KickerStatic{Center: mgl32.Vec2{0, 0}, Radius: 25, HitAccuracy: 0.7, PinSpeed: 1, PinTravel: 5})
	state.Kickers.Set(30, k)
	defer state.Close()
	index := buildIndex(collider.NewTriggerCircle(header(30, collider.KindKicker, 0, 0), mgl32.Vec2{0, 0}, 25, -50, 50))

	balls := []Ball{testBall(mgl32.Vec3{-40, 0, 0}, mgl32.Vec3{1, 0, 0}, 10)}
	Simulate(20, state, index, balls)

	if !balls[0].IsFrozen || balls[0].Pos != (mgl32.Vec3{0, 0, 0}) || balls[0].Vel != (mgl32.Vec3{}) {
		t.Fatalf("expected ball captured at the kicker center, got %+v", balls[0])
	}
	if !k.Animation.HasBall || k.Animation.BallIndex != 0 {
		t.Fatalf("kicker does not hold the ball: %+v", k.Animation)
	}
	if state.Stats.Captures.Load() != 1 {
		t.Fatalf("expected one capture, got %d", state.Stats.Captures.Load())
	}
	events := state.DrainEvents(nil)
	if len(events) != 1 || events[0].Kind != collider.KindKicker {
		t.Fatalf("unexpected events %+v", events)
	}

	held := balls[0]
	Simulate(16, state, index, balls)
	if balls[0] != held {
		t.Fatal("held ball should not move")
	}

	if !element.Kick(&k.Animation, 90, 2) {
		t.Fatal("kick rejected")
	}
	Simulate(1, state, index, balls)
	if balls[0].IsFrozen || !approxVec(balls[0].Vel, mgl32.Vec3{2, 0, 0}) || !approxVec(balls[0].Pos, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("expected ball kicked out along +X, got %+v", balls[0])
	}
	if k.Animation.HasBall {
		t.Fatal("kicker still holds the ball after the kick")
	}

	Simulate(10, state, index, balls)
	if balls[0].IsFrozen {
		t.Fatal("kicked ball should not be captured again while leaving")
	}
}

func TestKickerMissesOffCenterBall(t *testing.T) {
	state := weightlessState()
	k := element.NewKickerState(30, element.KickerStatic{Center: mgl32.Vec2{0, 0}, Radius: 25, HitAccuracy: 0.7})
	state.Kickers.Set(30, k)
	defer state.Close()
	index := buildIndex(collider.NewTriggerCircle(header(30, collider.KindKicker, 0, 0), mgl32.Vec2{0, 0}, 25, -50, 50))

	balls := []Ball{testBall(mgl32.Vec3{-40, 22, 0}, mgl32.Vec3{1, 0, 0}, 10)}
	Simulate(80, state, index, balls)

	if balls[0].IsFrozen || k.Animation.HasBall {
		t.Fatal("ball grazing the kicker edge should not be captured")
	}
	if !approxVec(balls[0].Pos, mgl32.Vec3{40, 22, 0}) {
		t.Fatalf("grazing ball should keep its path, got %v", balls[0].Pos)
	}
}

func TestBroadPhaseSkipsDisabledItems(t *testing.T) {
	state := weightlessState()
	index := buildIndex(wallX(1, 6, -1, 1), wallX(2, 3, -1, 1))
	ball := testBall(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, 1)

	if got := broadPhase(index, state, &ball, 10, nil); len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got := broadPhase(index, state, &ball, 1, nil); len(got) != 0 {
		t.Fatalf("expected no candidates for a short sweep, got %d", len(got))
	}

	state.SetDisabled(2, true)
	got := broadPhase(index, state, &ball, 10, nil)
	if len(got) != 1 || got[0].Header().ItemID != 1 {
		t.Fatalf("disabled item not filtered: %v", got)
	}
}

func TestSweptBounds(t *testing.T) {
	ball := testBall(mgl32.Vec3{10, 10, 10}, mgl32.Vec3{-1, 2, 0}, 5)
	want := game.NewAABB(-5, 15, 5, 35, 5, 15)
	if got := ball.SweptBounds(10); !got.Equal(want) {
		t.Fatalf("SweptBounds = %+v, want %+v", got, want)
	}
}

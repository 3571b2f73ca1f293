package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/assert"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/game"
)

// resolveStatic applies the response of a contact with a static collider to its ball and raises the hit
// events of the element the collider belongs to.
func resolveStatic(state *State, balls []Ball, c Contact) {
	assert.IsTrue(c.BallIndex >= 0 && c.BallIndex < len(balls), game.ErrorBallIndexOutOfRange, c.BallIndex, len(balls))
	ball := &balls[c.BallIndex]
	if ball.IsFrozen {
		// Captured earlier in this sub-step.
		return
	}
	hdr := c.Collider.Header()

	if hdr.Kind == collider.KindKicker {
		captureBall(state, balls, c)
		return
	}

	vn := ball.Vel.Dot(c.Normal)
	if vn >= 0 {
		return
	}
	if c.HitTime == 0 && c.Distance < 0 {
		ball.Pos = ball.Pos.Add(c.Normal.Mul(-c.Distance))
	}

	tangent := ball.Vel.Sub(c.Normal.Mul(vn))
	speed := -vn
	if speed < game.RestingSpeed {
		// Resting contact, such as a ball rolling on the playfield.
		ball.Vel = tangent
		return
	}
	ball.Vel = c.Normal.Mul(-hdr.Material.Elasticity * vn).Add(frictionTangent(tangent, hdr.Material, speed))

	if speed < hdr.Threshold || state == nil {
		return
	}
	ev := HitEvent{ItemID: hdr.ItemID, Kind: hdr.Kind, BallIndex: c.BallIndex, BallID: ball.ID, Normal: c.Normal, Speed: speed}

	switch hdr.Kind {
	case collider.KindBumper:
		b, ok := state.Bumpers.Get(hdr.ItemID)
		if !ok {
			return
		}
		ball.Vel = ball.Vel.Add(c.Normal.Mul(b.Static.Force))
		b.Fire(ball.Pos)
	case collider.KindHitTarget:
		h, ok := state.HitTargets.Get(hdr.ItemID)
		if !ok {
			return
		}
		h.Animation.HitEvent = true
	case collider.KindDropTarget:
		d, ok := state.DropTargets.Get(hdr.ItemID)
		if !ok || !d.Animation.Collidable() {
			return
		}
		d.Animation.HitEvent = true
	default:
		if !hdr.FireEvents {
			return
		}
	}
	state.pushEvent(ev)
}

// frictionTangent returns the tangential velocity left after a bounce. The change is bounded by the normal impulse
// (Coulomb), so friction can stop the sliding but never reverse it.
func frictionTangent(tangent mgl32.Vec3, m collider.Material, approach float32) mgl32.Vec3 {
	vt := tangent.Len()
	if vt == 0 || m.Friction <= 0 {
		return tangent
	}
	change := math32.Min(vt, m.Friction*(1+m.Elasticity)*approach)
	return tangent.Mul(1 - change/vt)
}

// captureBall freezes the ball in the kicker the contact belongs to, if the kicker takes it.
func captureBall(state *State, balls []Ball, c Contact) {
	if state == nil {
		return
	}
	hdr := c.Collider.Header()
	k, ok := state.Kickers.Get(hdr.ItemID)
	if !ok {
		return
	}
	ball := &balls[c.BallIndex]
	if !k.CanCapture(ball.Pos, ball.Vel, ball.Radius) {
		return
	}

	speed := math32.Sqrt(game.XYLenSqr(ball.Vel))
	ball.IsFrozen = true
	ball.Vel = mgl32.Vec3{}
	ball.Pos = mgl32.Vec3{k.Static.Center.X(), k.Static.Center.Y(), ball.Pos.Z()}
	k.Capture(c.BallIndex)

	state.Stats.Captures.Inc()
	state.pushEvent(HitEvent{ItemID: hdr.ItemID, Kind: hdr.Kind, BallIndex: c.BallIndex, BallID: ball.ID, Normal: c.Normal, Speed: speed})
}

// applyKicks releases the balls of every kicker with a pending kick.
func applyKicks(state *State, balls []Ball) {
	if state == nil {
		return
	}
	for el := state.Kickers.Front(); el != nil; el = el.Next() {
		k := el.Value
		if !k.Animation.KickRequested || !k.Animation.HasBall {
			continue
		}
		angle, speed := k.Animation.KickAngle, k.Animation.KickSpeed
		index := k.Release()
		assert.IsTrue(index >= 0 && index < len(balls), game.ErrorBallIndexOutOfRange, index, len(balls))

		ball := &balls[index]
		ball.IsFrozen = false
		ball.Vel = game.DirectionXY(angle).Mul(speed)
		state.Stats.Kicks.Inc()
	}
}

package physics

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/assert"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/utils"
	"github.com/oomph-ac/pinball/worker"
	"github.com/sirupsen/logrus"
)

// Options define the behaviour of a Cycle.
type Options struct {
	// Log receives warnings and, at trace level, a line per sub-step. A nil Log discards everything.
	Log *logrus.Logger

	// Workers is the amount of goroutines ball detection is spread over. Values below 2 detect sequentially.
	Workers int
	// MaxSubSteps bounds the sub-steps of a single tick. Zero uses game.MaxSubSteps.
	MaxSubSteps int

	// OnSubStep is called with the time consumed by every sub-step.
	OnSubStep func(hitTime float32)
}

// scratch holds the buffers a single detection pass writes to.
type scratch struct {
	contacts   *ContactBuffer
	candidates *[]collider.Collider
	hitTime    float32
}

func newScratch() *scratch {
	return &scratch{contacts: NewContactBuffer(), candidates: utils.GetColliderList()}
}

func (s *scratch) close() {
	s.contacts.Close()
	utils.PutColliderList(s.candidates)
	s.candidates = nil
}

// Cycle runs the physics of a tick. It owns the contact buffer and candidate list it works with, which are
// acquired by NewCycle and released by Close. A Cycle is not safe for concurrent use.
type Cycle struct {
	opts Options
	log  *logrus.Logger

	main    *scratch
	workers []*scratch

	closed bool
}

// NewCycle acquires the buffers of a new cycle.
func NewCycle(opts Options) *Cycle {
	if opts.MaxSubSteps <= 0 {
		opts.MaxSubSteps = game.MaxSubSteps
	}
	log := opts.Log
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	c := &Cycle{opts: opts, log: log, main: newScratch()}
	if opts.Workers > 1 {
		c.workers = make([]*scratch, opts.Workers)
		for i := range c.workers {
			c.workers[i] = newScratch()
		}
	}
	return c
}

// Close releases the buffers of the cycle. Closing a cycle twice panics.
func (c *Cycle) Close() {
	assert.IsTrue(!c.closed, game.ErrorCycleDoubleClose)
	c.closed = true

	c.main.close()
	for _, w := range c.workers {
		w.close()
	}
	c.workers = nil
}

// Simulate advances every ball that is not frozen by dTime ms. The slice is split into sub-steps at the earliest
// impact found, so fast balls cannot pass through thin colliders. Balls are updated in place and keep their
// index; frozen balls are neither read nor written.
func (c *Cycle) Simulate(dTime float32, state *State, index SpatialIndex, balls []Ball) {
	assert.IsTrue(!c.closed, game.ErrorCycleClosed)
	if dTime <= 0 {
		return
	}
	if state != nil {
		state.Stats.Ticks.Inc()
		state.syncDropTargets()
	}

	applyKicks(state, balls)
	c.applyVelocityUpdate(dTime, state, balls)

	contacts := c.main.contacts
	remaining := dTime
	for step := 0; remaining > 0; step++ {
		hitTime := remaining
		contacts.Clear()

		if step >= c.opts.MaxSubSteps {
			// The balls are stuck resolving zero time contacts. Consume the rest of the slice without detection.
			c.log.Warnf("physics: %d sub-steps in one tick, skipping detection for the remaining %.4fms", step, remaining)
			if state != nil {
				state.Stats.SubStepLimitHits.Inc()
			}
		} else if len(c.workers) > 1 {
			hitTime = c.detectParallel(hitTime, state, index, balls)
		} else {
			for i := range balls {
				if balls[i].IsFrozen {
					continue
				}
				ball := balls[i]
				hitTime = c.detect(c.main, i, &ball, hitTime, state, index)
				balls[i] = ball
			}
		}

		// TODO: dynamic broad and narrow phase (ball against ball) once balls collide with each other.

		c.displace(balls, hitTime)

		resolved := 0
		for _, contact := range contacts.All() {
			if contact.HitTime > hitTime {
				continue
			}
			resolveStatic(state, balls, contact)
			resolved++
		}
		// TODO: ball spin, which also needs the resolution to apply torque from friction.

		if c.log.IsLevelEnabled(logrus.TraceLevel) {
			c.log.Tracef("physics: sub-step %d consumed %.4fms of %.4fms, %d/%d contacts resolved", step, hitTime, remaining, resolved, contacts.Len())
		}
		if state != nil {
			state.Stats.SubSteps.Inc()
			state.Stats.Contacts.Add(int64(resolved))
		}
		if c.opts.OnSubStep != nil {
			c.opts.OnSubStep(hitTime)
		}

		contacts.Clear()
		remaining -= hitTime
	}
}

// applyVelocityUpdate accelerates every moving ball by gravity over the tick.
func (c *Cycle) applyVelocityUpdate(dTime float32, state *State, balls []Ball) {
	if state == nil || state.Gravity == (mgl32.Vec3{}) {
		return
	}
	dv := state.Gravity.Mul(dTime)
	for i := range balls {
		if balls[i].IsFrozen {
			continue
		}
		balls[i].Vel = balls[i].Vel.Add(dv)
	}
}

// detect runs the broad and narrow phase of a single ball into s and returns the updated hitTime.
func (c *Cycle) detect(s *scratch, ballIndex int, ball *Ball, hitTime float32, state *State, index SpatialIndex) float32 {
	*s.candidates = broadPhase(index, state, ball, hitTime, (*s.candidates)[:0])
	hitTime = narrowPhase(ballIndex, ball, *s.candidates, hitTime, s.contacts)
	clear(*s.candidates)
	*s.candidates = (*s.candidates)[:0]
	return hitTime
}

// detectParallel splits the balls into contiguous chunks, one per worker, and merges the contacts of the workers
// in ball order. The result equals the one of the sequential detection.
func (c *Cycle) detectParallel(hitTime float32, state *State, index SpatialIndex, balls []Ball) float32 {
	chunk := (len(balls) + len(c.workers) - 1) / len(c.workers)

	var g worker.Group
	for w, s := range c.workers {
		s.contacts.Clear()
		s.hitTime = hitTime

		lo := min(w*chunk, len(balls))
		hi := min(lo+chunk, len(balls))
		if lo == hi {
			continue
		}
		g.Go(func() {
			for i := lo; i < hi; i++ {
				if balls[i].IsFrozen {
					continue
				}
				ball := balls[i]
				s.hitTime = c.detect(s, i, &ball, s.hitTime, state, index)
				balls[i] = ball
			}
		})
	}
	g.Wait()

	for _, s := range c.workers {
		hitTime = min(hitTime, s.hitTime)
		for _, contact := range s.contacts.All() {
			c.main.contacts.Add(contact)
		}
		s.contacts.Clear()
	}
	return hitTime
}

// displace moves every ball that is not frozen along its velocity for dt.
func (c *Cycle) displace(balls []Ball, dt float32) {
	if dt <= 0 {
		return
	}
	for i := range balls {
		if balls[i].IsFrozen {
			continue
		}
		balls[i].Pos = balls[i].Pos.Add(balls[i].Vel.Mul(dt))
	}
}

// Simulate runs a single tick with a cycle of default options, which is released before returning.
func Simulate(dTime float32, state *State, index SpatialIndex, balls []Ball) {
	c := NewCycle(Options{})
	defer c.Close()
	c.Simulate(dTime, state, index, balls)
}

package table

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/assert"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/element"
	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/octree"
	"github.com/oomph-ac/pinball/oerror"
	"github.com/oomph-ac/pinball/physics"
	"github.com/oomph-ac/pinball/settings"
	"github.com/sirupsen/logrus"
)

const (
	// rootMargin pads the spatial index around the table so balls that leave the table are still indexed.
	rootMargin = 100
	// playfieldItemID is the item of the playfield and the glass, which are not table items.
	playfieldItemID = -1
)

// Table is a loaded table: its static colliders and their spatial index, the element states and the balls. It
// runs the physics at a fixed time step.
type Table struct {
	name string
	log  *logrus.Logger

	colliders []collider.Collider
	index     *octree.Octree
	state     *physics.State
	balls     []physics.Ball
	cycle     *physics.Cycle

	timeStep float32
	elapsed  float64
	profiler *profiler
	closed   bool
}

// New builds a table from settings. The returned table owns resources that must be released with Close.
func New(s settings.Settings, log *logrus.Logger) (*Table, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	t := &Table{
		name:     s.Table.Name,
		log:      log,
		state:    physics.NewState(),
		timeStep: s.Table.TimeStep,
		profiler: newProfiler(),
	}
	if t.timeStep <= 0 {
		t.timeStep = 1000.0 / 60.0
	}
	t.state.Gravity = s.Physics.Gravity.Vec()

	if err := t.loadItems(s); err != nil {
		t.state.Close()
		return nil, err
	}

	bounds := game.NewAABB(0, s.Table.Width, 0, s.Table.Height, 0, s.Table.GlassHeight)
	for _, c := range t.colliders {
		bounds.Extend(c.Bounds())
	}
	t.index = octree.New(bounds.Grow(rootMargin).ToBBox(), t.colliders)

	for _, b := range s.Balls {
		ball := physics.NewBall(b.ID, b.Position.Vec())
		ball.Vel = b.Velocity.Vec()
		if b.Radius > 0 {
			ball.Radius = b.Radius
		}
		if b.Mass > 0 {
			ball.Mass = b.Mass
		}
		t.balls = append(t.balls, ball)
	}

	t.cycle = physics.NewCycle(physics.Options{
		Log:         log,
		Workers:     s.Table.Workers,
		MaxSubSteps: s.Physics.MaxSubSteps,
	})

	log.Infof("table %q loaded: %d colliders, %d balls, %d bumpers, %d hit targets, %d drop targets, %d kickers",
		t.name, len(t.colliders), len(t.balls), t.state.Bumpers.Len(), t.state.HitTargets.Len(),
		t.state.DropTargets.Len(), t.state.Kickers.Len())
	return t, nil
}

// loadItems creates the colliders of the playfield and of every item, and registers the element states.
func (t *Table) loadItems(s settings.Settings) error {
	ids := make(map[int32]string)
	register := func(id int32, kind collider.Kind) error {
		if prev, ok := ids[id]; ok {
			return oerror.New(game.ErrorDuplicateItemID, id, prev+" and "+kind.String())
		}
		ids[id] = kind.String()
		return nil
	}
	var nextID int32
	header := func(itemID int32, kind collider.Kind, m settings.Material, fireEvents bool) collider.Header {
		nextID++
		return collider.Header{
			ID:         nextID,
			ItemID:     itemID,
			Kind:       kind,
			Material:   collider.Material{Elasticity: m.Elasticity, Friction: m.Friction},
			Threshold:  m.Threshold,
			FireEvents: fireEvents,
		}
	}

	w, h := s.Table.Width, s.Table.Height
	playfield := settings.Material{Elasticity: s.Physics.Elasticity, Friction: s.Physics.Friction}
	t.colliders = append(t.colliders,
		collider.NewPlane(header(playfieldItemID, collider.KindWall, playfield, false), mgl32.Vec3{0, 0, 1}, 0, game.NewAABB(0, w, 0, h, 0, 0)),
		collider.NewPlane(header(playfieldItemID, collider.KindWall, playfield, false), mgl32.Vec3{0, 0, -1}, -s.Table.GlassHeight,
			game.NewAABB(0, w, 0, h, s.Table.GlassHeight, s.Table.GlassHeight)),
	)

	for _, wall := range s.Walls {
		if err := register(wall.ID, collider.KindWall); err != nil {
			return err
		}
		t.colliders = append(t.colliders, collider.NewLine(header(wall.ID, collider.KindWall, wall.Material, wall.FireEvents),
			wall.From.Vec(), wall.To.Vec(), 0, wall.Height))
	}

	for _, b := range s.Bumpers {
		if err := register(b.ID, collider.KindBumper); err != nil {
			return err
		}
		t.colliders = append(t.colliders, collider.NewCircle(header(b.ID, collider.KindBumper, b.Material, true),
			b.Center.Vec(), b.Radius, 0, b.Height))
		t.state.Bumpers.Set(b.ID, element.NewBumperState(b.ID, element.BumperStatic{
			Center:         b.Center.Vec(),
			Radius:         b.Radius,
			Force:          b.Force,
			RingSpeed:      b.RingSpeed,
			RingDropOffset: b.RingDropOffset,
		}))
	}

	for _, ht := range s.HitTargets {
		if err := register(ht.ID, collider.KindHitTarget); err != nil {
			return err
		}
		t.colliders = append(t.colliders, collider.NewBox(header(ht.ID, collider.KindHitTarget, ht.Material, true),
			boxFrom(ht.Min, ht.Max)))
		t.state.HitTargets.Set(ht.ID, element.NewHitTargetState(ht.ID, element.HitTargetStatic{
			Speed:    ht.Speed,
			MaxAngle: ht.MaxAngle,
		}))
	}

	for _, dt := range s.DropTargets {
		if err := register(dt.ID, collider.KindDropTarget); err != nil {
			return err
		}
		t.colliders = append(t.colliders, collider.NewBox(header(dt.ID, collider.KindDropTarget, dt.Material, true),
			boxFrom(dt.Min, dt.Max)))
		t.state.DropTargets.Set(dt.ID, element.NewDropTargetState(dt.ID, element.DropTargetStatic{
			Speed:      dt.Speed,
			RaiseDelay: dt.RaiseDelay,
		}))
	}

	for _, k := range s.Kickers {
		if err := register(k.ID, collider.KindKicker); err != nil {
			return err
		}
		t.colliders = append(t.colliders, collider.NewTriggerCircle(header(k.ID, collider.KindKicker, settings.Material{}, true),
			k.Center.Vec(), k.Radius, 0, s.Table.GlassHeight))
		t.state.Kickers.Set(k.ID, element.NewKickerState(k.ID, element.KickerStatic{
			Center:        k.Center.Vec(),
			Radius:        k.Radius,
			HitAccuracy:   k.HitAccuracy,
			LegacyMode:    k.LegacyMode,
			PinSpeed:      k.PinSpeed,
			PinTravel:     k.PinTravel,
			AutoKickDelay: k.AutoKickDelay,
			AutoKickAngle: k.AutoKickAngle,
			AutoKickSpeed: k.AutoKickSpeed,
		}))
	}
	return nil
}

func boxFrom(min, max settings.Vec3) game.AABB {
	bb := game.EmptyAABB()
	bb.ExtendPoint(min.Vec())
	bb.ExtendPoint(max.Vec())
	return bb
}

// Tick advances the table by one time step: the physics first, then the elements, which consume the hit events
// the physics raised.
func (t *Table) Tick() {
	assert.IsTrue(!t.closed, game.ErrorTableClosed, t.name)

	t.elapsed += float64(t.timeStep)
	now := uint32(t.elapsed)
	t.state.TimeMsec = now

	start, subSteps := time.Now(), t.state.Stats.SubSteps.Load()
	t.cycle.Simulate(t.timeStep, t.state, t.index, t.balls)
	t.state.UpdateElements(now)
	t.profiler.record(time.Since(start), t.state.Stats.SubSteps.Load()-subSteps)
}

// Profile describes the cost of the recent ticks.
func (t *Table) Profile() Profile {
	return t.profiler.profile()
}

// Name returns the name of the table.
func (t *Table) Name() string { return t.name }

// Balls returns the balls of the table. The slice is updated in place by Tick.
func (t *Table) Balls() []physics.Ball { return t.balls }

// State returns the simulation state, holding the elements and hit events.
func (t *Table) State() *physics.State { return t.state }

// Colliders returns the static colliders of the table.
func (t *Table) Colliders() []collider.Collider { return t.colliders }

// TimeStep returns the length of a tick in ms.
func (t *Table) TimeStep() float32 { return t.timeStep }

// TimeMsec returns the simulated time since the table was loaded.
func (t *Table) TimeMsec() uint32 { return uint32(t.elapsed) }

// Close releases the physics buffers and the element meshes of the table.
func (t *Table) Close() {
	assert.IsTrue(!t.closed, game.ErrorTableDoubleClose, t.name)
	t.closed = true

	t.cycle.Close()
	t.state.Close()

	stats, profile := t.state.Stats.Snapshot(), t.Profile()
	t.log.WithFields(logrus.Fields{
		"ticks":        stats.Ticks,
		"sub_steps":    stats.SubSteps,
		"contacts":     stats.Contacts,
		"captures":     stats.Captures,
		"events":       stats.Events,
		"mean_tick_ms": profile.MeanTickMs,
		"slow_ticks":   profile.SlowTicks,
	}).Infof("table %q closed", t.name)
}

package physics

import "go.uber.org/atomic"

// Stats are counters of the simulation. They may be read while a cycle runs.
type Stats struct {
	Ticks         atomic.Int64
	SubSteps      atomic.Int64
	Contacts      atomic.Int64
	Captures      atomic.Int64
	Kicks         atomic.Int64
	Events        atomic.Int64
	DroppedEvents atomic.Int64
	// SubStepLimitHits counts ticks that ran into MaxSubSteps.
	SubStepLimitHits atomic.Int64
}

// StatsSnapshot is a point in time copy of Stats.
type StatsSnapshot struct {
	Ticks, SubSteps, Contacts, Captures, Kicks, Events, DroppedEvents, SubStepLimitHits int64
}

// Snapshot returns the current value of every counter.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Ticks:            s.Ticks.Load(),
		SubSteps:         s.SubSteps.Load(),
		Contacts:         s.Contacts.Load(),
		Captures:         s.Captures.Load(),
		Kicks:            s.Kicks.Load(),
		Events:           s.Events.Load(),
		DroppedEvents:    s.DroppedEvents.Load(),
		SubStepLimitHits: s.SubStepLimitHits.Load(),
	}
}

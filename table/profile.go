package table

import (
	"time"

	"github.com/oomph-ac/pinball/game"
	"github.com/oomph-ac/pinball/utils"
)

// profileWindow is the amount of recent ticks a profile describes.
const profileWindow = 600

// Profile describes the cost of the most recent ticks of a table.
type Profile struct {
	Ticks int

	MeanTickMs   float64
	MedianTickMs float64
	StdDevTickMs float64
	MaxTickMs    float64
	// SlowTicks is the amount of ticks whose duration is an outlier.
	SlowTicks int

	MeanSubSteps float64
	MaxSubSteps  float64
}

// profiler records the duration and sub-steps of the recent ticks.
type profiler struct {
	durations *utils.CircularQueue[float64]
	subSteps  *utils.CircularQueue[float64]
}

func newProfiler() *profiler {
	return &profiler{
		durations: utils.NewCircularQueue[float64](profileWindow),
		subSteps:  utils.NewCircularQueue[float64](profileWindow),
	}
}

func (p *profiler) record(d time.Duration, subSteps int64) {
	_, _ = p.durations.Append(float64(d) / float64(time.Millisecond))
	_, _ = p.subSteps.Append(float64(subSteps))
}

func (p *profiler) profile() Profile {
	durations := collect(p.durations)
	subSteps := collect(p.subSteps)
	return Profile{
		Ticks:        len(durations),
		MeanTickMs:   game.Mean(durations),
		MedianTickMs: game.Median(durations),
		StdDevTickMs: game.StandardDeviation(durations),
		MaxTickMs:    game.Max(durations),
		SlowTicks:    game.Outliers(durations),
		MeanSubSteps: game.Mean(subSteps),
		MaxSubSteps:  game.Max(subSteps),
	}
}

func collect(q *utils.CircularQueue[float64]) []float64 {
	out := make([]float64, 0, q.Len())
	for v := range q.Iter() {
		out = append(out, v)
	}
	return out
}

// Package element holds the animation state machines of the interactive table items. Every item keeps a static
// block, loaded once with the table, and a dynamic animation block that is advanced once per tick by a free
// update function. Hit events are raised on the animation block by the collision resolution and consumed at the
// start of the next update.
package element

// elapsed advances clock to now and returns the milliseconds passed since the previous update. A clock that went
// backwards restarts from now, so the elapsed time is never negative.
func elapsed(clock *uint32, now uint32) float32 {
	var diff float32
	if now > *clock {
		diff = float32(now - *clock)
	}
	*clock = now
	return diff
}

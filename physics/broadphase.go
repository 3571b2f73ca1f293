package physics

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/pinball/collider"
)

// SpatialIndex finds the static colliders whose bounds overlap a region. It is read only during a tick and may
// be queried concurrently.
type SpatialIndex interface {
	Query(region cube.BBox, dst []collider.Collider) []collider.Collider
}

// broadPhase collects into dst the colliders the ball could reach within hitTime. The index query is followed
// by an exact bounds check, and colliders of disabled items are dropped.
func broadPhase(index SpatialIndex, state *State, ball *Ball, hitTime float32, dst []collider.Collider) []collider.Collider {
	if index == nil {
		return dst
	}
	swept := ball.SweptBounds(hitTime)

	start := len(dst)
	dst = index.Query(swept.ToBBox(), dst)

	kept := dst[:start]
	for _, c := range dst[start:] {
		if !swept.IntersectRect(c.Bounds()) {
			continue
		}
		if state != nil && state.IsDisabled(c.Header().ItemID) {
			continue
		}
		kept = append(kept, c)
	}
	clear(dst[len(kept):])
	return kept
}

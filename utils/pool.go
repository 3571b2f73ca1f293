package utils

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
	"go.uber.org/atomic"
)

// ColliderListPool is a pool of reusable candidate collider slices.
var ColliderListPool = sync.Pool{
	New: func() interface{} {
		s := make([]collider.Collider, 0, 32) // Pre-allocate capacity for common case
		return &s
	},
}

// GetColliderList retrieves a collider slice from the pool
func GetColliderList() *[]collider.Collider {
	RecordColliderListGet()
	list := ColliderListPool.Get().(*[]collider.Collider)
	*list = (*list)[:0] // Reset length to 0
	return list
}

// PutColliderList returns a collider slice to the pool
func PutColliderList(list *[]collider.Collider) {
	if list != nil {
		RecordColliderListPut()
		clear(*list) // Drop references to colliders
		*list = (*list)[:0]
		ColliderListPool.Put(list)
	}
}

// Vec2ListPool is a pool of reusable vertex slices for derived meshes.
var Vec2ListPool = sync.Pool{
	New: func() interface{} {
		s := make([]mgl32.Vec2, 0, 16)
		return &s
	},
}

// GetVec2List retrieves a vertex slice from the pool
func GetVec2List() *[]mgl32.Vec2 {
	RecordVec2ListGet()
	list := Vec2ListPool.Get().(*[]mgl32.Vec2)
	*list = (*list)[:0]
	return list
}

// PutVec2List returns a vertex slice to the pool
func PutVec2List(list *[]mgl32.Vec2) {
	if list != nil {
		RecordVec2ListPut()
		*list = (*list)[:0]
		Vec2ListPool.Put(list)
	}
}

// PoolStats tracks pool usage statistics. A get without a matching put is a leaked buffer.
type PoolStats struct {
	ColliderListGets int64
	ColliderListPuts int64
	Vec2ListGets     int64
	Vec2ListPuts     int64
}

var (
	colliderListGets atomic.Int64
	colliderListPuts atomic.Int64
	vec2ListGets     atomic.Int64
	vec2ListPuts     atomic.Int64
)

func RecordColliderListGet() { colliderListGets.Inc() }
func RecordColliderListPut() { colliderListPuts.Inc() }
func RecordVec2ListGet()     { vec2ListGets.Inc() }
func RecordVec2ListPut()     { vec2ListPuts.Inc() }

// GetPoolStats returns current pool statistics
func GetPoolStats() PoolStats {
	return PoolStats{
		ColliderListGets: colliderListGets.Load(),
		ColliderListPuts: colliderListPuts.Load(),
		Vec2ListGets:     vec2ListGets.Load(),
		Vec2ListPuts:     vec2ListPuts.Load(),
	}
}

// ResetPoolStats resets pool statistics
func ResetPoolStats() {
	colliderListGets.Store(0)
	colliderListPuts.Store(0)
	vec2ListGets.Store(0)
	vec2ListPuts.Store(0)
}

package physics

import (
	"iter"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/assert"
	"github.com/oomph-ac/pinball/collider"
	"github.com/oomph-ac/pinball/game"
)

// Contact is an impact found by the narrow phase between a ball and a static collider.
type Contact struct {
	BallIndex int
	BallID    int32
	Collider  collider.Collider
	HitTime   float32
	Normal    mgl32.Vec3
	Distance  float32
}

var contactListPool = sync.Pool{
	New: func() interface{} {
		s := make([]Contact, 0, 16)
		return &s
	},
}

// ContactBuffer is a growable list of contacts whose backing storage is taken from a pool. It must be released
// with Close once the owner is done with it.
type ContactBuffer struct {
	list *[]Contact
}

// NewContactBuffer acquires an empty contact buffer.
func NewContactBuffer() *ContactBuffer {
	list := contactListPool.Get().(*[]Contact)
	*list = (*list)[:0]
	return &ContactBuffer{list: list}
}

// Add appends a contact to the buffer.
func (b *ContactBuffer) Add(c Contact) {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferClosed)
	*b.list = append(*b.list, c)
}

// Clear removes all contacts while keeping the storage.
func (b *ContactBuffer) Clear() {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferClosed)
	clear(*b.list)
	*b.list = (*b.list)[:0]
}

// Len returns the amount of contacts in the buffer.
func (b *ContactBuffer) Len() int {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferClosed)
	return len(*b.list)
}

// At returns the contact at index i.
func (b *ContactBuffer) At(i int) Contact {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferClosed)
	return (*b.list)[i]
}

// All iterates the contacts in the order they were added.
func (b *ContactBuffer) All() iter.Seq2[int, Contact] {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferClosed)
	return func(yield func(int, Contact) bool) {
		for i, c := range *b.list {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Close hands the storage back to the pool. Closing a buffer twice panics.
func (b *ContactBuffer) Close() {
	assert.IsTrue(b.list != nil, game.ErrorContactBufferDouble)
	clear(*b.list)
	*b.list = (*b.list)[:0]
	contactListPool.Put(b.list)
	b.list = nil
}

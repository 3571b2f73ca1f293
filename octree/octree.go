package octree

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/pinball/collider"
)

const (
	DefaultMaxDepth     = 8
	DefaultLeafCapacity = 8
)

// Octree is a static spatial index over the colliders of a table. It is built once and only read afterwards,
// so concurrent queries are safe.
type Octree struct {
	root *node
	len  int

	maxDepth     int
	leafCapacity int
}

// Option configures an Octree.
type Option func(*Octree)

// WithMaxDepth limits how many times a node may be split.
func WithMaxDepth(depth int) Option {
	return func(o *Octree) {
		o.maxDepth = max(depth, 0)
	}
}

// WithLeafCapacity sets how many colliders a leaf holds before it is split.
func WithLeafCapacity(n int) Option {
	return func(o *Octree) {
		o.leafCapacity = max(n, 1)
	}
}

type entry struct {
	bounds   cube.BBox
	collider collider.Collider
}

type node struct {
	bounds   cube.BBox
	depth    int
	items    []entry
	children *[8]node
}

// New builds an octree covering bounds. Colliders with empty bounds can never be hit and are left out.
// Colliders reaching outside bounds are kept at the root.
func New(bounds cube.BBox, colliders []collider.Collider, opts ...Option) *Octree {
	o := &Octree{
		root:         &node{bounds: bounds},
		maxDepth:     DefaultMaxDepth,
		leafCapacity: DefaultLeafCapacity,
	}
	for _, opt := range opts {
		opt(o)
	}
	for _, c := range colliders {
		b := c.Bounds()
		if b.IsEmpty() {
			continue
		}
		o.insert(o.root, entry{bounds: b.ToBBox(), collider: c})
		o.len++
	}
	return o
}

// Len returns the number of indexed colliders.
func (o *Octree) Len() int {
	return o.len
}

// Bounds returns the volume covered by the root node.
func (o *Octree) Bounds() cube.BBox {
	return o.root.bounds
}

// Query appends every collider whose bounds overlap region to dst and returns the extended slice. Boxes that
// only touch count as overlapping.
func (o *Octree) Query(region cube.BBox, dst []collider.Collider) []collider.Collider {
	return o.root.query(region, dst)
}

func (n *node) query(region cube.BBox, dst []collider.Collider) []collider.Collider {
	for _, e := range n.items {
		if overlaps(e.bounds, region) {
			dst = append(dst, e.collider)
		}
	}
	if n.children == nil {
		return dst
	}
	for i := range n.children {
		child := &n.children[i]
		if overlaps(child.bounds, region) {
			dst = child.query(region, dst)
		}
	}
	return dst
}

func (o *Octree) insert(n *node, e entry) {
	for {
		if n.children == nil {
			if len(n.items) < o.leafCapacity || n.depth >= o.maxDepth {
				n.items = append(n.items, e)
				return
			}
			o.split(n)
		}
		child := n.childContaining(e.bounds)
		if child == nil {
			n.items = append(n.items, e)
			return
		}
		n = child
	}
}

// split turns a full leaf into an internal node and pushes down every item that fits in a single octant.
func (o *Octree) split(n *node) {
	n.children = new([8]node)
	center := n.bounds.Min().Add(n.bounds.Max()).Mul(0.5)
	for i := range n.children {
		n.children[i] = node{bounds: octantBounds(n.bounds, center, i), depth: n.depth + 1}
	}

	items := n.items
	n.items = nil
	for _, e := range items {
		if child := n.childContaining(e.bounds); child != nil {
			child.items = append(child.items, e)
			continue
		}
		n.items = append(n.items, e)
	}
}

func (n *node) childContaining(bb cube.BBox) *node {
	for i := range n.children {
		if contains(n.children[i].bounds, bb) {
			return &n.children[i]
		}
	}
	return nil
}

// octantBounds returns the bounds of octant i of bb split at center. Bit 0 of i selects the upper X half,
// bit 1 the upper Y half and bit 2 the upper Z half.
func octantBounds(bb cube.BBox, center mgl32.Vec3, i int) cube.BBox {
	min, max := bb.Min(), bb.Max()
	lo, hi := min, center
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) != 0 {
			lo[axis], hi[axis] = center[axis], max[axis]
		}
	}
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}

func overlaps(a, b cube.BBox) bool {
	aMin, aMax, bMin, bMax := a.Min(), a.Max(), b.Min(), b.Max()
	return aMin.X() <= bMax.X() && aMax.X() >= bMin.X() &&
		aMin.Y() <= bMax.Y() && aMax.Y() >= bMin.Y() &&
		aMin.Z() <= bMax.Z() && aMax.Z() >= bMin.Z()
}

func contains(outer, inner cube.BBox) bool {
	oMin, oMax, iMin, iMax := outer.Min(), outer.Max(), inner.Min(), inner.Max()
	return oMin.X() <= iMin.X() && iMax.X() <= oMax.X() &&
		oMin.Y() <= iMin.Y() && iMax.Y() <= oMax.Y() &&
		oMin.Z() <= iMin.Z() && iMax.Z() <= oMax.Z()
}

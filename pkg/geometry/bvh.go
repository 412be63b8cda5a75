package geometry

import (
	"fmt"
	"io"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

type nodeKind uint8

const (
	nodeLeaf nodeKind = iota
	nodeInternal
)

// bvhNode is either a leaf holding one shape or an internal node owning
// two children, addressed by index into the BVH arena.
type bvhNode struct {
	kind  nodeKind
	box   core.AABB
	left  int
	right int
	shape Shape
}

// BVH is a binary bounding volume hierarchy over shapes, split at the
// spatial median of the longest axis.
type BVH struct {
	nodes []bvhNode
	root  int // -1 for an empty hierarchy
	nudge float64
}

// NewBVH builds a hierarchy over shapes. Boxes on which cameraPos lies
// exactly are widened by nudge along the offending axes.
func NewBVH(shapes []Shape, cameraPos core.Vec3, nudge float64) *BVH {
	bvh := &BVH{root: -1, nudge: nudge}
	if len(shapes) == 0 {
		return bvh
	}

	// The build reorders shapes in place; work on a copy
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	bvh.nodes = make([]bvhNode, 0, 2*len(shapes)-1)
	bvh.root = bvh.build(shapesCopy, 0, len(shapesCopy)-1, cameraPos)
	return bvh
}

// build creates the subtree over the inclusive range [start, end] and returns its index
func (b *BVH) build(shapes []Shape, start, end int, cameraPos core.Vec3) int {
	if start == end {
		box := shapes[start].BoundingBox().ReshapeOnBoundary(cameraPos, b.nudge)
		return b.push(bvhNode{kind: nodeLeaf, box: box, left: -1, right: -1, shape: shapes[start]})
	}

	box := shapes[start].BoundingBox()
	for i := start + 1; i <= end; i++ {
		box = box.Union(shapes[i].BoundingBox())
	}
	box = box.PadFlat(b.nudge).ReshapeOnBoundary(cameraPos, b.nudge)

	axis := box.LongestAxis()
	mid := (start + end) / 2
	selectNth(shapes[start:end+1], mid-start, axis)

	idx := b.push(bvhNode{kind: nodeInternal, box: box})
	left := b.build(shapes, start, mid, cameraPos)
	right := b.build(shapes, mid+1, end, cameraPos)
	b.nodes[idx].left = left
	b.nodes[idx].right = right
	return idx
}

func (b *BVH) push(node bvhNode) int {
	b.nodes = append(b.nodes, node)
	return len(b.nodes) - 1
}

// selectNth partially orders shapes so shapes[k] holds the element that
// would be there if sorted by centroid along axis, with smaller centroids
// before it and larger after.
func selectNth(shapes []Shape, k, axis int) {
	key := func(i int) float64 { return shapes[i].Centroid().Axis(axis) }

	lo, hi := 0, len(shapes)-1
	for lo < hi {
		// Median of three pivot, moved to hi
		mid := lo + (hi-lo)/2
		if key(mid) < key(lo) {
			shapes[mid], shapes[lo] = shapes[lo], shapes[mid]
		}
		if key(hi) < key(lo) {
			shapes[hi], shapes[lo] = shapes[lo], shapes[hi]
		}
		if key(mid) < key(hi) {
			shapes[mid], shapes[hi] = shapes[hi], shapes[mid]
		}
		pivot := key(hi)

		store := lo
		for i := lo; i < hi; i++ {
			if key(i) < pivot {
				shapes[i], shapes[store] = shapes[store], shapes[i]
				store++
			}
		}
		shapes[store], shapes[hi] = shapes[hi], shapes[store]

		switch {
		case k == store:
			return
		case k < store:
			hi = store - 1
		default:
			lo = store + 1
		}
	}
}

// Intersect returns the closest genuine hit along ray with t > threshold.
// Every subtree whose box the ray crosses is visited. When rec is non-nil,
// nodes whose box face holds a child hit point are recorded there so the
// caller can widen them with ApplyReshapes once no traversal is running.
func (b *BVH) Intersect(ray core.Ray, threshold float64, rec *ReshapeLog) core.Hit {
	if b.root < 0 {
		miss := core.NoHit()
		miss.Checks = 1
		return miss
	}
	return b.intersectNode(b.root, ray, threshold, rec)
}

func (b *BVH) intersectNode(idx int, ray core.Ray, threshold float64, rec *ReshapeLog) core.Hit {
	node := &b.nodes[idx]

	if node.kind == nodeLeaf {
		hit := node.shape.Intersect(ray, threshold)
		hit.Checks = 1
		return hit
	}

	if node.box.Intersect(ray).T <= 0 {
		miss := core.NoHit()
		miss.Checks = 1
		return miss
	}

	left := b.intersectNode(node.left, ray, threshold, rec)
	right := b.intersectNode(node.right, ray, threshold, rec)

	if rec != nil {
		for _, h := range [2]core.Hit{left, right} {
			if !h.IsHit() {
				continue
			}
			if mask := node.box.BoundaryAxes(h.Point); mask != 0 {
				rec.record(idx, mask)
			}
		}
	}

	return core.Closer(left, right)
}

// ReshapeLog collects boundary hits found during traversal. A log belongs
// to a single goroutine.
type ReshapeLog struct {
	axes map[int]uint8
}

// NewReshapeLog creates an empty log
func NewReshapeLog() *ReshapeLog {
	return &ReshapeLog{axes: make(map[int]uint8)}
}

func (r *ReshapeLog) record(node int, mask uint8) {
	r.axes[node] |= mask
}

// Len returns the number of nodes awaiting a reshape
func (r *ReshapeLog) Len() int {
	return len(r.axes)
}

// ApplyReshapes widens every logged node box and clears the logs.
// It must not run concurrently with Intersect.
func (b *BVH) ApplyReshapes(logs ...*ReshapeLog) int {
	merged := make(map[int]uint8)
	for _, rec := range logs {
		if rec == nil {
			continue
		}
		for node, mask := range rec.axes {
			merged[node] |= mask
		}
		clear(rec.axes)
	}
	for node, mask := range merged {
		b.nodes[node].box = b.nodes[node].box.Nudge(mask, b.nudge)
	}
	return len(merged)
}

// Bounds returns the box around the whole hierarchy
func (b *BVH) Bounds() core.AABB {
	if b.root < 0 {
		return core.AABB{}
	}
	return b.nodes[b.root].box
}

// Shapes returns the shapes in the hierarchy in leaf order
func (b *BVH) Shapes() []Shape {
	var shapes []Shape
	for _, node := range b.nodes {
		if node.kind == nodeLeaf {
			shapes = append(shapes, node.shape)
		}
	}
	return shapes
}

// BVHStats summarizes the shape of a hierarchy
type BVHStats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
	Kinds    map[Kind]int
}

// Stats walks the hierarchy and counts nodes, leaves and depth
func (b *BVH) Stats() BVHStats {
	stats := BVHStats{Kinds: make(map[Kind]int)}
	if b.root >= 0 {
		b.collectStats(b.root, 1, &stats)
	}
	return stats
}

func (b *BVH) collectStats(idx, depth int, stats *BVHStats) {
	node := &b.nodes[idx]
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)
	if node.kind == nodeLeaf {
		stats.Leaves++
		stats.Kinds[node.shape.Kind()]++
		return
	}
	b.collectStats(node.left, depth+1, stats)
	b.collectStats(node.right, depth+1, stats)
}

// Dump writes an indented description of every node with its box size and center
func (b *BVH) Dump(w io.Writer) error {
	if b.root < 0 {
		_, err := fmt.Fprintln(w, "Node - empty")
		return err
	}
	return b.dumpNode(w, b.root, "")
}

func (b *BVH) dumpNode(w io.Writer, idx int, indent string) error {
	node := &b.nodes[idx]
	size := node.box.Size()
	center := node.box.Center()

	label := "nonleaf"
	if node.kind == nodeLeaf {
		label = fmt.Sprintf("contains [%s #%d]", node.shape.Kind(), node.shape.ID())
	}
	if _, err := fmt.Fprintf(w, "%sNode - %s\n%sSize -> %g : %g : %g\n%sCenter -> %g : %g : %g\n",
		indent, label,
		indent, size.X, size.Y, size.Z,
		indent, center.X, center.Y, center.Z); err != nil {
		return err
	}
	if node.kind == nodeLeaf {
		return nil
	}

	next := indent + strings.Repeat(" ", 4)
	if _, err := fmt.Fprintf(w, "%sL:\n", indent); err != nil {
		return err
	}
	if err := b.dumpNode(w, node.left, next); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sR:\n", indent); err != nil {
		return err
	}
	return b.dumpNode(w, node.right, next)
}

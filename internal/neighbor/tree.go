package neighbor

import (
	"math"
	"sort"
)

// Tree is a cover tree over filter points supporting radius queries.
type Tree struct {
	root         *Node
	base         float32
	distanceFunc DistanceFunc
	count        int
	version      uint64
}

// Node represents a cover-tree node.
type Node struct {
	level          int32
	point          Point
	children       []Node
	radius         float32
	radiusComputed uint64
}

// New constructs an empty tree with the provided base and distance metric.
// A base <= 1 or an unknown metric falls back to the defaults (1.3,
// Euclidean).
func New(base float32, distanceFn DistanceFunction) *Tree {
	if base <= 1 {
		base = 1.3
	}
	fn := distanceFn.Function()
	if fn == nil {
		fn = EuclideanDistance
	}
	return &Tree{base: base, distanceFunc: fn}
}

// Build constructs a tree holding every provided point.
func Build(points []Point, base float32, distanceFn DistanceFunction) *Tree {
	t := New(base, distanceFn)
	for i := range points {
		t.Insert(points[i])
	}
	return t
}

// Len returns the number of points stored.
func (t *Tree) Len() int { return t.count }

// Insert adds a point to the tree.
func (t *Tree) Insert(point Point) {
	t.count++
	t.version++
	if t.root == nil {
		t.root = &Node{level: 0, point: point}
		return
	}
	t.insert(t.root, point, 0)
}

func (t *Tree) insert(node *Node, point Point, level int32) {
	for {
		baseLevel := float32(math.Pow(float64(t.base), float64(level)))
		distance := t.distanceFunc(&point, &node.point)
		if distance < baseLevel {
			inserted := false
			for i := range node.children {
				child := &node.children[i]
				if t.distanceFunc(&point, &child.point) < baseLevel {
					node = child
					level--
					inserted = true
					break
				}
			}
			if !inserted {
				node.children = append(node.children, Node{level: level - 1, point: point})
				return
			}
		} else {
			level++
			if level > node.level {
				newRoot := Node{level: level, point: point}
				newRoot.children = append(newRoot.children, *t.root)
				t.root = &newRoot
				return
			}
		}
	}
}

// InRadius returns the rows of every stored point within radius of the query
// point, the query's own row included when it is stored. Rows are returned in
// ascending order. The ball is closed: points at exactly the radius are kept.
func (t *Tree) InRadius(query *Point, radius float32) []int {
	if t.root == nil || radius < 0 {
		return nil
	}
	var out []int
	t.inRadius(t.root, query, radius, &out)
	sort.Ints(out)
	return out
}

func (t *Tree) inRadius(node *Node, query *Point, radius float32, out *[]int) {
	if t.distanceFunc(query, &node.point) <= radius {
		*out = append(*out, node.point.Row)
	}
	for i := range node.children {
		child := &node.children[i]
		cd := t.distanceFunc(query, &child.point)
		if cd-t.subtreeRadius(child) <= radius {
			t.inRadius(child, query, radius, out)
		}
	}
}

// subtreeRadius returns the radius of the ball centered at n's point that
// contains n's whole subtree, cached per tree version.
func (t *Tree) subtreeRadius(n *Node) float32 {
	if n.radiusComputed == t.version {
		return n.radius
	}
	maxR := float32(0)
	for i := range n.children {
		child := &n.children[i]
		d := t.distanceFunc(&n.point, &child.point) + t.subtreeRadius(child)
		if d > maxR {
			maxR = d
		}
	}
	n.radius = maxR
	n.radiusComputed = t.version
	return maxR
}

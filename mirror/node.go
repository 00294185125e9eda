package mirror

import "github.com/katalvlaran/mirrorpath/geom"

// Node is one validated reflection step: the receiver mirrored across wall
// WallIndex, on top of the chain of its Parent.
//
// Nodes are immutable and shared: every deeper result reflecting off the
// same prefix points to the same parent Node. A chain is released when no
// result references it any more.
type Node struct {
	image    geom.Point
	wall     int
	building int
	parent   *Node
	depth    int
}

// Image returns the mirrored receiver position.
func (n *Node) Image() geom.Point { return n.image }

// WallIndex returns the catalogue index of the reflecting wall.
func (n *Node) WallIndex() int { return n.wall }

// BuildingID returns the building owning the reflecting wall.
func (n *Node) BuildingID() int { return n.building }

// Parent returns the previous reflection step, nil at depth 1.
func (n *Node) Parent() *Node { return n.parent }

// Depth returns the reflection order of n (1 for a single reflection).
func (n *Node) Depth() int { return n.depth }

// Chain returns the nodes from depth 1 down to n.
func (n *Node) Chain() []*Node {
	out := make([]*Node, n.depth)
	for c := n; c != nil; c = c.parent {
		out[c.depth-1] = c
	}

	return out
}

// Walls returns the wall indices from depth 1 down to n.
func (n *Node) Walls() []int {
	out := make([]int, n.depth)
	for c := n; c != nil; c = c.parent {
		out[c.depth-1] = c.wall
	}

	return out
}

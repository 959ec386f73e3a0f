package scene

import "github.com/go-gl/mathgl/mgl64"

// Node is a single scene object: either geometry imported from a source
// file or a grouping node synthesized during reconstruction.
//
// The transform is stored parent-relative. A node with no parent has its
// local transform equal to its world transform.
type Node struct {
	Name        string
	HasGeometry bool
	Placeholder bool // synthesized grouping node, exported as an empty

	parent *Node
	local  mgl64.Mat4
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Local returns the node's transform relative to its parent.
func (n *Node) Local() mgl64.Mat4 {
	return n.local
}

// World returns the node's absolute transform, composed up the parent
// chain.
func (n *Node) World() mgl64.Mat4 {
	if n.parent == nil {
		return n.local
	}
	return n.parent.World().Mul4(n.local)
}

// isDescendantOf reports whether n is candidate or one of its descendants,
// by walking n's ancestor chain.
func (n *Node) isDescendantOf(candidate *Node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

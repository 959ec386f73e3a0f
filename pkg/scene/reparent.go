package scene

import "fmt"

// CycleError reports a refused reparent that would have made the parent
// relation cyclic.
type CycleError struct {
	Child  string
	Parent string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("reparenting %q under %q would create a cycle", e.Child, e.Parent)
}

// Reparent makes parent the new parent of child while keeping child's
// world transform unchanged: the child's local transform is recomputed as
// inverse(parent world) * child world before the edge is installed.
//
// Parenting a node to itself or to one of its own descendants fails with
// CycleError and leaves both nodes untouched. A nil parent detaches the
// child, again keeping it in place.
func Reparent(child, parent *Node) error {
	if parent != nil && parent.isDescendantOf(child) {
		return CycleError{Child: child.Name, Parent: parent.Name}
	}

	world := child.World()
	if parent == nil {
		child.parent = nil
		child.local = world
		return nil
	}

	child.parent = parent
	child.local = parent.World().Inv().Mul4(world)
	return nil
}

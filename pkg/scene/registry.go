package scene

import "github.com/go-gl/mathgl/mgl64"

// Registry holds every node of one imported scene in insertion order.
// Iteration order is the import adapter's order followed by synthesis
// order, which is what makes reconstruction deterministic.
type Registry struct {
	nodes []*Node
	index map[string]*Node // first node registered under each name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Node),
	}
}

// Add registers a node. Display names are not required to be unique;
// the name index keeps the first node registered under each name.
func (r *Registry) Add(n *Node) {
	r.nodes = append(r.nodes, n)
	if _, exists := r.index[n.Name]; !exists {
		r.index[n.Name] = n
	}
}

// NewNode creates a geometry-capable node with the given world transform
// and adds it to the registry. Import adapters call this once per record.
func (r *Registry) NewNode(name string, world mgl64.Mat4, hasGeometry bool) *Node {
	n := &Node{
		Name:        name,
		HasGeometry: hasGeometry,
		local:       world,
	}
	r.Add(n)
	return n
}

// NewPlaceholder creates a grouping-only node with an identity transform
// and adds it to the registry. Only the reconstruction builders create
// placeholders, never import adapters.
func (r *Registry) NewPlaceholder(name string) *Node {
	n := &Node{
		Name:        name,
		Placeholder: true,
		local:       mgl64.Ident4(),
	}
	r.Add(n)
	return n
}

// Lookup returns the first node registered under the given name, or nil.
func (r *Registry) Lookup(name string) *Node {
	return r.index[name]
}

// Nodes returns all nodes in insertion order. The slice is shared;
// callers must not reorder it.
func (r *Registry) Nodes() []*Node {
	return r.nodes
}

// Roots returns the nodes without a parent, in insertion order.
func (r *Registry) Roots() []*Node {
	var roots []*Node
	for _, n := range r.nodes {
		if n.parent == nil {
			roots = append(roots, n)
		}
	}
	return roots
}

// Children returns the direct children of parent, in insertion order.
func (r *Registry) Children(parent *Node) []*Node {
	var children []*Node
	for _, n := range r.nodes {
		if n.parent == parent {
			children = append(children, n)
		}
	}
	return children
}

// Len returns the total number of nodes.
func (r *Registry) Len() int {
	return len(r.nodes)
}

package hierarchy

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/chazu/regraft/pkg/namepat"
	"github.com/chazu/regraft/pkg/scene"
)

// extInfo is the per-id metadata flattened out of the external tree.
type extInfo struct {
	name        string
	hasChildren bool
}

// ApplyExternalTree parents registry nodes according to an externally
// supplied object tree. Node names are matched to tree ids via
// namepat.ExternalID; tree ids that have children but no matching node
// get a synthesized placeholder so their subtree still hangs together.
// Leaf ids without a match are left alone and their children stay roots.
//
// The pass is best-effort: a reparent refused by the cycle check is
// logged and skipped, everything else proceeds.
func ApplyExternalTree(reg *scene.Registry, roots []ExternalNode, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(roots) == 0 {
		logger.Info("external tree is empty; keeping current hierarchy")
		return
	}

	// Depth-first flatten, children in supplied order. The id order is
	// kept so that synthesis and parenting below are deterministic.
	var order []int
	parentOf := make(map[int]int) // absent key = root of the external tree
	info := make(map[int]extInfo)

	var walk func(nodes []ExternalNode, parent int, hasParent bool)
	walk = func(nodes []ExternalNode, parent int, hasParent bool) {
		for _, en := range nodes {
			// External ids are positive; zero marks an entry that came in
			// without an objectid field. Such entries and their subtrees
			// carry no usable identity.
			if en.ObjectID == 0 {
				continue
			}
			if _, seen := info[en.ObjectID]; seen {
				continue
			}
			order = append(order, en.ObjectID)
			name := en.Name
			if name == "" {
				name = fmt.Sprintf("Node_%d", en.ObjectID)
			}
			info[en.ObjectID] = extInfo{name: name, hasChildren: len(en.Objects) > 0}
			if hasParent {
				parentOf[en.ObjectID] = parent
			}
			walk(en.Objects, en.ObjectID, true)
		}
	}
	walk(roots, 0, false)
	logger.Info("flattened external tree", "ids", len(info))

	// Match registry nodes to tree ids, first seen wins.
	matched := make(map[int]*scene.Node)
	for _, n := range reg.Nodes() {
		id, ok := namepat.ExternalID(n.Name)
		if !ok {
			continue
		}
		if _, taken := matched[id]; taken {
			continue
		}
		matched[id] = n
	}
	logger.Info("matched nodes to external ids", "matched", len(matched))

	// Synthesize placeholders for structural ids nothing matched.
	synthesized := 0
	for _, id := range order {
		fi := info[id]
		if !fi.hasChildren || matched[id] != nil {
			continue
		}
		matched[id] = reg.NewPlaceholder(sanitizeName(fi.name))
		synthesized++
	}
	if synthesized > 0 {
		logger.Info("synthesized placeholder parents", "count", synthesized)
	}

	edges := 0
	for _, id := range order {
		node := matched[id]
		if node == nil {
			continue
		}
		pid, ok := parentOf[id]
		if !ok {
			continue
		}
		parent := matched[pid]
		if parent == nil || parent == node || node.Parent() == parent {
			continue
		}
		if err := scene.Reparent(node, parent); err != nil {
			logger.Warn("skipping external edge", "node", node.Name, "objectid", id, "err", err)
			continue
		}
		edges++
	}
	logger.Info("applied external hierarchy", "edges", edges)
}

var nameSanitizer = strings.NewReplacer("[", "", "]", "", "(", "", ")", "", " ", "_")

// sanitizeName turns an external tree display name into a legal scene
// node identifier: bracket characters are dropped, spaces become
// underscores. Distinct inputs may collapse to the same output; duplicate
// display names are allowed in the registry.
func sanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

package hierarchy

import (
	"log/slog"

	"github.com/chazu/regraft/pkg/namepat"
	"github.com/chazu/regraft/pkg/scene"
)

// suffixMember is one instance of a suffix group. The index is kept for
// logging only; members are parented in registry order.
type suffixMember struct {
	index int
	node  *scene.Node
}

// ApplySuffixGroups parents suffix-notation instances under their shared
// base node: "Obj.195:1" and "Obj.195:2" become children of "Obj.195".
// When no registry node can serve as the base, a placeholder is
// synthesized with that exact name. Returns the number of parent edges
// created; a second run over the same registry creates none.
func ApplySuffixGroups(reg *scene.Registry, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	var order []string
	groups := make(map[string][]suffixMember)
	candidates := make(map[string]*scene.Node)

	for _, n := range reg.Nodes() {
		if base, index, ok := namepat.SplitSuffix(n.Name); ok {
			if _, seen := groups[base]; !seen {
				order = append(order, base)
			}
			groups[base] = append(groups[base], suffixMember{index: index, node: n})
			continue
		}
		if namepat.IsBaseCandidate(n.Name) {
			if _, seen := candidates[n.Name]; !seen {
				candidates[n.Name] = n
			}
		}
	}

	if len(order) == 0 {
		logger.Debug("no suffix-notation nodes to group")
		return 0
	}

	edges := 0
	for _, base := range order {
		parent := candidates[base]
		if parent == nil {
			// A node carrying the exact base name still serves, even when
			// it matches no id pattern: this is what keeps a rerun from
			// synthesizing a second parent for the same group.
			if existing := reg.Lookup(base); existing != nil {
				parent = existing
			}
		}
		if parent == nil {
			parent = reg.NewPlaceholder(base)
			logger.Info("synthesized group parent", "name", base)
		}

		for _, m := range groups[base] {
			if m.node == parent || m.node.Parent() == parent {
				continue
			}
			if err := scene.Reparent(m.node, parent); err != nil {
				logger.Warn("skipping group member", "node", m.node.Name, "suffix", m.index, "err", err)
				continue
			}
			edges++
		}
	}

	logger.Info("applied suffix grouping", "groups", len(order), "edges", edges)
	return edges
}

package hierarchy

import "strings"

// hierarchyAware lists export formats whose scene model keeps parent
// relations, making the external-tree pass worth running.
var hierarchyAware = map[string]bool{
	"glb":  true,
	"gltf": true,
	"fbx":  true,
	"dae":  true,
}

// SuffixAware reports whether imports of the given format carry instance
// grouping suffixes in object names. Only multi-group OBJ imports do.
func SuffixAware(format string) bool {
	return strings.ToLower(format) == "obj"
}

// HierarchyAware reports whether the given export format preserves
// parent/child structure.
func HierarchyAware(format string) bool {
	return hierarchyAware[strings.ToLower(format)]
}

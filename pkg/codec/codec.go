// Package codec reads and writes the flat JSON interchange records that
// connect regraft to format-specific import and export adapters. The
// import side is an ordered list of named nodes with world transforms;
// the export side is the reconstructed forest with parent-relative
// transforms, parents emitted before their children.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/chazu/regraft/pkg/scene"
)

// NodeRecord is one node on the wire. Transforms are row-major 4x4
// matrices. Parent and Placeholder are only populated on export.
type NodeRecord struct {
	Name        string      `json:"name"`
	Transform   [16]float64 `json:"transform"`
	HasGeometry bool        `json:"has_geometry"`
	Parent      string      `json:"parent,omitempty"`
	Placeholder bool        `json:"placeholder,omitempty"`
}

// ErrNoNodes reports an import payload with an empty node list. An empty
// scene is the import adapter's failure, not a degraded-hierarchy case.
var ErrNoNodes = errors.New("import payload contains no nodes")

// DecodeNodes reads an import adapter's node list and builds a registry
// in input order. Record transforms are taken as world transforms.
func DecodeNodes(r io.Reader) (*scene.Registry, error) {
	var records []NodeRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode node records: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoNodes
	}

	reg := scene.NewRegistry()
	for _, rec := range records {
		// Wire layout is row-major; Mat4 is column-major.
		world := mgl64.Mat4(rec.Transform).Transpose()
		reg.NewNode(rec.Name, world, rec.HasGeometry)
	}
	return reg, nil
}

// EncodeForest writes the registry as export records, every parent
// strictly before its children so hierarchy-native consumers can rebuild
// the chain in one pass. Transforms are parent-relative.
func EncodeForest(w io.Writer, reg *scene.Registry) error {
	var records []NodeRecord

	var walk func(n *scene.Node, parentName string)
	walk = func(n *scene.Node, parentName string) {
		records = append(records, NodeRecord{
			Name:        n.Name,
			Transform:   [16]float64(n.Local().Transpose()),
			HasGeometry: n.HasGeometry,
			Parent:      parentName,
			Placeholder: n.Placeholder,
		})
		for _, child := range reg.Children(n) {
			walk(child, n.Name)
		}
	}
	for _, root := range reg.Roots() {
		walk(root, "")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode forest: %w", err)
	}
	return nil
}

package hierarchy

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/regraft/pkg/scene"
)

// nodeState is a comparable snapshot of one node for whole-forest checks.
type nodeState struct {
	Name        string
	Parent      string
	HasGeometry bool
	Placeholder bool
	Local       mgl64.Mat4
}

func snapshot(reg *scene.Registry) []nodeState {
	var states []nodeState
	for _, n := range reg.Nodes() {
		parent := ""
		if n.Parent() != nil {
			parent = n.Parent().Name
		}
		states = append(states, nodeState{
			Name:        n.Name,
			Parent:      parent,
			HasGeometry: n.HasGeometry,
			Placeholder: n.Placeholder,
			Local:       n.Local(),
		})
	}
	return states
}

func importedScene() *scene.Registry {
	reg := scene.NewRegistry()
	reg.NewNode("Obj.195:1", mgl64.Translate3D(1, 0, 0), true)
	reg.NewNode("Obj.195:2", mgl64.Translate3D(2, 0, 0).Mul4(mgl64.HomogRotate3DZ(0.5)), true)
	reg.NewNode("Frame_40", mgl64.Translate3D(0, 3, 0), true)
	reg.NewNode("Panel_41", mgl64.Scale3D(1, 2, 1), true)
	return reg
}

const treePayload = `{"data":{"objects":[
	{"objectid":40,"name":"Frame_40","objects":[
		{"objectid":41,"name":"Panel_41"}
	]}
]}}`

func TestRebuildRunsBothPasses(t *testing.T) {
	reg := importedScene()
	Rebuild(reg, Options{GroupSuffixes: true, ExternalTree: []byte(treePayload)})

	frame := reg.Lookup("Frame_40")
	panel := reg.Lookup("Panel_41")
	base := reg.Lookup("Obj.195")
	require.NotNil(t, base, "suffix pass must synthesize Obj.195")

	assert.Same(t, frame, panel.Parent())
	assert.Same(t, base, reg.Lookup("Obj.195:1").Parent())
	assert.Same(t, base, reg.Lookup("Obj.195:2").Parent())
	assert.Nil(t, frame.Parent())
	assert.Nil(t, base.Parent())
}

func TestRebuildMalformedPayloadMutatesNothing(t *testing.T) {
	reg := importedScene()
	before := snapshot(reg)

	Rebuild(reg, Options{ExternalTree: []byte(`{"data":{"objects":[{"objec`)})

	assert.Equal(t, before, snapshot(reg), "malformed payload must leave the registry untouched")
}

func TestRebuildDeterministic(t *testing.T) {
	opts := Options{GroupSuffixes: true, ExternalTree: []byte(treePayload)}

	regA := importedScene()
	Rebuild(regA, opts)
	regB := importedScene()
	Rebuild(regB, opts)

	assert.Equal(t, spew.Sdump(snapshot(regA)), spew.Sdump(snapshot(regB)))
}

func TestRebuildLaterPassWinsOnConflict(t *testing.T) {
	reg := scene.NewRegistry()
	inst := reg.NewNode("Obj.7:1", mgl64.Translate3D(0, 0, 2), true)
	machine := reg.NewNode("Machine_3", mgl64.Ident4(), true)

	// Suffix grouping wants Obj.7:1 under a synthesized Obj.7; the tree
	// maps id 7 (first matched by Obj.7:1 itself) under id 3.
	payload := `{"data":{"objects":[{"objectid":3,"name":"Machine_3","objects":[{"objectid":7,"name":"Obj.7"}]}]}}`
	Rebuild(reg, Options{GroupSuffixes: true, ExternalTree: []byte(payload)})

	assert.Same(t, machine, inst.Parent(), "external tree runs second and wins")
	stray := reg.Lookup("Obj.7")
	require.NotNil(t, stray, "the suffix pass still synthesized its base")
	assert.Empty(t, reg.Children(stray))
}

func TestFormatPredicates(t *testing.T) {
	assert.True(t, SuffixAware("obj"))
	assert.True(t, SuffixAware("OBJ"))
	assert.False(t, SuffixAware("stl"))

	for _, f := range []string{"glb", "gltf", "fbx", "dae", "GLB"} {
		assert.True(t, HierarchyAware(f), f)
	}
	for _, f := range []string{"obj", "stl", "ply", ""} {
		assert.False(t, HierarchyAware(f), f)
	}
}

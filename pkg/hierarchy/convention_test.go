package hierarchy

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/regraft/pkg/scene"
)

const tolerance = 1e-6

func TestSuffixGroupsSynthesizeMissingParent(t *testing.T) {
	reg := scene.NewRegistry()
	w1 := mgl64.Translate3D(1, 2, 3).Mul4(mgl64.HomogRotate3DZ(0.4))
	w2 := mgl64.Translate3D(-5, 0, 1).Mul4(mgl64.Scale3D(2, 2, 1))
	wheel1 := reg.NewNode("Wheel:1", w1, true)
	wheel2 := reg.NewNode("Wheel:2", w2, true)

	edges := ApplySuffixGroups(reg, nil)
	require.Equal(t, 2, edges)

	base := reg.Lookup("Wheel")
	require.NotNil(t, base, "a node named Wheel must be synthesized")
	assert.True(t, base.Placeholder)
	assert.False(t, base.HasGeometry)

	assert.Same(t, base, wheel1.Parent())
	assert.Same(t, base, wheel2.Parent())
	assert.True(t, wheel1.World().ApproxEqualThreshold(w1, tolerance), "grouping moved Wheel:1")
	assert.True(t, wheel2.World().ApproxEqualThreshold(w2, tolerance), "grouping moved Wheel:2")
}

func TestSuffixGroupsUseExistingBaseNode(t *testing.T) {
	reg := scene.NewRegistry()
	base := reg.NewNode("Obj.195", mgl64.Translate3D(4, 0, 0), true)
	inst := reg.NewNode("Obj.195:1", mgl64.Translate3D(4, 1, 0), true)

	edges := ApplySuffixGroups(reg, nil)
	assert.Equal(t, 1, edges)
	assert.Same(t, base, inst.Parent())
	assert.Equal(t, 2, reg.Len(), "no placeholder should be synthesized")
}

func TestSuffixGroupsIdempotent(t *testing.T) {
	reg := scene.NewRegistry()
	reg.NewNode("Wheel:1", mgl64.Ident4(), true)
	reg.NewNode("Wheel:2", mgl64.Ident4(), true)
	reg.NewNode("Obj.7", mgl64.Ident4(), true)
	reg.NewNode("Obj.7:1", mgl64.Ident4(), true)

	first := ApplySuffixGroups(reg, nil)
	require.Equal(t, 3, first)
	lenAfterFirst := reg.Len()

	second := ApplySuffixGroups(reg, nil)
	assert.Zero(t, second, "second pass must create no edges")
	assert.Equal(t, lenAfterFirst, reg.Len(), "second pass must synthesize no nodes")
}

func TestSuffixGroupsNoSuffixedNodes(t *testing.T) {
	reg := scene.NewRegistry()
	reg.NewNode("Body", mgl64.Ident4(), true)
	reg.NewNode("Obj.42", mgl64.Ident4(), true)

	assert.Zero(t, ApplySuffixGroups(reg, nil))
	assert.Equal(t, 2, reg.Len())
	for _, n := range reg.Nodes() {
		assert.Nil(t, n.Parent())
	}
}

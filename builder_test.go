// file: nset/builder_test.go
package nset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/nset"
)

// fixtureWrappers registers the reference tree
//
//	1 (1,10)
//	├── 2 (2,3)
//	└── 3 (4,9)
//	    ├── 4 (5,6)
//	    └── 5 (7,8)
//
// and returns its wrappers in left order.
func fixtureWrappers(t *testing.T, m *nset.Manager) []*nset.NodeWrapper {
	t.Helper()
	nodes := []*testNode{
		newTestNode(1, 1, 10, 0),
		newTestNode(2, 2, 3, 0),
		newTestNode(3, 4, 9, 0),
		newTestNode(4, 5, 6, 0),
		newTestNode(5, 7, 8, 0),
	}
	ws := make([]*nset.NodeWrapper, len(nodes))
	for i, n := range nodes {
		w, err := m.Wrap(n)
		require.NoError(t, err)
		ws[i] = w
	}
	return ws
}

func TestBuildTreeFixture(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	ws := fixtureWrappers(t, m)

	nset.BuildTree(ws)

	root, c2, c3, c4, c5 := ws[0], ws[1], ws[2], ws[3], ws[4]

	assert.Nil(t, root.GetParent())
	assert.Equal(t, []*nset.NodeWrapper{c2, c3}, root.GetChildren())
	assert.Empty(t, root.GetAncestors())
	assert.Len(t, root.GetDescendants(), 4)

	assert.Same(t, root, c2.GetParent())
	assert.Empty(t, c2.GetChildren())
	assert.Equal(t, []*nset.NodeWrapper{root}, c2.GetAncestors())

	assert.Same(t, root, c3.GetParent())
	assert.Equal(t, []*nset.NodeWrapper{c4, c5}, c3.GetChildren())
	assert.Equal(t, []*nset.NodeWrapper{root}, c3.GetAncestors())
	assert.Equal(t, []*nset.NodeWrapper{c4, c5}, c3.GetDescendants())

	assert.Same(t, c3, c4.GetParent())
	assert.Equal(t, []*nset.NodeWrapper{root, c3}, c4.GetAncestors())
	assert.Equal(t, 2, c4.GetLevel())

	assert.Same(t, c3, c5.GetParent())
	assert.Equal(t, []*nset.NodeWrapper{root, c3}, c5.GetAncestors())

	// Sibling navigation follows the children order.
	assert.Same(t, c3, c2.GetNextSibling())
	assert.Same(t, c2, c3.GetPrevSibling())
	assert.Nil(t, c2.GetPrevSibling())
	assert.Same(t, c4, c3.GetFirstChild())
	assert.Same(t, c5, c3.GetLastChild())
}

func TestBuildTreeSingleNode(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	w, err := m.Wrap(newTestNode(1, 1, 2, 0))
	require.NoError(t, err)

	nset.BuildTree([]*nset.NodeWrapper{w})

	assert.Nil(t, w.GetParent())
	assert.Empty(t, w.GetChildren())
	assert.Empty(t, w.GetAncestors())
	assert.Empty(t, w.GetDescendants())
	assert.True(t, w.IsRoot())
	assert.True(t, w.IsLeaf())
}

func TestBuildTreeEmptyInput(t *testing.T) {
	assert.NotPanics(t, func() { nset.BuildTree(nil) })
}

func TestBuildTreeClearsDirtyAndStaleRelations(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	ws := fixtureWrappers(t, m)

	nset.BuildTree(ws)

	// Shift the tail and rebuild: same shape, clean flags, no
	// duplicated children from the earlier build.
	m.UpdateLeftValues(5, 0, 2, 0)
	m.UpdateRightValues(5, 0, 2, 0)
	assert.True(t, ws[3].IsDirty())

	nset.BuildTree(ws)

	for _, w := range ws {
		assert.False(t, w.IsDirty())
	}
	assert.Equal(t, []*nset.NodeWrapper{ws[1], ws[2]}, ws[0].GetChildren())
	assert.Equal(t, []*nset.NodeWrapper{ws[3], ws[4]}, ws[2].GetChildren())
}

// TestBuildTreeBranchHead mirrors a branch fetch: the run starts at an
// inner node, which must come out as the head with no parent.
func TestBuildTreeBranchHead(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	ws := fixtureWrappers(t, m)
	branch := ws[2:] // (4,9) and its subtree

	nset.BuildTree(branch)

	head := branch[0]
	assert.Nil(t, head.GetParent())
	assert.Empty(t, head.GetAncestors())
	assert.Equal(t, []*nset.NodeWrapper{branch[1], branch[2]}, head.GetChildren())
	assert.Equal(t, 0, head.GetLevel())
}

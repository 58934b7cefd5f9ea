// file: nset/fetch_test.go
package nset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rskv-p/nset"
	"github.com/rskv-p/nset/store/memstore"
)

// seedFixture fills a memstore with the reference tree under the given
// partition.
func seedFixture(t *testing.T, st *memstore.Store, root int64) {
	t.Helper()
	rows := []*memstore.Record{
		{ID: 1, Left: 1, Right: 10, Root: root, Label: "root"},
		{ID: 2, Left: 2, Right: 3, Root: root, Label: "a"},
		{ID: 3, Left: 4, Right: 9, Root: root, Label: "b"},
		{ID: 4, Left: 5, Right: 6, Root: root, Label: "b1"},
		{ID: 5, Left: 7, Right: 8, Root: root, Label: "b2"},
	}
	for _, r := range rows {
		require.NoError(t, st.MarkForPersist(r))
	}
}

func TestFetchTree(t *testing.T) {
	st := memstore.New(nil)
	seedFixture(t, st, 0)
	m := newManager(t, nil, st)

	root, err := m.FetchTree(0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), root.GetID())
	assert.Nil(t, root.GetParent())
	assert.Len(t, root.GetChildren(), 2)
	assert.Len(t, root.GetDescendants(), 4)
	assert.Equal(t, 5, m.Count())
}

func TestFetchTreeSingleRoot(t *testing.T) {
	st := memstore.New(nil)
	require.NoError(t, st.MarkForPersist(&memstore.Record{ID: 1, Left: 1, Right: 2}))
	m := newManager(t, nil, st)

	root, err := m.FetchTree(0)
	require.NoError(t, err)

	assert.Nil(t, root.GetParent())
	assert.Empty(t, root.GetChildren())
	assert.Empty(t, root.GetAncestors())
	assert.Empty(t, root.GetDescendants())
}

func TestFetchTreeIdentityStable(t *testing.T) {
	st := memstore.New(nil)
	seedFixture(t, st, 0)
	m := newManager(t, nil, st)

	first, err := m.FetchTreeSlice(0)
	require.NoError(t, err)
	second, err := m.FetchTreeSlice(0)
	require.NoError(t, err)

	// Refetching returns the same wrapper instances, not copies.
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestFetchTreeNoResult(t *testing.T) {
	m := newManager(t, nil, memstore.New(nil))

	_, err := m.FetchTree(0)
	assert.ErrorIs(t, err, nset.ErrNoResult)
}

func TestFetchTreeRootMissing(t *testing.T) {
	cfg := nset.Default()
	cfg.HasManyRoots = true
	m := newManager(t, cfg, memstore.New(cfg))

	_, err := m.FetchTree(0)
	assert.ErrorIs(t, err, nset.ErrRootMissing)
}

func TestFetchTreeByPartition(t *testing.T) {
	cfg := nset.Default()
	cfg.HasManyRoots = true
	st := memstore.New(cfg)
	seedFixture(t, st, 1)
	require.NoError(t, st.MarkForPersist(&memstore.Record{ID: 10, Left: 1, Right: 2, Root: 2}))
	m := newManager(t, cfg, st)

	root, err := m.FetchTree(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), root.GetID())
	assert.Len(t, root.GetDescendants(), 4)

	other, err := m.FetchTree(2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), other.GetID())
	assert.Empty(t, other.GetChildren())
}

func TestFetchBranch(t *testing.T) {
	st := memstore.New(nil)
	seedFixture(t, st, 0)
	m := newManager(t, nil, st)

	branch, err := m.FetchBranch(3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), branch.GetID())
	assert.Nil(t, branch.GetParent())
	require.Len(t, branch.GetChildren(), 2)
	assert.Equal(t, int64(4), branch.GetChildren()[0].GetID())
	assert.Equal(t, int64(5), branch.GetChildren()[1].GetID())
	assert.Equal(t, 3, m.Count())
}

func TestFetchBranchUnknownID(t *testing.T) {
	m := newManager(t, nil, memstore.New(nil))

	_, err := m.FetchBranch(42)
	assert.ErrorIs(t, err, nset.ErrNoResult)
}

func TestFetchBranchDetachedNode(t *testing.T) {
	st := memstore.New(nil)
	require.NoError(t, st.MarkForPersist(&memstore.Record{ID: 1, Left: 1, Right: 2}))
	m := newManager(t, nil, st)

	// A row with no valid placement cannot head a branch.
	require.NoError(t, st.MarkForPersist(&memstore.Record{ID: 9}))
	_, err := m.FetchBranch(9)
	assert.ErrorIs(t, err, nset.ErrNotInTree)
}

func TestFetchDepthLimit(t *testing.T) {
	st := memstore.New(nil)
	seedFixture(t, st, 0)
	m, err := nset.NewManager(nil, st, nset.WithFetchDepth(1))
	require.NoError(t, err)

	ws, err := m.FetchTreeSlice(0)
	require.NoError(t, err)

	// Depth 1 keeps the root and its direct children only.
	require.Len(t, ws, 3)
	assert.Equal(t, int64(1), ws[0].GetID())
	assert.Equal(t, int64(2), ws[1].GetID())
	assert.Equal(t, int64(3), ws[2].GetID())
	assert.Equal(t, []*nset.NodeWrapper{ws[1], ws[2]}, ws[0].GetChildren())
	assert.Empty(t, ws[2].GetChildren())
}

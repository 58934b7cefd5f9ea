// file: nset/internal.go
package nset

import (
	"fmt"
)

//
// ---------- Wrapping ----------

// Wrap returns the one wrapper registered for the node's identity,
// creating it on first sight. For a known identity the registered
// wrapper stays authoritative and the incoming instance is ignored, so
// refetched rows never fork a second view of the same node.
//
// Passing a wrapper back in fails with ErrAlreadyWrapped.
func (m *Manager) Wrap(n INode) (*NodeWrapper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wrap(n)
}

func (m *Manager) wrap(n INode) (*NodeWrapper, error) {
	if _, ok := n.(*NodeWrapper); ok {
		return nil, ErrAlreadyWrapped
	}
	id := n.GetID()
	if id == 0 {
		return nil, ErrIDRequired
	}
	if w, ok := m.wrappers[id]; ok {
		return w, nil
	}
	w := newNodeWrapper(n, m)
	m.wrappers[id] = w
	return w, nil
}

func (m *Manager) wrapAll(nodes []INode) ([]*NodeWrapper, error) {
	ws := make([]*NodeWrapper, 0, len(nodes))
	for _, n := range nodes {
		w, err := m.wrap(n)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
	}
	return ws, nil
}

// CreateRoot places a node as the sole member of a new tree and hands
// it to the store. With many roots enabled a zero rootID defaults to
// the node id, which then has to be assigned already; an explicit
// rootID works for stores that assign ids on persist.
func (m *Manager) CreateRoot(n INode, rootID int64) (*NodeWrapper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := n.(*NodeWrapper); ok {
		return nil, ErrAlreadyWrapped
	}

	n.SetLeft(1)
	n.SetRight(2)
	if m.cfg.HasManyRoots {
		if rootID == 0 {
			rootID = n.GetID()
		}
		if rootID == 0 {
			return nil, ErrIDRequired
		}
		n.SetRoot(rootID)
	}

	if err := m.store.MarkForPersist(n); err != nil {
		return nil, fmt.Errorf("persist root: %w", err)
	}

	m.log.Info().Int64("id", n.GetID()).Int64("root", n.GetRoot()).Msg("created root")
	return m.wrap(n)
}

//
// ---------- Fetching ----------

// FetchTree loads the whole tree of a partition and returns its root
// wrapper with relations built. Returns ErrNoResult when the partition
// holds no nodes.
func (m *Manager) FetchTree(rootID int64) (*NodeWrapper, error) {
	ws, err := m.FetchTreeSlice(rootID)
	if err != nil {
		return nil, err
	}
	return ws[0], nil
}

// FetchTreeSlice is FetchTree returning the flat left-ordered run.
func (m *Manager) FetchTreeSlice(rootID int64) ([]*NodeWrapper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchTree(rootID)
}

func (m *Manager) fetchTree(rootID int64) ([]*NodeWrapper, error) {
	if m.cfg.HasManyRoots {
		if rootID == 0 {
			return nil, ErrRootMissing
		}
	} else {
		rootID = 0
	}

	nodes, err := m.store.FindInRange(1, 0, rootID)
	if err != nil {
		return nil, fmt.Errorf("fetch tree: %w", err)
	}
	if len(nodes) == 0 {
		return nil, ErrNoResult
	}

	ws, err := m.wrapAll(nodes)
	if err != nil {
		return nil, err
	}
	ws = m.filterDepth(ws)
	BuildTree(ws)

	m.log.Debug().Int64("root", rootID).Int("nodes", len(ws)).Msg("fetched tree")
	return ws, nil
}

// FetchBranch loads the subtree headed by the node with the given id
// and returns its wrapper with relations built relative to the branch.
func (m *Manager) FetchBranch(id int64) (*NodeWrapper, error) {
	ws, err := m.FetchBranchSlice(id)
	if err != nil {
		return nil, err
	}
	return ws[0], nil
}

// FetchBranchSlice is FetchBranch returning the flat left-ordered run.
func (m *Manager) FetchBranchSlice(id int64) ([]*NodeWrapper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchBranch(id)
}

func (m *Manager) fetchBranch(id int64) ([]*NodeWrapper, error) {
	head, err := m.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	iv := IntervalOf(head)
	if !iv.IsValid() {
		return nil, ErrNotInTree
	}

	rootID := int64(0)
	if m.cfg.HasManyRoots {
		rootID = head.GetRoot()
	}

	nodes, err := m.store.FindInRange(iv.Left, iv.Right, rootID)
	if err != nil {
		return nil, fmt.Errorf("fetch branch: %w", err)
	}
	if len(nodes) == 0 {
		return nil, ErrNoResult
	}

	ws, err := m.wrapAll(nodes)
	if err != nil {
		return nil, err
	}
	ws = m.filterDepth(ws)
	BuildTree(ws)

	m.log.Debug().Int64("id", id).Int("nodes", len(ws)).Msg("fetched branch")
	return ws, nil
}

// filterDepth drops wrappers deeper than fetchDepth levels below the
// head of the run. Works on the left order alone, before relations
// exist: the open-ancestor count is the level.
func (m *Manager) filterDepth(ws []*NodeWrapper) []*NodeWrapper {
	if m.fetchDepth <= 0 {
		return ws
	}
	out := make([]*NodeWrapper, 0, len(ws))
	var open []Interval
	for _, w := range ws {
		iv := w.Interval()
		for len(open) > 0 && open[len(open)-1].Right < iv.Left {
			open = open[:len(open)-1]
		}
		if len(open) <= m.fetchDepth {
			out = append(out, w)
		}
		if iv.HasChildren() {
			open = append(open, iv)
		}
	}
	return out
}

//
// ---------- Bulk Shifts ----------

// UpdateLeftValues adds delta to the left value of every registered
// wrapper in the partition with left >= first, bounded above by last
// unless last is 0. In-memory only: the matching storage update is the
// caller's business. Touched wrappers go dirty.
func (m *Manager) UpdateLeftValues(first, last, delta, root int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits := 0
	for _, w := range m.wrappers {
		if !m.inPartition(w, root) {
			continue
		}
		if l := w.GetLeft(); l >= first && (last == 0 || l <= last) {
			w.SetLeft(l + delta)
			hits++
		}
	}
	m.log.Debug().
		Int64("first", first).Int64("last", last).Int64("delta", delta).
		Int64("root", root).Int("hits", hits).
		Msg("shifted left values")
}

// UpdateRightValues is UpdateLeftValues for right values.
func (m *Manager) UpdateRightValues(first, last, delta, root int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits := 0
	for _, w := range m.wrappers {
		if !m.inPartition(w, root) {
			continue
		}
		if r := w.GetRight(); r >= first && (last == 0 || r <= last) {
			w.SetRight(r + delta)
			hits++
		}
	}
	m.log.Debug().
		Int64("first", first).Int64("last", last).Int64("delta", delta).
		Int64("root", root).Int("hits", hits).
		Msg("shifted right values")
}

// UpdateValues relocates whole subtrees: wrappers in the partition
// with left >= first and, unless last is 0, right <= last get delta
// added to both values, and move to partition newRoot when newRoot is
// non-zero. The lower bound tests left while the upper bound tests
// right, which selects exactly the contained subtree rather than a
// half-open tail.
func (m *Manager) UpdateValues(first, last, delta, root, newRoot int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hits := 0
	for _, w := range m.wrappers {
		if !m.inPartition(w, root) {
			continue
		}
		if w.GetLeft() >= first && (last == 0 || w.GetRight() <= last) {
			if delta != 0 {
				w.SetLeft(w.GetLeft() + delta)
				w.SetRight(w.GetRight() + delta)
			}
			if newRoot != 0 {
				w.SetRoot(newRoot)
			}
			hits++
		}
	}
	m.log.Debug().
		Int64("first", first).Int64("last", last).Int64("delta", delta).
		Int64("root", root).Int64("new_root", newRoot).Int("hits", hits).
		Msg("shifted subtree values")
}

//
// ---------- Removal ----------

// RemoveNodes forgets every registered wrapper fully contained in
// [left, right] within the partition: the wrapper leaves the identity
// map, its interval resets to the detached sentinel and the store is
// told to forget the node. The map update is complete before any store
// signal goes out, so no wrap call can observe a half-removed state.
//
// Detach failures do not undo the in-memory removal; the first one is
// returned after all matched wrappers are processed.
func (m *Manager) RemoveNodes(left, right, root int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*NodeWrapper
	for _, w := range m.wrappers {
		if m.inPartition(w, root) && w.GetLeft() >= left && w.GetRight() <= right {
			matched = append(matched, w)
		}
	}

	for _, w := range matched {
		delete(m.wrappers, w.GetID())
	}

	var firstErr error
	for _, w := range matched {
		w.resetRelations()
		resetInterval(w)
		if err := m.store.Detach(w.Node()); err != nil {
			m.log.Error().Err(err).Int64("id", w.GetID()).Msg("store detach failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	m.log.Debug().
		Int64("left", left).Int64("right", right).Int64("root", root).
		Int("hits", len(matched)).
		Msg("removed nodes")
	return firstErr
}

//
// ---------- Registry Introspection ----------

// GetWrapper returns the registered wrapper for an identity, if any.
func (m *Manager) GetWrapper(id int64) (*NodeWrapper, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wrappers[id]
	return w, ok
}

// Count reports how many wrappers are registered.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wrappers)
}

// Has reports whether an identity is registered.
func (m *Manager) Has(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.wrappers[id]
	return ok
}

// Clear drops every registered wrapper without touching intervals or
// storage. Dropped wrappers keep working but are no longer shared or
// shifted.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wrappers = make(map[int64]*NodeWrapper)
	m.log.Debug().Msg("cleared wrappers")
}

// Dump returns a snapshot of registered identities and intervals.
func (m *Manager) Dump() map[int64]Interval {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[int64]Interval, len(m.wrappers))
	for id, w := range m.wrappers {
		out[id] = w.Interval()
	}
	return out
}

func (m *Manager) inPartition(w *NodeWrapper, root int64) bool {
	if !m.cfg.HasManyRoots {
		return true
	}
	return w.GetRoot() == root
}

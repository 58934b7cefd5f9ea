// file: nset/wrapper.go
package nset

import "fmt"

// Ensure NodeWrapper satisfies the node contract itself, so a wrapper
// handed back into Wrap or AddChild can be recognized and rejected or
// treated as a move target.
var _ INode = (*NodeWrapper)(nil)

// NodeWrapper pairs a node with the tree relations computed from the
// interval values of its partition. Relations are caches: they reflect
// the state at the last rebuild, and every interval change flips the
// dirty flag until the next rebuild.
type NodeWrapper struct {
	node INode
	mgr  *Manager

	parent      *NodeWrapper
	children    []*NodeWrapper
	ancestors   []*NodeWrapper
	descendants []*NodeWrapper

	dirty bool
}

func newNodeWrapper(n INode, mgr *Manager) *NodeWrapper {
	return &NodeWrapper{node: n, mgr: mgr}
}

// Node returns the wrapped node.
func (w *NodeWrapper) Node() INode {
	return w.node
}

// Manager returns the owning manager.
func (w *NodeWrapper) Manager() *Manager {
	return w.mgr
}

//
// ---------- INode Delegation ----------

func (w *NodeWrapper) GetID() int64    { return w.node.GetID() }
func (w *NodeWrapper) GetLeft() int64  { return w.node.GetLeft() }
func (w *NodeWrapper) GetRight() int64 { return w.node.GetRight() }
func (w *NodeWrapper) GetRoot() int64  { return w.node.GetRoot() }

// SetLeft moves the left bound and marks the cached relations stale.
func (w *NodeWrapper) SetLeft(v int64) {
	w.node.SetLeft(v)
	w.dirty = true
}

// SetRight moves the right bound and marks the cached relations stale.
func (w *NodeWrapper) SetRight(v int64) {
	w.node.SetRight(v)
	w.dirty = true
}

// SetRoot moves the node to another partition and marks the cached
// relations stale.
func (w *NodeWrapper) SetRoot(v int64) {
	w.node.SetRoot(v)
	w.dirty = true
}

//
// ---------- Cached Relations ----------

// GetParent returns the parent computed at the last rebuild, nil for
// roots and wrappers that were never part of a rebuild. The same holds
// for the other relation getters; returned slices are shared, treat
// them as read-only.
func (w *NodeWrapper) GetParent() *NodeWrapper {
	return w.parent
}

func (w *NodeWrapper) GetChildren() []*NodeWrapper {
	return w.children
}

// GetAncestors returns the chain from the root down to the parent.
func (w *NodeWrapper) GetAncestors() []*NodeWrapper {
	return w.ancestors
}

// GetDescendants returns the subtree below w in left order.
func (w *NodeWrapper) GetDescendants() []*NodeWrapper {
	return w.descendants
}

func (w *NodeWrapper) GetFirstChild() *NodeWrapper {
	if len(w.children) == 0 {
		return nil
	}
	return w.children[0]
}

func (w *NodeWrapper) GetLastChild() *NodeWrapper {
	if len(w.children) == 0 {
		return nil
	}
	return w.children[len(w.children)-1]
}

// GetPrevSibling returns the child before w under the same parent.
func (w *NodeWrapper) GetPrevSibling() *NodeWrapper {
	if w.parent == nil {
		return nil
	}
	var prev *NodeWrapper
	for _, c := range w.parent.children {
		if c == w {
			return prev
		}
		prev = c
	}
	return nil
}

// GetNextSibling returns the child after w under the same parent.
func (w *NodeWrapper) GetNextSibling() *NodeWrapper {
	if w.parent == nil {
		return nil
	}
	for i, c := range w.parent.children {
		if c == w && i+1 < len(w.parent.children) {
			return w.parent.children[i+1]
		}
	}
	return nil
}

func (w *NodeWrapper) CountChildren() int {
	return len(w.children)
}

func (w *NodeWrapper) CountDescendants() int {
	return len(w.descendants)
}

// GetLevel is the depth of w at the last rebuild, 0 for the fetch head.
func (w *NodeWrapper) GetLevel() int {
	return len(w.ancestors)
}

//
// ---------- Dirty Flag ----------

// IsDirty reports whether the interval moved since the last rebuild.
func (w *NodeWrapper) IsDirty() bool {
	return w.dirty
}

// Invalidate marks the cached relations stale by hand.
func (w *NodeWrapper) Invalidate() {
	w.dirty = true
}

func (w *NodeWrapper) clearDirty() {
	w.dirty = false
}

// resetRelations drops all cached relations. Run at the start of a
// rebuild and when the wrapper leaves its tree.
func (w *NodeWrapper) resetRelations() {
	w.parent = nil
	w.children = nil
	w.ancestors = nil
	w.descendants = nil
}

func (w *NodeWrapper) setParent(p *NodeWrapper) {
	w.parent = p
}

func (w *NodeWrapper) addChild(c *NodeWrapper) {
	w.children = append(w.children, c)
}

func (w *NodeWrapper) setAncestors(chain []*NodeWrapper) {
	w.ancestors = chain
}

func (w *NodeWrapper) addDescendant(d *NodeWrapper) {
	w.descendants = append(w.descendants, d)
}

//
// ---------- Interval Queries ----------

// Interval returns the current placement of the node.
func (w *NodeWrapper) Interval() Interval {
	return IntervalOf(w.node)
}

// IsRoot reports whether w sits at the base of its partition.
func (w *NodeWrapper) IsRoot() bool {
	return w.GetLeft() == 1
}

func (w *NodeWrapper) IsLeaf() bool {
	return w.Interval().IsLeaf()
}

func (w *NodeWrapper) HasChildren() bool {
	return w.Interval().HasChildren()
}

func (w *NodeWrapper) HasParent() bool {
	return !w.IsRoot() && w.Interval().IsValid()
}

// IsAncestorOf reports strict interval containment of other within w.
// With many roots enabled both nodes must also share a partition; in
// single tree mode stored root values are ignored.
func (w *NodeWrapper) IsAncestorOf(other *NodeWrapper) bool {
	return w.encloses(other)
}

// IsDescendantOf reports strict interval containment of w within other,
// under the same partition rules as IsAncestorOf.
func (w *NodeWrapper) IsDescendantOf(other *NodeWrapper) bool {
	return other.encloses(w)
}

func (w *NodeWrapper) String() string {
	return fmt.Sprintf("node %d %s", w.GetID(), w.Interval())
}

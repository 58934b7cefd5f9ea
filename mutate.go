// file: nset/mutate.go
package nset

import "fmt"

// Structural edits work in two legs kept numerically identical: a bulk
// shift against the store rows and the same shift replayed onto every
// registered wrapper. They need the store's bulk side (IShiftStore)
// and follow the manager's single-workflow rule: one mutation at a
// time, relations rebuilt afterwards via a fresh fetch.

//
// ---------- Inserts ----------

// InsertLastChild places a new, unplaced node as the last child of w.
// The node is persisted and wrapped before returning.
func (w *NodeWrapper) InsertLastChild(n INode) (*NodeWrapper, error) {
	return w.insert(n, w.GetRight())
}

// InsertFirstChild places a new, unplaced node as the first child of w.
func (w *NodeWrapper) InsertFirstChild(n INode) (*NodeWrapper, error) {
	return w.insert(n, w.GetLeft()+1)
}

// InsertPrevSibling places a new, unplaced node right before w under
// the same parent. Fails with ErrRootSibling when w is a root.
func (w *NodeWrapper) InsertPrevSibling(n INode) (*NodeWrapper, error) {
	if w.IsRoot() {
		return nil, ErrRootSibling
	}
	return w.insert(n, w.GetLeft())
}

// InsertNextSibling places a new, unplaced node right after w under
// the same parent. Fails with ErrRootSibling when w is a root.
func (w *NodeWrapper) InsertNextSibling(n INode) (*NodeWrapper, error) {
	if w.IsRoot() {
		return nil, ErrRootSibling
	}
	return w.insert(n, w.GetRight()+1)
}

// AddChild appends a node under w: an unplaced raw node is inserted,
// a wrapper is moved with its subtree.
func (w *NodeWrapper) AddChild(n INode) (*NodeWrapper, error) {
	if c, ok := n.(*NodeWrapper); ok {
		if err := c.MoveAsLastChildOf(w); err != nil {
			return nil, err
		}
		return c, nil
	}
	return w.InsertLastChild(n)
}

func (w *NodeWrapper) insert(n INode, newLeft int64) (*NodeWrapper, error) {
	if _, ok := n.(*NodeWrapper); ok {
		return nil, ErrAlreadyWrapped
	}
	if IntervalOf(n).IsValid() {
		return nil, ErrNodeInTree
	}
	if !w.Interval().IsValid() {
		return nil, ErrNotInTree
	}

	root := w.rootVal()
	if err := w.shiftRLValues(newLeft, 0, 2, root); err != nil {
		return nil, err
	}

	n.SetLeft(newLeft)
	n.SetRight(newLeft + 1)
	if w.mgr.cfg.HasManyRoots {
		n.SetRoot(w.GetRoot())
	}
	if err := w.mgr.store.MarkForPersist(n); err != nil {
		return nil, fmt.Errorf("persist node: %w", err)
	}

	w.mgr.log.Debug().
		Int64("id", n.GetID()).Int64("under", w.GetID()).Int64("left", newLeft).
		Msg("inserted node")
	return w.mgr.Wrap(n)
}

//
// ---------- Moves ----------

// MoveAsLastChildOf relocates w with its whole subtree to be the last
// child of dest, across partitions when dest lives in another tree.
func (w *NodeWrapper) MoveAsLastChildOf(dest *NodeWrapper) error {
	if err := w.checkMove(dest); err != nil {
		return err
	}
	return w.moveTo(dest.GetRight(), dest)
}

// MoveAsFirstChildOf relocates w with its subtree to be the first
// child of dest.
func (w *NodeWrapper) MoveAsFirstChildOf(dest *NodeWrapper) error {
	if err := w.checkMove(dest); err != nil {
		return err
	}
	return w.moveTo(dest.GetLeft()+1, dest)
}

// MoveAsPrevSiblingOf relocates w with its subtree to sit right before
// dest under dest's parent.
func (w *NodeWrapper) MoveAsPrevSiblingOf(dest *NodeWrapper) error {
	if err := w.checkMove(dest); err != nil {
		return err
	}
	if dest.IsRoot() {
		return ErrRootSibling
	}
	return w.moveTo(dest.GetLeft(), dest)
}

// MoveAsNextSiblingOf relocates w with its subtree to sit right after
// dest under dest's parent.
func (w *NodeWrapper) MoveAsNextSiblingOf(dest *NodeWrapper) error {
	if err := w.checkMove(dest); err != nil {
		return err
	}
	if dest.IsRoot() {
		return ErrRootSibling
	}
	return w.moveTo(dest.GetRight()+1, dest)
}

func (w *NodeWrapper) checkMove(dest *NodeWrapper) error {
	if !w.Interval().IsValid() || !dest.Interval().IsValid() {
		return ErrNotInTree
	}
	if w == dest || w.encloses(dest) {
		return ErrMoveIntoSelf
	}
	return nil
}

// encloses is strict containment under the manager's partition rules:
// the partition check only applies with many roots enabled.
func (w *NodeWrapper) encloses(other *NodeWrapper) bool {
	if w.mgr.cfg.HasManyRoots && !w.Interval().SameRoot(other.Interval()) {
		return false
	}
	return w.Interval().Contains(other.Interval())
}

func (w *NodeWrapper) moveTo(newLeft int64, dest *NodeWrapper) error {
	if w.mgr.cfg.HasManyRoots && w.GetRoot() != dest.GetRoot() {
		return w.moveBetweenTrees(newLeft, dest.GetRoot())
	}
	return w.moveWithinTree(newLeft)
}

// moveWithinTree is the classic three-shift relocation: open a hole at
// the target, slide the subtree in, close the gap it left behind. The
// subtree bounds are re-read after the first shift because opening the
// hole may have moved the subtree itself.
func (w *NodeWrapper) moveWithinTree(newLeft int64) error {
	left := w.GetLeft()
	right := w.GetRight()
	size := right - left + 1
	root := w.rootVal()

	if err := w.shiftRLValues(newLeft, 0, size, root); err != nil {
		return err
	}
	if left >= newLeft {
		left += size
		right += size
	}
	if err := w.shiftRLRange(left, right, newLeft-left, root, 0); err != nil {
		return err
	}
	if err := w.shiftRLValues(right+1, 0, -size, root); err != nil {
		return err
	}

	w.mgr.log.Debug().
		Int64("id", w.GetID()).Int64("left", newLeft).Int64("root", root).
		Msg("moved subtree")
	return nil
}

// moveBetweenTrees relocates the subtree into another partition: a
// hole opens in the target tree, the subtree shifts into it and gets
// re-rooted in one pass, and the source tree closes up.
func (w *NodeWrapper) moveBetweenTrees(newLeft, newRoot int64) error {
	oldRoot := w.GetRoot()
	left := w.GetLeft()
	right := w.GetRight()
	size := right - left + 1

	if err := w.shiftRLValues(newLeft, 0, size, newRoot); err != nil {
		return err
	}
	if err := w.shiftRLRange(left, right, newLeft-left, oldRoot, newRoot); err != nil {
		return err
	}
	if err := w.shiftRLValues(right+1, 0, -size, oldRoot); err != nil {
		return err
	}

	w.mgr.log.Debug().
		Int64("id", w.GetID()).Int64("left", newLeft).
		Int64("old_root", oldRoot).Int64("new_root", newRoot).
		Msg("moved subtree between trees")
	return nil
}

//
// ---------- Delete ----------

// Delete removes w and its whole subtree from storage and from the
// registry, then closes the gap. The removed wrappers come out with
// the detached sentinel interval.
func (w *NodeWrapper) Delete() error {
	if !w.Interval().IsValid() {
		return ErrNotInTree
	}
	ss, err := w.shiftStore()
	if err != nil {
		return err
	}

	left := w.GetLeft()
	right := w.GetRight()
	size := right - left + 1
	root := w.rootVal()

	if err := ss.DeleteRange(left, right, root); err != nil {
		return fmt.Errorf("delete range: %w", err)
	}
	if err := w.mgr.RemoveNodes(left, right, root); err != nil {
		return err
	}
	if err := w.shiftRLValues(right+1, 0, -size, root); err != nil {
		return err
	}

	w.mgr.log.Debug().
		Int64("id", w.GetID()).Int64("left", left).Int64("right", right).
		Msg("deleted subtree")
	return nil
}

//
// ---------- Shift Legs ----------

// shiftRLValues opens or closes a hole: store rows and registered
// wrappers with a bound at or past first (bounded by last unless 0)
// move by delta, left and right values independently.
func (w *NodeWrapper) shiftRLValues(first, last, delta, root int64) error {
	ss, err := w.shiftStore()
	if err != nil {
		return err
	}
	if err := ss.ShiftLeftValues(first, last, delta, root); err != nil {
		return fmt.Errorf("shift left values: %w", err)
	}
	if err := ss.ShiftRightValues(first, last, delta, root); err != nil {
		return fmt.Errorf("shift right values: %w", err)
	}
	w.mgr.UpdateLeftValues(first, last, delta, root)
	w.mgr.UpdateRightValues(first, last, delta, root)
	return nil
}

// shiftRLRange relocates one contained subtree, both bounds at once,
// optionally into another partition.
func (w *NodeWrapper) shiftRLRange(first, last, delta, root, newRoot int64) error {
	ss, err := w.shiftStore()
	if err != nil {
		return err
	}
	if err := ss.ShiftValues(first, last, delta, root, newRoot); err != nil {
		return fmt.Errorf("shift values: %w", err)
	}
	w.mgr.UpdateValues(first, last, delta, root, newRoot)
	return nil
}

func (w *NodeWrapper) shiftStore() (IShiftStore, error) {
	ss, ok := w.mgr.store.(IShiftStore)
	if !ok {
		return nil, ErrShiftsUnsupported
	}
	return ss, nil
}

func (w *NodeWrapper) rootVal() int64 {
	if !w.mgr.cfg.HasManyRoots {
		return 0
	}
	return w.GetRoot()
}

// file: nset/builder.go
package nset

// BuildTree computes parent, children, ancestor and descendant caches
// for a flat run of wrappers ordered by left value, in one pass with a
// stack of open ancestors. The first wrapper is the head of the run; a
// branch fetch hands in a head that is not the partition root, which
// is fine because relations are computed relative to the run.
//
// Stale caches from an earlier build are dropped first, and every
// wrapper comes out clean.
func BuildTree(wrappers []*NodeWrapper) {
	if len(wrappers) == 0 {
		return
	}

	for _, w := range wrappers {
		w.resetRelations()
	}

	// The head can never be a child, even on malformed input where a
	// later interval is not enclosed by it.
	head := wrappers[0]

	// Open ancestors, bottom of the stack is the head.
	stack := make([]*NodeWrapper, 0, 8)

	for _, w := range wrappers {
		for len(stack) > 0 && stack[len(stack)-1].GetRight() < w.GetLeft() {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 && w != head {
			parent := stack[len(stack)-1]
			w.setParent(parent)
			parent.addChild(w)
			w.setAncestors(append([]*NodeWrapper(nil), stack...))
			for _, a := range stack {
				a.addDescendant(w)
			}
		}

		// Only nodes with room between the bounds can parent later
		// nodes of the run.
		if w.Interval().HasChildren() {
			stack = append(stack, w)
		}

		w.clearDirty()
	}
}

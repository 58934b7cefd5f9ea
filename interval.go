// file: nset/interval.go
package nset

import "fmt"

//
// ---------- Interval Value ----------

// Interval is the value triple a node occupies in the nested set
// encoding: a left and right bound plus the root the node belongs to.
// A placed node always satisfies left < right; both bounds of a parent
// strictly enclose the bounds of every descendant.
type Interval struct {
	Left  int64
	Right int64
	Root  int64
}

// IntervalOf reads the current interval of a node.
func IntervalOf(n INode) Interval {
	return Interval{Left: n.GetLeft(), Right: n.GetRight(), Root: n.GetRoot()}
}

// IsValid reports whether the node is placed in a tree.
// Unplaced and detached nodes carry a zero interval.
func (iv Interval) IsValid() bool {
	return iv.Left < iv.Right
}

// Contains reports strict containment of o within iv.
// Equal intervals do not contain each other. Partition membership is
// a separate question, see SameRoot.
func (iv Interval) Contains(o Interval) bool {
	return iv.Left < o.Left && o.Right < iv.Right
}

// SameRoot reports whether both intervals live in the same partition.
func (iv Interval) SameRoot(o Interval) bool {
	return iv.Root == o.Root
}

// IsLeaf reports whether the interval has no room for children.
func (iv Interval) IsLeaf() bool {
	return iv.Right-iv.Left == 1
}

// HasChildren reports whether at least one child fits between the bounds.
func (iv Interval) HasChildren() bool {
	return iv.Right-iv.Left > 1
}

// Size is the number of slots the interval spans, children included.
// A placed subtree of n nodes spans 2n slots.
func (iv Interval) Size() int64 {
	return iv.Right - iv.Left + 1
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d %d r%d]", iv.Left, iv.Right, iv.Root)
}

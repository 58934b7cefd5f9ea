// file: nset/store.go
package nset

//
// ---------- Node Store Contract ----------

// INodeStore is the storage collaborator the Manager loads nodes from.
// Implementations return rows ordered by left value ascending; every
// returned node must carry a non-zero id.
//
// A rightUpper of 0 means "no upper bound": a whole-tree fetch passes
// (1, 0), a branch fetch passes the branch interval. When many roots
// are disabled the root argument is always 0 and implementations are
// free to ignore it.
type INodeStore interface {
	// FindInRange loads nodes with left >= leftLower and, when
	// rightUpper is non-zero, right <= rightUpper, scoped to root.
	FindInRange(leftLower, rightUpper, root int64) ([]INode, error)

	// FindByID loads a single node or returns ErrNoResult.
	FindByID(id int64) (INode, error)

	// MarkForPersist hands a created or relocated node to the store.
	// Flush timing is the store's business; stores backed by a
	// database may assign the id here.
	MarkForPersist(n INode) error

	// Detach tells the store to forget a removed node. The node's
	// interval is already reset when this is called.
	Detach(n INode) error
}

// IShiftStore is the optional bulk side of a node store. Tree mutations
// (insert, move, delete) need it: each shift must hit every stored row
// matching the predicate in one operation, mirroring what the Manager
// replays onto its wrappers.
type IShiftStore interface {
	INodeStore

	// ShiftLeftValues adds delta to the left value of rows with
	// left >= first, bounded by last unless last is 0.
	ShiftLeftValues(first, last, delta, root int64) error

	// ShiftRightValues is ShiftLeftValues for right values.
	ShiftRightValues(first, last, delta, root int64) error

	// ShiftValues adds delta to both values of rows with left >= first
	// and, unless last is 0, right <= last. A non-zero newRoot also
	// moves matching rows into that partition. The asymmetric
	// predicate selects exactly one subtree.
	ShiftValues(first, last, delta, root, newRoot int64) error

	// DeleteRange removes rows with left >= left and right <= right
	// from the partition.
	DeleteRange(left, right, root int64) error
}

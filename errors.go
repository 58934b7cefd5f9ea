// file: nset/errors.go
package nset

import "errors"

var (
	// Identity misuse.
	ErrAlreadyWrapped = errors.New("nset: node is already wrapped")
	ErrIDRequired     = errors.New("nset: node id is required")

	// Partitioning.
	ErrRootMissing = errors.New("nset: root value is required when many roots are enabled")

	// Lookups.
	ErrNoResult = errors.New("nset: no result")

	// Structural misuse during inserts, moves and deletes.
	ErrNodeInTree   = errors.New("nset: node already belongs to a tree")
	ErrNotInTree    = errors.New("nset: node does not belong to a tree")
	ErrMoveIntoSelf = errors.New("nset: cannot move a node into its own subtree")
	ErrRootSibling  = errors.New("nset: a root node cannot have siblings")

	// Collaborator capabilities.
	ErrStoreRequired     = errors.New("nset: node store is required")
	ErrShiftsUnsupported = errors.New("nset: node store does not support bulk shifts")
)

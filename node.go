// file: nset/node.go

// Package nset manages trees stored in the nested set encoding: every
// node owns a left/right bound pair and a parent encloses the bounds of
// all of its descendants. Nodes live in flat storage behind the
// INodeStore contract; the Manager keeps one wrapper per node identity
// and replays interval shifts onto every wrapper it knows about, so the
// in-memory picture and the store stay in step without refetching.
package nset

// INode is the contract a storable node type has to satisfy. The engine
// never touches payload fields, only the identity and the three
// interval values.
type INode interface {
	GetID() int64

	GetLeft() int64
	SetLeft(int64)

	GetRight() int64
	SetRight(int64)

	GetRoot() int64
	SetRoot(int64)
}

// resetInterval clears the placement of a node. Run on removed nodes
// right before the store is told to forget them.
func resetInterval(n INode) {
	n.SetLeft(0)
	n.SetRight(0)
	n.SetRoot(0)
}

// file: nset/codec/codec.go

// Package codec converts trees between the nested form used in files
// and APIs and the flat interval rows the engine stores.
package codec

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rskv-p/nset"
)

// Ensure FlatNode can be handed straight to a node store.
var _ nset.INode = (*FlatNode)(nil)

// Labeled is the optional capability a node type exposes to carry a
// display name through export and dumps.
type Labeled interface {
	GetLabel() string
}

// TreeNode is the nested import/export form of a subtree. A zero ID
// on import means "assign one".
type TreeNode struct {
	ID       int64       `json:"id,omitempty" mapstructure:"id"`
	Label    string      `json:"label,omitempty" mapstructure:"label"`
	Children []*TreeNode `json:"children,omitempty" mapstructure:"children"`
}

// FlatNode is one interval row produced by Flatten, ready for a store.
type FlatNode struct {
	ID    int64  `json:"id"`
	Left  int64  `json:"left"`
	Right int64  `json:"right"`
	Root  int64  `json:"root,omitempty"`
	Label string `json:"label,omitempty"`
}

func (n *FlatNode) GetID() int64     { return n.ID }
func (n *FlatNode) GetLeft() int64   { return n.Left }
func (n *FlatNode) SetLeft(v int64)  { n.Left = v }
func (n *FlatNode) GetRight() int64  { return n.Right }
func (n *FlatNode) SetRight(v int64) { n.Right = v }
func (n *FlatNode) GetRoot() int64   { return n.Root }
func (n *FlatNode) SetRoot(v int64)  { n.Root = v }

func (n *FlatNode) GetLabel() string { return n.Label }

//
// ---------- Import ----------

// Decode turns parsed JSON (or any nested map form) into a TreeNode.
// Numbers arrive as float64 from encoding/json, so decoding is weakly
// typed.
func Decode(input any) (*TreeNode, error) {
	var t TreeNode
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &t,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(input); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return &t, nil
}

// Flatten numbers a nested tree into interval rows in left order, the
// encoding a store expects. Zero ids are assigned past the largest id
// present; duplicate ids fail.
func Flatten(root *TreeNode, rootVal int64) ([]*FlatNode, error) {
	if root == nil {
		return nil, errors.New("codec: empty tree")
	}

	maxID := int64(0)
	seen := make(map[int64]struct{})
	var scan func(t *TreeNode) error
	scan = func(t *TreeNode) error {
		if t == nil {
			return errors.New("codec: nil tree node")
		}
		if t.ID != 0 {
			if _, dup := seen[t.ID]; dup {
				return fmt.Errorf("codec: duplicate id %d", t.ID)
			}
			seen[t.ID] = struct{}{}
			if t.ID > maxID {
				maxID = t.ID
			}
		}
		for _, c := range t.Children {
			if err := scan(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := scan(root); err != nil {
		return nil, err
	}

	var out []*FlatNode
	counter := int64(0)
	var walk func(t *TreeNode)
	walk = func(t *TreeNode) {
		counter++
		id := t.ID
		if id == 0 {
			maxID++
			id = maxID
		}
		row := &FlatNode{ID: id, Left: counter, Root: rootVal, Label: t.Label}
		out = append(out, row)
		for _, c := range t.Children {
			walk(c)
		}
		counter++
		row.Right = counter
	}
	walk(root)
	return out, nil
}

//
// ---------- Export ----------

// Export walks the children caches below w into the nested form.
// Labels come along for node types exposing the Labeled capability.
func Export(w *nset.NodeWrapper) *TreeNode {
	if w == nil {
		return nil
	}
	t := &TreeNode{ID: w.GetID()}
	if l, ok := w.Node().(Labeled); ok {
		t.Label = l.GetLabel()
	}
	for _, c := range w.GetChildren() {
		t.Children = append(t.Children, Export(c))
	}
	return t
}

// file: nset/store/memstore/memstore.go

// Package memstore is an in-memory node store for tests, tooling and
// small trees. It behaves like a database-backed store: rows are
// snapshots owned by the store, and fetches return fresh copies, so
// bulk shifts against the store never touch the instances a manager
// is tracking.
package memstore

import (
	"sort"
	"sync"

	"github.com/tidwall/btree"

	"github.com/rskv-p/nset"
)

var (
	_ nset.IShiftStore = (*Store)(nil)
	_ nset.INode       = (*Record)(nil)
)

// Record is the row type the store keeps. Label is carried for
// display; custom payload fields of other node types do not survive a
// round trip through this store.
type Record struct {
	ID    int64  `json:"id"`
	Left  int64  `json:"left"`
	Right int64  `json:"right"`
	Root  int64  `json:"root,omitempty"`
	Label string `json:"label,omitempty"`
}

func (r *Record) GetID() int64     { return r.ID }
func (r *Record) GetLeft() int64   { return r.Left }
func (r *Record) SetLeft(v int64)  { r.Left = v }
func (r *Record) GetRight() int64  { return r.Right }
func (r *Record) SetRight(v int64) { r.Right = v }
func (r *Record) GetRoot() int64   { return r.Root }
func (r *Record) SetRoot(v int64)  { r.Root = v }

func (r *Record) GetLabel() string { return r.Label }

type labeled interface{ GetLabel() string }

// Store keeps one ordered-by-left index per partition plus an identity
// map over all partitions.
type Store struct {
	mu    sync.RWMutex
	cfg   *nset.Config
	byID  map[int64]*Record
	parts map[int64]*btree.Map[int64, *Record]
}

// New builds an empty store. A nil cfg means nset.Default().
func New(cfg *nset.Config) *Store {
	if cfg == nil {
		cfg = nset.Default()
	}
	return &Store{
		cfg:   cfg,
		byID:  make(map[int64]*Record),
		parts: make(map[int64]*btree.Map[int64, *Record]),
	}
}

//
// ---------- INodeStore ----------

// FindInRange returns copies of rows with left >= leftLower, right
// bounded by rightUpper unless it is 0, in left order.
func (s *Store) FindInRange(leftLower, rightUpper, root int64) ([]nset.INode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	part := s.parts[root]
	if part == nil {
		return nil, nil
	}

	var out []nset.INode
	iter := part.Iter()
	for ok := iter.Seek(leftLower); ok; ok = iter.Next() {
		rec := iter.Value()
		if rightUpper != 0 && rec.Left > rightUpper {
			break
		}
		if rightUpper != 0 && rec.Right > rightUpper {
			continue
		}
		cpy := *rec
		out = append(out, &cpy)
	}
	return out, nil
}

// FindByID returns a copy of the row or nset.ErrNoResult.
func (s *Store) FindByID(id int64) (nset.INode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, nset.ErrNoResult
	}
	cpy := *rec
	return &cpy, nil
}

// MarkForPersist snapshots the node into the store, replacing any row
// with the same id. Ids are caller-assigned here: this store cannot
// write a generated id back into the node.
func (s *Store) MarkForPersist(n nset.INode) error {
	if n.GetID() == 0 {
		return nset.ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := snapshot(n)
	if old, ok := s.byID[rec.ID]; ok {
		s.partFor(s.rootKey(old.Root)).Delete(old.Left)
	}
	s.byID[rec.ID] = rec
	s.partFor(s.rootKey(rec.Root)).Set(rec.Left, rec)
	return nil
}

// Detach drops the row for the node's identity, if it is still there.
// The node arrives with its interval already reset, so the lookup goes
// through the identity map, never the index.
func (s *Store) Detach(n nset.INode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[n.GetID()]
	if !ok {
		return nil
	}
	s.partFor(s.rootKey(rec.Root)).Delete(rec.Left)
	delete(s.byID, rec.ID)
	return nil
}

//
// ---------- IShiftStore ----------

// ShiftLeftValues moves matching left values by delta. Keys change, so
// matches leave the index as a batch and come back under their new
// left values.
func (s *Store) ShiftLeftValues(first, last, delta, root int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.parts[root]
	if part == nil {
		return nil
	}

	var hit []*Record
	part.Scan(func(_ int64, rec *Record) bool {
		if rec.Left >= first && (last == 0 || rec.Left <= last) {
			hit = append(hit, rec)
		}
		return true
	})
	for _, rec := range hit {
		part.Delete(rec.Left)
	}
	for _, rec := range hit {
		rec.Left += delta
		part.Set(rec.Left, rec)
	}
	return nil
}

// ShiftRightValues moves matching right values by delta in place; the
// index key is the left value and does not change.
func (s *Store) ShiftRightValues(first, last, delta, root int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.parts[root]
	if part == nil {
		return nil
	}

	part.Scan(func(_ int64, rec *Record) bool {
		if rec.Right >= first && (last == 0 || rec.Right <= last) {
			rec.Right += delta
		}
		return true
	})
	return nil
}

// ShiftValues relocates one contained subtree, optionally into another
// partition.
func (s *Store) ShiftValues(first, last, delta, root, newRoot int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.parts[root]
	if part == nil {
		return nil
	}

	var hit []*Record
	part.Scan(func(_ int64, rec *Record) bool {
		if rec.Left >= first && (last == 0 || rec.Right <= last) {
			hit = append(hit, rec)
		}
		return true
	})
	for _, rec := range hit {
		part.Delete(rec.Left)
	}

	target := part
	if newRoot != 0 {
		target = s.partFor(newRoot)
	}
	for _, rec := range hit {
		rec.Left += delta
		rec.Right += delta
		if newRoot != 0 {
			rec.Root = newRoot
		}
		target.Set(rec.Left, rec)
	}
	return nil
}

// DeleteRange removes rows fully contained in [left, right] from the
// partition.
func (s *Store) DeleteRange(left, right, root int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.parts[root]
	if part == nil {
		return nil
	}

	var hit []*Record
	part.Scan(func(_ int64, rec *Record) bool {
		if rec.Left >= left && rec.Right <= right {
			hit = append(hit, rec)
		}
		return true
	})
	for _, rec := range hit {
		part.Delete(rec.Left)
		delete(s.byID, rec.ID)
	}
	return nil
}

//
// ---------- Introspection ----------

// Len reports how many rows the store holds across all partitions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Dump returns copies of all rows ordered by partition, then left.
func (s *Store) Dump() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roots := make([]int64, 0, len(s.parts))
	for root := range s.parts {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	var out []Record
	for _, root := range roots {
		s.parts[root].Scan(func(_ int64, rec *Record) bool {
			out = append(out, *rec)
			return true
		})
	}
	return out
}

//
// ---------- Internals ----------

func (s *Store) partFor(root int64) *btree.Map[int64, *Record] {
	part, ok := s.parts[root]
	if !ok {
		part = new(btree.Map[int64, *Record])
		s.parts[root] = part
	}
	return part
}

func (s *Store) rootKey(root int64) int64 {
	if !s.cfg.HasManyRoots {
		return 0
	}
	return root
}

func snapshot(n nset.INode) *Record {
	rec := &Record{
		ID:    n.GetID(),
		Left:  n.GetLeft(),
		Right: n.GetRight(),
		Root:  n.GetRoot(),
	}
	if l, ok := n.(labeled); ok {
		rec.Label = l.GetLabel()
	}
	return rec
}

// file: nset/store/gormstore/gormstore.go

// Package gormstore backs a node store with a relational database
// through GORM. Range queries and bulk shifts compile to single
// statements over the configured column names, so the table layout
// stays the caller's choice.
package gormstore

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rskv-p/nset"
)

// Entity constrains a model type parameter: the pointer type has to
// satisfy the node contract.
type Entity[T any] interface {
	*T
	nset.INode
}

// Store adapts one GORM model to the node store contract. T is the
// model struct, rows scan into fresh instances on every fetch.
type Store[T any, P Entity[T]] struct {
	db  *gorm.DB
	cfg *nset.Config
}

// New builds a store over an open connection. A nil cfg means
// nset.Default(); cfg column names must match the model's schema.
func New[T any, P Entity[T]](db *gorm.DB, cfg *nset.Config) *Store[T, P] {
	if cfg == nil {
		cfg = nset.Default()
	}
	return &Store[T, P]{db: db, cfg: cfg}
}

// DB exposes the underlying connection.
func (s *Store[T, P]) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the model's table.
func (s *Store[T, P]) Migrate() error {
	return s.db.AutoMigrate(P(new(T)))
}

// Count reports the number of rows in the model's table.
func (s *Store[T, P]) Count() (int64, error) {
	var n int64
	err := s.db.Model(P(new(T))).Count(&n).Error
	return n, err
}

//
// ---------- INodeStore ----------

// FindInRange loads rows with left >= leftLower, right bounded by
// rightUpper unless it is 0, in left order.
func (s *Store[T, P]) FindInRange(leftLower, rightUpper, root int64) ([]nset.INode, error) {
	q := s.db.Where(s.cfg.LeftField+" >= ?", leftLower).Order(s.cfg.LeftField + " ASC")
	if rightUpper != 0 {
		q = q.Where(s.cfg.RightField+" <= ?", rightUpper)
	}
	if s.cfg.HasManyRoots {
		q = q.Where(s.cfg.RootField+" = ?", root)
	}

	var rows []T
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]nset.INode, len(rows))
	for i := range rows {
		out[i] = P(&rows[i])
	}
	return out, nil
}

// FindByID loads one row by primary key or returns nset.ErrNoResult.
func (s *Store[T, P]) FindByID(id int64) (nset.INode, error) {
	var row T
	err := s.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nset.ErrNoResult
	}
	if err != nil {
		return nil, err
	}
	return P(&row), nil
}

// MarkForPersist upserts the node's row. A zero id lets the database
// assign one, written back into the node by GORM.
func (s *Store[T, P]) MarkForPersist(n nset.INode) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(n).Error
}

// Detach is a no-op: GORM holds no per-instance session state to
// forget, and row removal is DeleteRange's business.
func (s *Store[T, P]) Detach(n nset.INode) error {
	return nil
}

//
// ---------- IShiftStore ----------

// ShiftLeftValues moves matching left values by delta in one UPDATE.
func (s *Store[T, P]) ShiftLeftValues(first, last, delta, root int64) error {
	q := s.db.Model(P(new(T))).Where(s.cfg.LeftField+" >= ?", first)
	if last != 0 {
		q = q.Where(s.cfg.LeftField+" <= ?", last)
	}
	if s.cfg.HasManyRoots {
		q = q.Where(s.cfg.RootField+" = ?", root)
	}
	return q.UpdateColumn(s.cfg.LeftField, gorm.Expr(s.cfg.LeftField+" + ?", delta)).Error
}

// ShiftRightValues moves matching right values by delta in one UPDATE.
func (s *Store[T, P]) ShiftRightValues(first, last, delta, root int64) error {
	q := s.db.Model(P(new(T))).Where(s.cfg.RightField+" >= ?", first)
	if last != 0 {
		q = q.Where(s.cfg.RightField+" <= ?", last)
	}
	if s.cfg.HasManyRoots {
		q = q.Where(s.cfg.RootField+" = ?", root)
	}
	return q.UpdateColumn(s.cfg.RightField, gorm.Expr(s.cfg.RightField+" + ?", delta)).Error
}

// ShiftValues relocates one contained subtree in a single UPDATE,
// optionally into another partition.
func (s *Store[T, P]) ShiftValues(first, last, delta, root, newRoot int64) error {
	q := s.db.Model(P(new(T))).Where(s.cfg.LeftField+" >= ?", first)
	if last != 0 {
		q = q.Where(s.cfg.RightField+" <= ?", last)
	}
	if s.cfg.HasManyRoots {
		q = q.Where(s.cfg.RootField+" = ?", root)
	}

	assign := map[string]any{}
	if delta != 0 {
		assign[s.cfg.LeftField] = gorm.Expr(s.cfg.LeftField+" + ?", delta)
		assign[s.cfg.RightField] = gorm.Expr(s.cfg.RightField+" + ?", delta)
	}
	if s.cfg.HasManyRoots && newRoot != 0 {
		assign[s.cfg.RootField] = newRoot
	}
	if len(assign) == 0 {
		return nil
	}
	return q.UpdateColumns(assign).Error
}

// DeleteRange removes rows fully contained in [left, right] from the
// partition in one DELETE.
func (s *Store[T, P]) DeleteRange(left, right, root int64) error {
	q := s.db.Where(s.cfg.LeftField+" >= ?", left).Where(s.cfg.RightField+" <= ?", right)
	if s.cfg.HasManyRoots {
		q = q.Where(s.cfg.RootField+" = ?", root)
	}
	return q.Delete(P(new(T))).Error
}

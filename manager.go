// file: nset/manager.go
package nset

import (
	"sync"

	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
)

var _ IManager = (*Manager)(nil)

// IManager is the registry of live tree wrappers plus the bulk
// interval operations that keep them consistent with the store.
type IManager interface {
	Wrap(INode) (*NodeWrapper, error)
	CreateRoot(n INode, rootID int64) (*NodeWrapper, error)

	FetchTree(rootID int64) (*NodeWrapper, error)
	FetchTreeSlice(rootID int64) ([]*NodeWrapper, error)
	FetchBranch(id int64) (*NodeWrapper, error)
	FetchBranchSlice(id int64) ([]*NodeWrapper, error)

	UpdateLeftValues(first, last, delta, root int64)
	UpdateRightValues(first, last, delta, root int64)
	UpdateValues(first, last, delta, root, newRoot int64)
	RemoveNodes(left, right, root int64) error

	GetWrapper(id int64) (*NodeWrapper, bool)
	Count() int
	Has(id int64) bool
	Clear()
	Dump() map[int64]Interval

	Config() *Config
	Store() INodeStore
}

// Manager keeps exactly one wrapper per node identity for its whole
// lifetime. Wrappers are handed out by reference and never evicted;
// bulk shifts walk the full registered set, so callers bound it by
// fetching bounded subtrees.
//
// All exported methods take the manager lock. One manager must not be
// shared by concurrent tree mutations: a shift walks and mutates the
// whole set and a concurrent wrap would see it half applied.
type Manager struct {
	mu       sync.Mutex
	cfg      *Config
	store    INodeStore
	wrappers map[int64]*NodeWrapper

	log        zerolog.Logger
	tag        string
	fetchDepth int
}

// NewManager builds a manager around a node store. A nil cfg means
// Default(). The default logger is a no-op, see WithLogger.
func NewManager(cfg *Config, store INodeStore, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if cfg == nil {
		cfg = Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:      cfg,
		store:    store,
		wrappers: make(map[int64]*NodeWrapper),
		log:      zerolog.Nop(),
		tag:      nuid.Next(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	m.log = m.log.With().Str("mgr", m.tag).Logger()
	return m, nil
}

// Config returns the schema-facing settings shared with the store.
func (m *Manager) Config() *Config {
	return m.cfg
}

// Store returns the node store collaborator.
func (m *Manager) Store() INodeStore {
	return m.store
}

// Tag returns the instance tag carried in every log line.
func (m *Manager) Tag() string {
	return m.tag
}

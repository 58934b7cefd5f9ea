// file: nset/options.go
package nset

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option is a functional manager initializer.
type Option func(*Manager) error

// WithLogger routes manager logging to the given logger. Without it
// the manager stays silent.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) error {
		m.log = l
		return nil
	}
}

// WithFetchDepth keeps at most depth levels below the head on tree and
// branch fetches: depth 1 is the head plus its children. Zero or
// negative means no limit.
func WithFetchDepth(depth int) Option {
	return func(m *Manager) error {
		m.fetchDepth = depth
		return nil
	}
}

// WithTag overrides the generated instance tag carried in log lines.
func WithTag(tag string) Option {
	return func(m *Manager) error {
		if tag == "" {
			return fmt.Errorf("empty manager tag")
		}
		m.tag = tag
		return nil
	}
}

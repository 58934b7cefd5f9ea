// file: nset/interval_test.go
package nset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rskv-p/nset"
)

func TestIntervalContains(t *testing.T) {
	outer := nset.Interval{Left: 1, Right: 10}
	inner := nset.Interval{Left: 4, Right: 9}

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))

	// Containment is strict: shared bounds do not count.
	assert.False(t, outer.Contains(outer))
	assert.False(t, outer.Contains(nset.Interval{Left: 1, Right: 9}))
	assert.False(t, outer.Contains(nset.Interval{Left: 4, Right: 10}))

	// Root values are not part of containment, see SameRoot.
	assert.True(t, outer.Contains(nset.Interval{Left: 4, Right: 9, Root: 2}))
	assert.True(t, nset.Interval{Left: 1, Right: 10, Root: 7}.Contains(inner))
}

func TestIntervalPredicates(t *testing.T) {
	assert.True(t, nset.Interval{Left: 1, Right: 2}.IsValid())
	assert.False(t, nset.Interval{}.IsValid())
	assert.False(t, nset.Interval{Left: 3, Right: 3}.IsValid())

	assert.True(t, nset.Interval{Left: 1, Right: 2}.IsLeaf())
	assert.False(t, nset.Interval{Left: 1, Right: 2}.HasChildren())
	assert.True(t, nset.Interval{Left: 1, Right: 4}.HasChildren())

	assert.Equal(t, int64(2), nset.Interval{Left: 1, Right: 2}.Size())
	assert.Equal(t, int64(10), nset.Interval{Left: 1, Right: 10}.Size())

	assert.True(t, nset.Interval{Root: 3}.SameRoot(nset.Interval{Left: 5, Root: 3}))
	assert.False(t, nset.Interval{Root: 3}.SameRoot(nset.Interval{Root: 4}))
}

func TestIntervalOf(t *testing.T) {
	n := newTestNode(1, 4, 9, 2)
	assert.Equal(t, nset.Interval{Left: 4, Right: 9, Root: 2}, nset.IntervalOf(n))
}

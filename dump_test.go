// file: nset/dump_test.go
package nset_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rskv-p/nset"
)

func TestDumpTree(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	ws := fixtureWrappers(t, m)
	nset.BuildTree(ws)

	var buf bytes.Buffer
	nset.DumpTree(&buf, ws[0], nil)
	out := buf.String()

	assert.Contains(t, out, "-- #1 [1 10 r0]")
	assert.Contains(t, out, "|__ #3 [4 9 r0]")
	assert.Contains(t, out, "|__ #4 [5 6 r0]")
}

func TestDumpTreeWithLabels(t *testing.T) {
	m := newManager(t, nil, newMockStore())
	ws := fixtureWrappers(t, m)
	nset.BuildTree(ws)

	var buf bytes.Buffer
	nset.DumpTree(&buf, ws[0], func(n nset.INode) string { return "node" })

	assert.Contains(t, buf.String(), "-- node [1 10 r0]")
}

func TestDumpTreeNil(t *testing.T) {
	var buf bytes.Buffer
	nset.DumpTree(&buf, nil, nil)
	assert.Equal(t, "EMPTY\n", buf.String())
}

package x_log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTail checks reading the tail of a log file.
func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tail.log")
	err := os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0o644)
	assert.NoError(t, err)

	lines, err := Tail(path, 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"three", "four"}, lines)

	// Asking for more lines than the file has returns the whole file.
	lines, err = Tail(path, 100)
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four"}, lines)

	lines, err = Tail(path, 0)
	assert.NoError(t, err)
	assert.Empty(t, lines)
}

// TestTailMissingFile checks the error path for an absent file.
func TestTailMissingFile(t *testing.T) {
	_, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 5)
	assert.Error(t, err)
}

func TestPrintTail(t *testing.T) {
	var sb strings.Builder
	PrintTail(&sb, "app.log", []string{"first", "second"})

	out := sb.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Equal(t, 2, strings.Count(out, "app.log |"))
}

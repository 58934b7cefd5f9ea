// file: nset/dump.go
package nset

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Labeler renders the payload part of a dump line. Nil means ids only.
type Labeler func(INode) string

// DumpTree writes a visual representation of the subtree below w,
// following the children caches of the last rebuild.
func DumpTree(out io.Writer, w *NodeWrapper, label Labeler) {
	if w == nil {
		fmt.Fprintln(out, "EMPTY")
		return
	}
	dump(out, w, 0, label)
	fmt.Fprintln(out)
}

// dump writes a single wrapper (recursive).
func dump(out io.Writer, w *NodeWrapper, depth int, label Labeler) {
	text := fmt.Sprintf("#%d", w.GetID())
	if label != nil {
		text = label(w.Node())
	}
	fmt.Fprintf(out, "%s%s %s\n", dumpPre(depth), text, w.Interval())

	depth++
	for _, c := range w.GetChildren() {
		dump(out, c, depth, label)
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}

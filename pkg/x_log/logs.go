// file: nset/pkg/x_log/logs.go
package x_log

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

//
// ---------- Log Tail ----------

// Tail returns the last n lines of a log file. n <= 0 yields nothing.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Ring over the last n lines so large files stay cheap to tail.
	ring := make([]string, n)
	total := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ring[total%n] = sc.Text()
		total++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	count := total
	if count > n {
		count = n
	}
	out := make([]string, 0, count)
	for i := total - count; i < total; i++ {
		out = append(out, ring[i%n])
	}
	return out, nil
}

// PrintTail writes lines to w, prefixed with the styled source path.
func PrintTail(w io.Writer, path string, lines []string) {
	prefix := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorGray60)).
		Render(path + " |")
	for _, line := range lines {
		fmt.Fprintln(w, prefix, line)
	}
}

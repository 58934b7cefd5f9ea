// file: nset/cmd/nsetree/delete.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rskv-p/nset"
)

// deleteCmd removes a subtree and closes the gap it leaves.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a subtree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q: %w", args[0], err)
		}

		mgr, err := openManager()
		if err != nil {
			return err
		}

		if _, err := mgr.FetchTreeSlice(rootVal); err != nil {
			return err
		}

		w, ok := mgr.GetWrapper(id)
		if !ok {
			return fmt.Errorf("node %d: %w", id, nset.ErrNoResult)
		}
		removed := w.CountDescendants() + 1

		if err := w.Delete(); err != nil {
			return err
		}

		fmt.Printf("deleted %d nodes\n", removed)
		return nil
	},
}

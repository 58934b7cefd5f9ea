// file: nset/cmd/nsetree/seed.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rskv-p/nset/codec"
)

// seedCmd loads a nested JSON tree into the database.
var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load a nested JSON tree into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read tree file: %w", err)
		}

		var tree codec.TreeNode
		if err := codec.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("parse tree file: %w", err)
		}

		flat, err := codec.Flatten(&tree, rootVal)
		if err != nil {
			return err
		}

		st := mgr.Store()
		for _, f := range flat {
			row := &TreeRow{ID: f.ID, Lft: f.Left, Rgt: f.Right, RootID: f.Root, Label: f.Label}
			if err := st.MarkForPersist(row); err != nil {
				return fmt.Errorf("persist node %d: %w", f.ID, err)
			}
		}

		fmt.Printf("seeded %d nodes\n", len(flat))
		return nil
	},
}

// file: nset/cmd/nsetree/print.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rskv-p/nset"
)

// printCmd renders the tree of the selected partition.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}

		root, err := mgr.FetchTree(rootVal)
		if errors.Is(err, nset.ErrNoResult) {
			fmt.Println("EMPTY")
			return nil
		}
		if err != nil {
			return err
		}

		nset.DumpTree(os.Stdout, root, nodeLabel)
		return nil
	},
}

func init() {
	printCmd.Flags().IntVar(&depth, "depth", 0, "limit printed depth, 0 = no limit")
}

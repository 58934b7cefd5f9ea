// file: nset/cmd/nsetree/export.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rskv-p/nset/codec"
)

// exportCmd writes the tree back out as nested JSON, the same form
// seed reads.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tree as nested JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager()
		if err != nil {
			return err
		}

		root, err := mgr.FetchTree(rootVal)
		if err != nil {
			return err
		}

		data, err := codec.MarshalIndent(codec.Export(root))
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

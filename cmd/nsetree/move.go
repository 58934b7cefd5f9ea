// file: nset/cmd/nsetree/move.go
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rskv-p/nset"
)

var movePos string

// moveCmd relocates a subtree below another node of the same tree.
var moveCmd = &cobra.Command{
	Use:   "move <id> <dest-id>",
	Short: "Move a subtree to another node",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q: %w", args[0], err)
		}
		destID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("bad dest id %q: %w", args[1], err)
		}

		mgr, err := openManager()
		if err != nil {
			return err
		}

		// Load the whole tree so every wrapper the shifts have to
		// touch is registered.
		if _, err := mgr.FetchTreeSlice(rootVal); err != nil {
			return err
		}

		w, ok := mgr.GetWrapper(id)
		if !ok {
			return fmt.Errorf("node %d: %w", id, nset.ErrNoResult)
		}
		dest, ok := mgr.GetWrapper(destID)
		if !ok {
			return fmt.Errorf("node %d: %w", destID, nset.ErrNoResult)
		}

		switch movePos {
		case "first-child":
			err = w.MoveAsFirstChildOf(dest)
		case "prev-sibling":
			err = w.MoveAsPrevSiblingOf(dest)
		case "next-sibling":
			err = w.MoveAsNextSiblingOf(dest)
		case "last-child":
			err = w.MoveAsLastChildOf(dest)
		default:
			return fmt.Errorf("unknown position %q", movePos)
		}
		if err != nil {
			return err
		}

		fmt.Printf("moved %d to %s of %d\n", id, movePos, destID)
		return nil
	},
}

func init() {
	moveCmd.Flags().StringVar(&movePos, "position", "last-child",
		"where to place the subtree: last-child, first-child, prev-sibling, next-sibling")
}

// file: nset/cmd/nsetree/logs.go
package main

import (
	"github.com/spf13/cobra"

	"github.com/rskv-p/nset/pkg/x_log"
)

var logLines int

// logsCmd tails the file sink the other commands write to.
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the tail of the log file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := x_log.Tail(logFile, logLines)
		if err != nil {
			return err
		}
		x_log.PrintTail(cmd.OutOrStdout(), logFile, lines)
		return nil
	},
}

func init() {
	logsCmd.Flags().IntVar(&logLines, "lines", 50, "number of lines to show")
}

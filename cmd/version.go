package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-10s%s\n", "Version:", appVersion)
		fmt.Fprintf(w, "%-10s%s\n", "Commit:", appCommit)
		fmt.Fprintf(w, "%-10s%s\n", "Date:", appDate)
	},
}

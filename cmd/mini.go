// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"github.com/picsan-cli/picsan/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Resume from the most recent download history entry")
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Initialize a streamlined, minimalist terminal UI for album search and downloading.`,
	Run: func(cmd *cobra.Command, args []string) {
		options := mini.Options{
			Registry: registry,
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}

// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"os"

	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(parsersCmd)

	parsersCmd.Flags().BoolP("raw", "r", false, "Suppress header and display names in the output")
	parsersCmd.SetOut(os.Stdout)
}

// parsersCmd displays a summary of all registered album parsers.
var parsersCmd = &cobra.Command{
	Use:   "parsers",
	Short: "Display a collection of all registered album parsers",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))

		if !raw {
			headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
			cmd.Println(headerStyle("Parsers:"))
		}

		for _, p := range registry.List() {
			if raw {
				cmd.Println(p.ID)
				continue
			}
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(p.ID), style.Faint(p.Name))
		}
	},
}

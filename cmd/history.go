// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/history"
	"github.com/picsan-cli/picsan/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd displays the recorded album downloads, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display previously downloaded albums",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		records := lo.Values(saved)
		sort.Slice(records, func(i, j int) bool {
			return records[i].DownloadedAt.After(records[j].DownloadedAt)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		for _, record := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Yellow)(record.SourceID),
				record.String(),
				style.Faint(record.DownloadedAt.Format("2006-01-02 15:04")),
			)
		}
	},
}

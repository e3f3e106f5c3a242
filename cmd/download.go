// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"errors"
	"fmt"
	"net/url"
	"path"

	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/downloader"
	"github.com/picsan-cli/picsan/history"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/source"
	"github.com/picsan-cli/picsan/style"
	"github.com/picsan-cli/picsan/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("url", "u", "", "The album reference to download")
	downloadCmd.Flags().StringP("name", "n", "", "Directory name for the album, derived from the reference when omitted")
	lo.Must0(downloadCmd.MarkFlagRequired("url"))
}

// downloadCmd fetches every picture of a single album to the local filesystem.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download every picture of an album by its reference",
	Run: func(cmd *cobra.Command, args []string) {
		parser := viper.GetString(key.ParsersDefault)
		if parser == "" {
			handleErr(errors.New("parser not set, use --parser or the parsers.default key"))
		}

		src, err := registry.Source(parser)
		handleErr(err)

		ref := lo.Must(cmd.Flags().GetString("url"))
		name := lo.Must(cmd.Flags().GetString("name"))
		if name == "" {
			if u, err := url.Parse(ref); err == nil && path.Base(u.Path) != "" {
				name = path.Base(u.Path)
			} else {
				name = util.SanitizeFilename(ref)
			}
		}

		album := &source.Album{Name: name, Ref: ref, Source: src}

		erase := util.PrintErasable("Downloading..")
		result, err := downloader.Album(cmd.Context(), registry, album, func(done, total int) {
			erase()
			erase = util.PrintErasable(fmt.Sprintf("Downloading %d/%d..", done, total))
		})
		erase()
		handleErr(err)

		_ = history.Save(album, result.Downloaded, result.Dir)

		fmt.Printf(
			"%s saved %s to %s\n",
			style.Fg(color.Green)("✓"),
			util.Quantify(result.Downloaded, "picture", "pictures"),
			style.Fg(color.Yellow)(result.Dir),
		)
		if result.Failed > 0 {
			fmt.Println(style.Fg(color.Red)(util.Quantify(result.Failed, "picture failed", "pictures failed")))
		}
	},
}

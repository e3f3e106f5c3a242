// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Address to listen on, e.g. :3000")
	lo.Must0(viper.BindPFlag(key.ServerAddress, serveCmd.Flags().Lookup("address")))
}

// serveCmd runs the album browsing API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the album browsing API and web page over HTTP",
	Long: `Start an HTTP server exposing the album routes:

  /album          browsing page
  /album/parsers  registered parsers
  /album/search   keyword search
  /album/pictures picture list of an album
  /album/picture  forward proxy for a single picture`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(server.Start(registry))
	},
}

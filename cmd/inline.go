// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/picsan-cli/picsan/filesystem"
	"github.com/picsan-cli/picsan/inline"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "The search keyword to execute for album discovery")
	inlineCmd.Flags().StringP("album", "a", "", "Criteria for selecting a specific album from the search results")
	inlineCmd.Flags().IntP("page", "p", 1, "The 1-based result page to fetch")
	inlineCmd.Flags().IntP("size", "s", 0, "Albums per page, defaults to the configured page size")
	inlineCmd.Flags().BoolP("pictures", "i", false, "Resolve and include the picture URLs of the selected albums")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))

	_ = inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Album selectors:
  first - first album in the list
  last - last album in the list
  exact - album whose name matches the query exactly
  [number] - select album by index (starting from 0)

When using the json flag the album selector could be omitted. That way, it will select all albums`,
	Run: func(cmd *cobra.Command, args []string) {
		parser := viper.GetString(key.ParsersDefault)
		if parser == "" {
			handleErr(errors.New("parser not set, use --parser or the parsers.default key"))
		}

		var (
			writer io.Writer = os.Stdout
			err    error
		)
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		}

		albumFlag := lo.Must(cmd.Flags().GetString("album"))
		albumPicker := mo.None[inline.AlbumPicker]()
		if albumFlag != "" {
			kind, value := albumFlag, ""
			switch {
			case strings.HasPrefix(albumFlag, "exact="):
				kind, value = "exact", strings.TrimPrefix(albumFlag, "exact=")
			case albumFlag != "first" && albumFlag != "last":
				kind, value = "index", albumFlag
			}

			fn, err := inline.ParseAlbumPicker(kind, value)
			handleErr(err)
			albumPicker = mo.Some(fn)
		}

		size := lo.Must(cmd.Flags().GetInt("size"))
		if size < 1 {
			size = viper.GetInt(key.SearchDefaultSize)
		}

		options := &inline.Options{
			Out:         writer,
			Registry:    registry,
			Parser:      parser,
			Query:       lo.Must(cmd.Flags().GetString("query")),
			Page:        lo.Must(cmd.Flags().GetInt("page")),
			Size:        size,
			Pictures:    lo.Must(cmd.Flags().GetBool("pictures")),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			AlbumPicker: albumPicker,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates JSON schemas for structured inline mode outputs.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "album", "picture", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}

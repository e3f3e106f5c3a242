// Package cmd implements the command-line interface for picsan.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/picsan-cli/picsan/color"
	"github.com/picsan-cli/picsan/constant"
	"github.com/picsan-cli/picsan/key"
	"github.com/picsan-cli/picsan/log"
	"github.com/picsan-cli/picsan/mini"
	"github.com/picsan-cli/picsan/provider"
	"github.com/picsan-cli/picsan/style"
	"github.com/picsan-cli/picsan/util"
	"github.com/picsan-cli/picsan/version"
	"github.com/picsan-cli/picsan/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// registry holds every parser available to the process, assembled once at startup.
var registry = provider.Default()

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("parser", "P", "", "Set the default parser to search with")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("parser", completionParserCodes))
	lo.Must0(viper.BindPFlag(key.ParsersDefault, rootCmd.PersistentFlags().Lookup("parser")))

	rootCmd.Flags().BoolP("continue", "c", false, "Resume from the most recent download history entry")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completionParserCodes(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	codes := lo.Map(registry.List(), func(p *provider.Provider, _ int) string {
		return p.ID
	})
	return codes, cobra.ShellCompDirectiveNoFileComp
}

// rootCmd defines the entry point for the picsan application.
var rootCmd = &cobra.Command{
	Use:   constant.Picsan,
	Short: "A minimalist command-line interface for album discovery and downloading",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line interface for album discovery and downloading"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := mini.Options{
			Registry: registry,
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(mini.Run(&options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

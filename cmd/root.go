// Package cmd implements the eprange command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/color"
	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/filesystem"
	"github.com/anisan-cli/eprange/icon"
	"github.com/anisan-cli/eprange/inline"
	"github.com/anisan-cli/eprange/key"
	"github.com/anisan-cli/eprange/log"
	"github.com/anisan-cli/eprange/style"
	"github.com/anisan-cli/eprange/tui"
	"github.com/anisan-cli/eprange/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().BoolP("json", "j", false, "Print the accepted request as JSON")
	rootCmd.Flags().BoolP("show-identifiers", "i", false, "Show episode identifiers under their names")
	lo.Must0(viper.BindPFlag(key.TUIShowIdentifiers, rootCmd.Flags().Lookup("show-identifiers")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Eprange + " [catalog]",
	Short: "Pick episodes of a season and hand them to a download job as a compact range",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Pick episodes, get ranges"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		series, err := loadCatalog(args)
		handleErr(err)

		request, err := tui.Run(&tui.Options{Series: series})
		handleErr(err)

		// quit without submitting
		if request == nil {
			return
		}

		asJson := lo.Must(cmd.Flags().GetBool("json")) || viper.GetBool(key.InlineJson)
		handleErr(inline.Write(cmd.OutOrStdout(), request, asJson))
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
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// resolveCatalog returns path as given when it exists, otherwise looks it up in the catalogs directory.
// An empty path falls back to the catalog.default key.
func resolveCatalog(path string) (string, error) {
	if path == "" {
		path = viper.GetString(key.CatalogDefault)
	}

	if path == "" {
		return "", errors.New("no catalog given, pass a path or set " + key.CatalogDefault)
	}

	if exists, err := filesystem.API().Exists(path); err != nil || exists {
		return path, err
	}

	return filepath.Join(where.Catalogs(), path), nil
}

func loadCatalog(args []string) (*catalog.Series, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	path, err := resolveCatalog(path)
	if err != nil {
		return nil, err
	}

	return catalog.Load(path)
}

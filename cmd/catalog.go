package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/color"
	"github.com/anisan-cli/eprange/icon"
	"github.com/anisan-cli/eprange/style"
	"github.com/anisan-cli/eprange/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect series catalogs",
	Long: fmt.Sprintf(`Inspect series catalogs.

Supported formats: %s`, strings.Join(catalog.Formats(), ", ")),
}

func init() {
	catalogCmd.AddCommand(catalogShowCmd)
	catalogShowCmd.SetOut(os.Stdout)
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [catalog]",
	Short: "Render the seasons of a catalog as a table",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		series, err := loadCatalog(args)
		handleErr(err)

		cmd.Println(series.Table())
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCheckCmd.SetOut(os.Stdout)
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [catalog]",
	Short: "Validate a catalog",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		series, err := loadCatalog(args)
		handleErr(err)

		episodes := 0
		for _, season := range series.Seasons {
			episodes += len(season.Episodes)
		}

		cmd.Printf(
			"%s %s is valid: %s, %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(series.Title),
			util.Quantify(len(series.Seasons), "season", "seasons"),
			util.Quantify(episodes, "episode", "episodes"),
		)
	},
}

package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/anisan-cli/eprange/filesystem"
	"github.com/anisan-cli/eprange/gate"
	"github.com/anisan-cli/eprange/inline"
	"github.com/anisan-cli/eprange/key"
	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("catalog", "c", "", "Catalog file to select from (defaults to catalog.default)")
	inlineCmd.Flags().IntP("season", "s", 0, "Season number to select episodes in")
	inlineCmd.Flags().StringP("episodes", "e", "", "Episodes to select")
	inlineCmd.Flags().BoolP("full-season", "F", false, "Request the whole season instead of single episodes")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the request as a JSON object")
	lo.Must0(viper.BindPFlag(key.InlineJson, inlineCmd.Flags().Lookup("json")))
	inlineCmd.Flags().StringP("output", "o", "", "Write the request to a file instead of stdout")

	lo.Must0(inlineCmd.MarkFlagRequired("season"))
	inlineCmd.MarkFlagsMutuallyExclusive("episodes", "full-season")
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Select episodes without the interactive interface",
	Long: `Select episodes of one season from the command line and print the download request.

Episode selectors:
  all - every episode of the season
  none - clear the season
  first - first episode of the season
  last - last episode of the season
  1-3,5 - episode numbers, "3-" and "3-*" run to the last episode, "*" is every number
  @[substring]@ - episodes whose name fuzzily contains the substring
  [id],[id] - episodes by identifier, e.g. 2024-01-05

Episodes marked as checked in the catalog stay selected.
A request with no episodes selected is rejected unless --full-season is set.`,
	Example: `  eprange inline -c show.yaml -s 2 -e 1-3,5
  eprange inline -c show.lua -s 1 -F --json`,
	Run: func(cmd *cobra.Command, args []string) {
		series, err := loadCatalog([]string{lo.Must(cmd.Flags().GetString("catalog"))})
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		picker := mo.None[inline.EpisodesPicker]()
		if episodes := lo.Must(cmd.Flags().GetString("episodes")); episodes != "" {
			fn, err := inline.ParseEpisodesPicker(episodes)
			handleErr(err)
			picker = mo.Some(fn)
		}

		downloadType := gate.Episodes
		if lo.Must(cmd.Flags().GetBool("full-season")) {
			downloadType = gate.FullSeason
		}

		options := &inline.Options{
			Out:          writer,
			Series:       series,
			Season:       mo.Some(selection.Season(lo.Must(cmd.Flags().GetInt("season")))),
			Picker:       picker,
			DownloadType: downloadType,
			Json:         viper.GetBool(key.InlineJson),
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the request inline mode writes",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}

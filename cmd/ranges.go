package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/anisan-cli/eprange/ranges"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.SetOut(os.Stdout)
}

var encodeCmd = &cobra.Command{
	Use:     "encode <id>...",
	Short:   "Encode episode identifiers into range notation",
	Example: "  eprange encode 1 2 3 5 8 9   # 1-3,5,8,9",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// "1,2,3" and "1 2 3" are the same selection
		ids := lo.FlatMap(args, func(arg string, _ int) []string {
			return lo.Compact(lo.Map(strings.Split(arg, ranges.Separator), func(id string, _ int) string {
				return strings.TrimSpace(id)
			}))
		})
		cmd.Println(ranges.Encode(ids))
	},
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.SetOut(os.Stdout)
	expandCmd.Flags().IntP("max", "m", 0, "Last episode number, used by \"*\" and open ranges")
}

var expandCmd = &cobra.Command{
	Use:     "expand <token>",
	Short:   "Expand range notation into episode numbers the way a download job reads it",
	Example: "  eprange expand 3- --max 6   # 3 4 5 6",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		numbers, err := ranges.Expand(args[0], lo.Must(cmd.Flags().GetInt("max")))
		handleErr(err)

		cmd.Println(strings.Join(lo.Map(numbers, func(n int, _ int) string {
			return strconv.Itoa(n)
		}), " "))
	},
}

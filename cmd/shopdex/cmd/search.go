package cmd

import (
	"fmt"

	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/spf13/cobra"
)

var (
	searchX           string
	searchZ           string
	searchMaxDistance string
	searchMinRating   string
	searchSort        string
	searchSelect      string
)

var searchCmd = &cobra.Command{
	Use:   "search <item>",
	Short: "Find the best offers for an item",
	Long:  "Resolves the query to an item, then prints the filtered, ranked offer table. Ambiguous queries list the candidate names; rerun with --select to pick one.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.StringVar(&searchX, "x", "", "Your X coordinate")
	f.StringVar(&searchZ, "z", "", "Your Z coordinate")
	f.StringVar(&searchMaxDistance, "max-distance", "", "Max distance in blocks")
	f.StringVar(&searchMinRating, "min-rating", "", "Minimum shop rating (0-5)")
	f.StringVar(&searchSort, "sort", "price", "Ranking: price or distance")
	f.StringVar(&searchSelect, "select", "", "Exact item name to resolve an ambiguous query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, closer, err := loadApp()
	if err != nil {
		return err
	}
	defer closer()

	result := a.Query(app.QueryParams{
		Search:      args[0],
		Selected:    searchSelect,
		UserX:       searchX,
		UserZ:       searchZ,
		MaxDistance: searchMaxDistance,
		MinRating:   searchMinRating,
		Sort:        searchSort,
	})

	fmt.Print(formatSearchResult(args[0], result))
	return nil
}

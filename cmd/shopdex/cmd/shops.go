package cmd

import (
	"fmt"

	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/spf13/cobra"
)

var (
	shopsX           string
	shopsZ           string
	shopsMaxDistance string
	shopsMinRating   string
	shopsOpen        bool
)

var shopsCmd = &cobra.Command{
	Use:   "shops [query]",
	Short: "List shops, nearest first",
	Long:  "Prints the aggregated shop list. With a query, only shops selling a matching item are shown. With coordinates, shops sort by distance.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShops,
}

func init() {
	f := shopsCmd.Flags()
	f.StringVar(&shopsX, "x", "", "Your X coordinate")
	f.StringVar(&shopsZ, "z", "", "Your Z coordinate")
	f.StringVar(&shopsMaxDistance, "max-distance", "", "Max distance in blocks")
	f.StringVar(&shopsMinRating, "min-rating", "", "Minimum shop rating (0-5)")
	f.BoolVar(&shopsOpen, "open", false, "Expand each shop's price list")
}

func runShops(cmd *cobra.Command, args []string) error {
	a, closer, err := loadApp()
	if err != nil {
		return err
	}
	defer closer()

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	result := a.Query(app.QueryParams{
		Search:      query,
		UserX:       shopsX,
		UserZ:       shopsZ,
		MaxDistance: shopsMaxDistance,
		MinRating:   shopsMinRating,
	})

	fmt.Print(formatShopList(result.Shops, shopsOpen))
	return nil
}

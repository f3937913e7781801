package cmd

import (
	"fmt"
	"strings"

	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/civmc-shops/shopdex/internal/domain/market"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// formatSearchResult renders one query for the terminal: a disambiguation
// list, an offer table, or a not-found notice depending on resolution state.
func formatSearchResult(query string, r app.QueryResult) string {
	switch r.Resolution.State {
	case market.StateIdle, market.StateNoMatch:
		return fmt.Sprintf("no items match %q\n", query)

	case market.StateAmbiguous:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%sMultiple items match %q%s, rerun with --select:\n", colorBold, query, colorReset)
		for _, name := range r.Resolution.Matches {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
		return sb.String()
	}

	if r.NotFound {
		return fmt.Sprintf("no shops sell %s%s%s under the current filters\n",
			colorCyan, r.Resolution.ActiveItem, colorReset)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%sOffers for %s%s%s\n", colorBold, colorCyan, r.Resolution.ActiveItem, colorReset)
	fmt.Fprintf(&sb, "  %-24s %-18s %-7s %-5s %-10s %-10s %s\n",
		"SHOP", "COORDS", "RATING", "PACK", "TOTAL (d)", "UNIT (d)", "DISTANCE")
	for _, o := range r.Offers {
		fmt.Fprintf(&sb, "  %-24s %-18s %-7.1f %-5d %-10g %-10.3f %s\n",
			o.Shop.Name,
			formatCoords(o.Shop.Coordinates),
			o.Shop.Rating,
			o.Quantity,
			o.Item.Price,
			o.UnitPrice,
			formatDistance(o.Distance))
	}
	return sb.String()
}

// formatShopList renders the aggregated shop list, optionally expanding each
// shop's price list.
func formatShopList(entries []market.ShopEntry, open bool) string {
	if len(entries) == 0 {
		return "no shops found for your filter/search\n"
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s%s%s | %s | %.1f★", colorBold, e.Shop.Name, colorReset,
			formatCoords(e.Shop.Coordinates), e.Shop.Rating)
		if e.Distance.Known {
			fmt.Fprintf(&sb, " | %s%d blocks away%s", colorCyan, e.Distance.Blocks, colorReset)
		}
		sb.WriteString("\n")

		if open {
			for _, it := range e.Shop.Items {
				fmt.Fprintf(&sb, "    %-28s %-10s %g d\n", it.Name, formatPack(it), it.Price)
			}
		}
	}
	return sb.String()
}

func formatCoords(c *market.Coordinate) string {
	if c == nil {
		return colorGray + "(?)" + colorReset
	}
	return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
}

func formatDistance(d market.Distance) string {
	if !d.Known {
		return colorGray + "N/A" + colorReset
	}
	return fmt.Sprintf("%d", d.Blocks)
}

func formatPack(it market.Item) string {
	if it.HasMeasure() {
		return fmt.Sprintf("%d %s", it.PackSize(), it.Measure)
	}
	return fmt.Sprintf("%d", it.PackSize())
}
